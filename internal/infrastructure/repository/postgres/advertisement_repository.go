package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

type PlayerAdvertisementRepository struct {
	db *sqlx.DB
}

func NewPlayerAdvertisementRepository(db *sqlx.DB) *PlayerAdvertisementRepository {
	return &PlayerAdvertisementRepository{db: db}
}

func (r *PlayerAdvertisementRepository) Create(ctx context.Context, item advertisement.PlayerAdvertisement) error {
	query, args, err := qb.InsertModel("player_advertisements", playerAdvertisementToRow(item), "")
	if err != nil {
		return errors.Wrap(err, "build insert player advertisement query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert player advertisement")
	}
	return nil
}

func (r *PlayerAdvertisementRepository) Update(ctx context.Context, item advertisement.PlayerAdvertisement) error {
	query, args, err := qb.UpdateModel("player_advertisements", playerAdvertisementToRow(item), "id")
	if err != nil {
		return errors.Wrap(err, "build update player advertisement query")
	}
	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		return errors.Wrap(err, "update player advertisement")
	}
	if affected == 0 {
		return errors.Newf("update player advertisement: %s not found", item.ID)
	}
	return nil
}

func (r *PlayerAdvertisementRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "player_advertisements", id)
}

func (r *PlayerAdvertisementRepository) GetByID(ctx context.Context, id string) (advertisement.PlayerAdvertisement, bool, error) {
	query, args, err := qb.Select("*").From("player_advertisements").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return advertisement.PlayerAdvertisement{}, false, errors.Wrap(err, "build get player advertisement query")
	}

	var row playerAdvertisementTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return advertisement.PlayerAdvertisement{}, false, nil
		}
		return advertisement.PlayerAdvertisement{}, false, errors.Wrap(err, "get player advertisement")
	}
	return playerAdvertisementFromRow(row), true, nil
}

func (r *PlayerAdvertisementRepository) List(ctx context.Context, filter advertisement.Filter) ([]advertisement.PlayerAdvertisement, error) {
	query, args, err := qb.Select("*").From("player_advertisements").
		Where(advertisementConditions("player_id", filter)...).
		OrderBy("creation_date", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list player advertisements query")
	}

	var rows []playerAdvertisementTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select player advertisements")
	}

	out := make([]advertisement.PlayerAdvertisement, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerAdvertisementFromRow(row))
	}
	return out, nil
}

func (r *PlayerAdvertisementRepository) Count(ctx context.Context, filter advertisement.Filter) (int, error) {
	return count(ctx, r.db, "player_advertisements", advertisementConditions("player_id", filter)...)
}

type ClubAdvertisementRepository struct {
	db *sqlx.DB
}

func NewClubAdvertisementRepository(db *sqlx.DB) *ClubAdvertisementRepository {
	return &ClubAdvertisementRepository{db: db}
}

func (r *ClubAdvertisementRepository) Create(ctx context.Context, item advertisement.ClubAdvertisement) error {
	query, args, err := qb.InsertModel("club_advertisements", clubAdvertisementToRow(item), "")
	if err != nil {
		return errors.Wrap(err, "build insert club advertisement query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert club advertisement")
	}
	return nil
}

func (r *ClubAdvertisementRepository) Update(ctx context.Context, item advertisement.ClubAdvertisement) error {
	query, args, err := qb.UpdateModel("club_advertisements", clubAdvertisementToRow(item), "id")
	if err != nil {
		return errors.Wrap(err, "build update club advertisement query")
	}
	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		return errors.Wrap(err, "update club advertisement")
	}
	if affected == 0 {
		return errors.Newf("update club advertisement: %s not found", item.ID)
	}
	return nil
}

func (r *ClubAdvertisementRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "club_advertisements", id)
}

func (r *ClubAdvertisementRepository) GetByID(ctx context.Context, id string) (advertisement.ClubAdvertisement, bool, error) {
	query, args, err := qb.Select("*").From("club_advertisements").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return advertisement.ClubAdvertisement{}, false, errors.Wrap(err, "build get club advertisement query")
	}

	var row clubAdvertisementTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return advertisement.ClubAdvertisement{}, false, nil
		}
		return advertisement.ClubAdvertisement{}, false, errors.Wrap(err, "get club advertisement")
	}
	return clubAdvertisementFromRow(row), true, nil
}

func (r *ClubAdvertisementRepository) List(ctx context.Context, filter advertisement.Filter) ([]advertisement.ClubAdvertisement, error) {
	query, args, err := qb.Select("*").From("club_advertisements").
		Where(advertisementConditions("club_member_id", filter)...).
		OrderBy("creation_date", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list club advertisements query")
	}

	var rows []clubAdvertisementTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select club advertisements")
	}

	out := make([]advertisement.ClubAdvertisement, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubAdvertisementFromRow(row))
	}
	return out, nil
}

func (r *ClubAdvertisementRepository) Count(ctx context.Context, filter advertisement.Filter) (int, error) {
	return count(ctx, r.db, "club_advertisements", advertisementConditions("club_member_id", filter)...)
}

func advertisementConditions(ownerColumn string, filter advertisement.Filter) []qb.Condition {
	var conds []qb.Condition
	if filter.OwnerID != "" {
		conds = append(conds, qb.Eq(ownerColumn, filter.OwnerID))
	}
	switch filter.State {
	case advertisement.StateActive:
		conds = append(conds, qb.Gte("end_date", filter.Now))
	case advertisement.StateInactive:
		conds = append(conds, qb.Lt("end_date", filter.Now))
	}
	return conds
}
