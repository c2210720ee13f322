package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

type ClubOfferRepository struct {
	db *sqlx.DB
}

func NewClubOfferRepository(db *sqlx.DB) *ClubOfferRepository {
	return &ClubOfferRepository{db: db}
}

func (r *ClubOfferRepository) Create(ctx context.Context, item offer.ClubOffer) error {
	query, args, err := qb.InsertModel("club_offers", clubOfferToRow(item), "")
	if err != nil {
		return errors.Wrap(err, "build insert club offer query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert club offer")
	}
	return nil
}

func (r *ClubOfferRepository) Update(ctx context.Context, item offer.ClubOffer) error {
	query, args, err := qb.UpdateModel("club_offers", clubOfferToRow(item), "id")
	if err != nil {
		return errors.Wrap(err, "build update club offer query")
	}
	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		return errors.Wrap(err, "update club offer")
	}
	if affected == 0 {
		return errors.Newf("update club offer: %s not found", item.ID)
	}
	return nil
}

func (r *ClubOfferRepository) UpdateStatus(ctx context.Context, id string, status offer.Status) (bool, error) {
	return updateOfferStatus(ctx, r.db, "club_offers", id, status)
}

func (r *ClubOfferRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "club_offers", id)
}

func (r *ClubOfferRepository) GetByID(ctx context.Context, id string) (offer.ClubOffer, bool, error) {
	query, args, err := qb.Select("*").From("club_offers").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return offer.ClubOffer{}, false, errors.Wrap(err, "build get club offer query")
	}

	var row clubOfferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return offer.ClubOffer{}, false, nil
		}
		return offer.ClubOffer{}, false, errors.Wrap(err, "get club offer")
	}
	return clubOfferFromRow(row), true, nil
}

func (r *ClubOfferRepository) List(ctx context.Context, filter offer.Filter) ([]offer.ClubOffer, error) {
	query, args, err := qb.Select("*").From("club_offers").
		Where(clubOfferConditions(filter)...).
		OrderBy("creation_date", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list club offers query")
	}

	var rows []clubOfferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select club offers")
	}

	out := make([]offer.ClubOffer, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubOfferFromRow(row))
	}
	return out, nil
}

func (r *ClubOfferRepository) Count(ctx context.Context, filter offer.Filter) (int, error) {
	return count(ctx, r.db, "club_offers", clubOfferConditions(filter)...)
}

func clubOfferConditions(filter offer.Filter) []qb.Condition {
	var conds []qb.Condition
	if filter.Status != "" {
		conds = append(conds, qb.Eq("offer_status", string(filter.Status)))
	}
	if filter.MakerID != "" {
		conds = append(conds, qb.Eq("club_member_id", filter.MakerID))
	}
	if filter.ReceiverID != "" {
		conds = append(conds, qb.Expr(
			"player_advertisement_id IN (SELECT id FROM player_advertisements WHERE player_id = ?)",
			filter.ReceiverID,
		))
	}
	return conds
}

type PlayerOfferRepository struct {
	db *sqlx.DB
}

func NewPlayerOfferRepository(db *sqlx.DB) *PlayerOfferRepository {
	return &PlayerOfferRepository{db: db}
}

func (r *PlayerOfferRepository) Create(ctx context.Context, item offer.PlayerOffer) error {
	query, args, err := qb.InsertModel("player_offers", playerOfferToRow(item), "")
	if err != nil {
		return errors.Wrap(err, "build insert player offer query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert player offer")
	}
	return nil
}

func (r *PlayerOfferRepository) Update(ctx context.Context, item offer.PlayerOffer) error {
	query, args, err := qb.UpdateModel("player_offers", playerOfferToRow(item), "id")
	if err != nil {
		return errors.Wrap(err, "build update player offer query")
	}
	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		return errors.Wrap(err, "update player offer")
	}
	if affected == 0 {
		return errors.Newf("update player offer: %s not found", item.ID)
	}
	return nil
}

func (r *PlayerOfferRepository) UpdateStatus(ctx context.Context, id string, status offer.Status) (bool, error) {
	return updateOfferStatus(ctx, r.db, "player_offers", id, status)
}

func (r *PlayerOfferRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "player_offers", id)
}

func (r *PlayerOfferRepository) GetByID(ctx context.Context, id string) (offer.PlayerOffer, bool, error) {
	query, args, err := qb.Select("*").From("player_offers").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return offer.PlayerOffer{}, false, errors.Wrap(err, "build get player offer query")
	}

	var row playerOfferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return offer.PlayerOffer{}, false, nil
		}
		return offer.PlayerOffer{}, false, errors.Wrap(err, "get player offer")
	}
	return playerOfferFromRow(row), true, nil
}

func (r *PlayerOfferRepository) List(ctx context.Context, filter offer.Filter) ([]offer.PlayerOffer, error) {
	query, args, err := qb.Select("*").From("player_offers").
		Where(playerOfferConditions(filter)...).
		OrderBy("creation_date", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list player offers query")
	}

	var rows []playerOfferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select player offers")
	}

	out := make([]offer.PlayerOffer, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerOfferFromRow(row))
	}
	return out, nil
}

func (r *PlayerOfferRepository) Count(ctx context.Context, filter offer.Filter) (int, error) {
	return count(ctx, r.db, "player_offers", playerOfferConditions(filter)...)
}

func playerOfferConditions(filter offer.Filter) []qb.Condition {
	var conds []qb.Condition
	if filter.Status != "" {
		conds = append(conds, qb.Eq("offer_status", string(filter.Status)))
	}
	if filter.MakerID != "" {
		conds = append(conds, qb.Eq("player_id", filter.MakerID))
	}
	if filter.ReceiverID != "" {
		conds = append(conds, qb.Expr(
			"club_advertisement_id IN (SELECT id FROM club_advertisements WHERE club_member_id = ?)",
			filter.ReceiverID,
		))
	}
	return conds
}

func updateOfferStatus(ctx context.Context, db execer, table, id string, status offer.Status) (bool, error) {
	query, args, err := qb.Update(table).
		Set("offer_status", string(status)).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, errors.Wrapf(err, "build update %s status query", table)
	}
	affected, err := execAffected(ctx, db, query, args)
	if err != nil {
		return false, errors.Wrapf(err, "update %s status", table)
	}
	return affected > 0, nil
}
