package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

type ClubHistoryRepository struct {
	db *sqlx.DB
}

func NewClubHistoryRepository(db *sqlx.DB) *ClubHistoryRepository {
	return &ClubHistoryRepository{db: db}
}

func (r *ClubHistoryRepository) Create(ctx context.Context, item clubhistory.ClubHistory) error {
	query, args, err := qb.InsertModel("club_histories", clubHistoryToRow(item), "")
	if err != nil {
		return errors.Wrap(err, "build insert club history query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert club history")
	}
	return nil
}

func (r *ClubHistoryRepository) Update(ctx context.Context, item clubhistory.ClubHistory) error {
	query, args, err := qb.UpdateModel("club_histories", clubHistoryToRow(item), "id")
	if err != nil {
		return errors.Wrap(err, "build update club history query")
	}
	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		return errors.Wrap(err, "update club history")
	}
	if affected == 0 {
		return errors.Newf("update club history: %s not found", item.ID)
	}
	return nil
}

func (r *ClubHistoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "club_histories", id)
}

func (r *ClubHistoryRepository) GetByID(ctx context.Context, id string) (clubhistory.ClubHistory, bool, error) {
	query, args, err := qb.Select("*").From("club_histories").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return clubhistory.ClubHistory{}, false, errors.Wrap(err, "build get club history query")
	}

	var row clubHistoryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clubhistory.ClubHistory{}, false, nil
		}
		return clubhistory.ClubHistory{}, false, errors.Wrap(err, "get club history")
	}
	return clubHistoryFromRow(row), true, nil
}

func (r *ClubHistoryRepository) List(ctx context.Context, playerID string) ([]clubhistory.ClubHistory, error) {
	var conds []qb.Condition
	if playerID != "" {
		conds = append(conds, qb.Eq("player_id", playerID))
	}
	query, args, err := qb.Select("*").From("club_histories").
		Where(conds...).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list club histories query")
	}

	var rows []clubHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select club histories")
	}

	out := make([]clubhistory.ClubHistory, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubHistoryFromRow(row))
	}
	return out, nil
}

func (r *ClubHistoryRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "club_histories")
}
