package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

type lookupTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type LookupRepository struct {
	db *sqlx.DB
}

func NewLookupRepository(db *sqlx.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) ListPositions(ctx context.Context) ([]lookup.Position, error) {
	rows, err := r.list(ctx, "player_positions")
	if err != nil {
		return nil, err
	}
	out := make([]lookup.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, lookup.Position{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *LookupRepository) GetPosition(ctx context.Context, id int64) (lookup.Position, bool, error) {
	row, exists, err := r.get(ctx, "player_positions", id)
	if err != nil || !exists {
		return lookup.Position{}, exists, err
	}
	return lookup.Position{ID: row.ID, Name: row.Name}, true, nil
}

func (r *LookupRepository) ListFeet(ctx context.Context) ([]lookup.Foot, error) {
	rows, err := r.list(ctx, "player_feet")
	if err != nil {
		return nil, err
	}
	out := make([]lookup.Foot, 0, len(rows))
	for _, row := range rows {
		out = append(out, lookup.Foot{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *LookupRepository) GetFoot(ctx context.Context, id int64) (lookup.Foot, bool, error) {
	row, exists, err := r.get(ctx, "player_feet", id)
	if err != nil || !exists {
		return lookup.Foot{}, exists, err
	}
	return lookup.Foot{ID: row.ID, Name: row.Name}, true, nil
}

func (r *LookupRepository) list(ctx context.Context, table string) ([]lookupTableModel, error) {
	query, args, err := qb.Select("id", "name").From(table).OrderBy("id").ToSQL()
	if err != nil {
		return nil, errors.Wrapf(err, "build list %s query", table)
	}

	var rows []lookupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select %s", table)
	}
	return rows, nil
}

func (r *LookupRepository) get(ctx context.Context, table string, id int64) (lookupTableModel, bool, error) {
	query, args, err := qb.Select("id", "name").From(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return lookupTableModel{}, false, errors.Wrapf(err, "build get %s query", table)
	}

	var row lookupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lookupTableModel{}, false, nil
		}
		return lookupTableModel{}, false, errors.Wrapf(err, "get %s", table)
	}
	return row, true, nil
}
