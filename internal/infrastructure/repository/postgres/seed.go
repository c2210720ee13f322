package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

// BootstrapSeed inserts the position and foot lookups. Existing rows are kept.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPositions() {
		if err := seedLookup(ctx, tx, "player_positions", p.ID, p.Name); err != nil {
			return err
		}
	}
	for _, f := range memory.SeedFeet() {
		if err := seedLookup(ctx, tx, "player_feet", f.ID, f.Name); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit seed tx")
	}
	return nil
}

func seedLookup(ctx context.Context, tx *sqlx.Tx, table string, id int64, name string) error {
	query, args, err := qb.InsertInto(table).
		Columns("id", "name").
		Values(id, name).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		return errors.Wrapf(err, "build seed %s query", table)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "seed %s %d", table, id)
	}
	return nil
}
