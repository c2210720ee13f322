package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

var jsonColumnAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// mapWriteError marks unique and foreign key violations with dberr sentinels.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case pqUniqueViolation:
		return dberr.Unique(pqErr.Constraint, err)
	case pqForeignKeyViolation:
		return dberr.ForeignKey(pqErr.Constraint, err)
	default:
		return err
	}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execAffected(ctx context.Context, db execer, query string, args []any) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapWriteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}

// jsonColumn stores V as a JSONB document.
type jsonColumn[T any] struct {
	V T
}

func (c jsonColumn[T]) Value() (driver.Value, error) {
	raw, err := jsonColumnAPI.Marshal(c.V)
	if err != nil {
		return nil, errors.Wrap(err, "marshal json column")
	}
	return string(raw), nil
}

func (c *jsonColumn[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		var zero T
		c.V = zero
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column source %T", src)
	}

	if err := jsonColumnAPI.Unmarshal(raw, &c.V); err != nil {
		return errors.Wrap(err, "unmarshal json column")
	}
	return nil
}

type getter interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

func count(ctx context.Context, db getter, table string, conditions ...qb.Condition) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(table).Where(conditions...).ToSQL()
	if err != nil {
		return 0, errors.Wrapf(err, "build count %s query", table)
	}

	var n int
	if err := db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, errors.Wrapf(err, "count %s", table)
	}
	return n, nil
}

func deleteByID(ctx context.Context, db execer, table, id string) (bool, error) {
	query, args, err := qb.DeleteFrom(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrapf(err, "build delete %s query", table)
	}
	affected, err := execAffected(ctx, db, query, args)
	if err != nil {
		return false, errors.Wrapf(err, "delete %s", table)
	}
	return affected > 0, nil
}
