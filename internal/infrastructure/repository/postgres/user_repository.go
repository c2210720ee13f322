package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	query, args, err := qb.InsertModel("users", userToRow(item), "")
	if err != nil {
		return errors.Wrap(err, "build insert user query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert user")
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, item user.User) error {
	query, args, err := qb.UpdateModel("users", userToRow(item), "id")
	if err != nil {
		return errors.Wrap(err, "build update user query")
	}
	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		return errors.Wrap(err, "update user")
	}
	if affected == 0 {
		return errors.Newf("update user: %s not found", item.ID)
	}
	return nil
}

// Delete relies on ON DELETE CASCADE for everything the user owns.
func (r *UserRepository) Delete(ctx context.Context, userID string) (bool, error) {
	return deleteByID(ctx, r.db, "users", userID)
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").Where(qb.Eq("id", userID)).ToSQL()
	if err != nil {
		return user.User{}, false, errors.Wrap(err, "build get user query")
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, errors.Wrap(err, "get user")
	}
	return userFromRow(row), true, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").OrderBy("creation_date", "id").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list users query")
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select users")
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "users")
}
