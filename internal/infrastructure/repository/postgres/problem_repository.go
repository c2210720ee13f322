package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

type ProblemRepository struct {
	db *sqlx.DB
}

func NewProblemRepository(db *sqlx.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

func (r *ProblemRepository) Create(ctx context.Context, item problem.Problem) error {
	query, args, err := qb.InsertModel("problems", problemToRow(item), "")
	if err != nil {
		return errors.Wrap(err, "build insert problem query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert problem")
	}
	return nil
}

func (r *ProblemRepository) Update(ctx context.Context, item problem.Problem) error {
	query, args, err := qb.UpdateModel("problems", problemToRow(item), "id")
	if err != nil {
		return errors.Wrap(err, "build update problem query")
	}
	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		return errors.Wrap(err, "update problem")
	}
	if affected == 0 {
		return errors.Newf("update problem: %s not found", item.ID)
	}
	return nil
}

func (r *ProblemRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "problems", id)
}

func (r *ProblemRepository) GetByID(ctx context.Context, id string) (problem.Problem, bool, error) {
	query, args, err := qb.Select("*").From("problems").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return problem.Problem{}, false, errors.Wrap(err, "build get problem query")
	}

	var row problemTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return problem.Problem{}, false, nil
		}
		return problem.Problem{}, false, errors.Wrap(err, "get problem")
	}
	return problemFromRow(row), true, nil
}

func (r *ProblemRepository) List(ctx context.Context, state problem.State) ([]problem.Problem, error) {
	query, args, err := qb.Select("*").From("problems").
		Where(problemConditions(state)...).
		OrderBy("creation_date", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list problems query")
	}

	var rows []problemTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select problems")
	}

	out := make([]problem.Problem, 0, len(rows))
	for _, row := range rows {
		out = append(out, problemFromRow(row))
	}
	return out, nil
}

func (r *ProblemRepository) Count(ctx context.Context, state problem.State) (int, error) {
	return count(ctx, r.db, "problems", problemConditions(state)...)
}

func problemConditions(state problem.State) []qb.Condition {
	switch state {
	case problem.StateSolved:
		return []qb.Condition{qb.Eq("is_solved", true)}
	case problem.StateUnsolved:
		return []qb.Condition{qb.Eq("is_solved", false)}
	default:
		return nil
	}
}
