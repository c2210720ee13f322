package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scout-market/internal/domain/problem"
)

type ProblemRepository struct {
	db *Database
}

func NewProblemRepository(db *Database) *ProblemRepository {
	return &ProblemRepository{db: db}
}

func (r *ProblemRepository) Create(_ context.Context, item problem.Problem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.db.requireUser("problems_requester_id_fkey", item.RequesterID); err != nil {
		return err
	}
	r.db.problems.insert(item.ID, item)
	return nil
}

func (r *ProblemRepository) Update(_ context.Context, item problem.Problem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.db.problems.replace(item.ID, item) {
		return fmt.Errorf("problem not found: %s", item.ID)
	}
	return nil
}

func (r *ProblemRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.db.problems.remove(id), nil
}

func (r *ProblemRepository) GetByID(_ context.Context, id string) (problem.Problem, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.problems.get(id)
	return item, ok, nil
}

func (r *ProblemRepository) List(_ context.Context, state problem.State) ([]problem.Problem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.problems.list(problemMatcher(state)), nil
}

func (r *ProblemRepository) Count(_ context.Context, state problem.State) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.problems.count(problemMatcher(state)), nil
}

func problemMatcher(state problem.State) func(problem.Problem) bool {
	switch state {
	case problem.StateSolved:
		return func(p problem.Problem) bool { return p.IsSolved }
	case problem.StateUnsolved:
		return func(p problem.Problem) bool { return !p.IsSolved }
	default:
		return nil
	}
}
