package problem

import "context"

type Repository interface {
	Create(ctx context.Context, item Problem) error
	Update(ctx context.Context, item Problem) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (Problem, bool, error)
	List(ctx context.Context, state State) ([]Problem, error)
	Count(ctx context.Context, state State) (int, error)
}
