package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item User) error
	Update(ctx context.Context, item User) error
	Delete(ctx context.Context, userID string) (bool, error)
	GetByID(ctx context.Context, userID string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
}
