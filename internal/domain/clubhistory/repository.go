package clubhistory

import "context"

type Repository interface {
	Create(ctx context.Context, item ClubHistory) error
	Update(ctx context.Context, item ClubHistory) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (ClubHistory, bool, error)
	// List returns every history when playerID is empty.
	List(ctx context.Context, playerID string) ([]ClubHistory, error)
	Count(ctx context.Context) (int, error)
}
