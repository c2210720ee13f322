package favorite

import "context"

// Repository stores favorites of both kinds; each kind lives in its own table.
type Repository interface {
	// Create fails with dberr.ErrUniqueViolation when the user already saved
	// the advertisement.
	Create(ctx context.Context, item Favorite) error
	Delete(ctx context.Context, kind Kind, id string) (bool, error)
	GetByID(ctx context.Context, kind Kind, id string) (Favorite, bool, error)
	ListByUser(ctx context.Context, kind Kind, userID string) ([]Favorite, error)
	Count(ctx context.Context, kind Kind) (int, error)
}
