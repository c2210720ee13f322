package lookup

import "context"

// Repository reads the seeded dictionary tables.
type Repository interface {
	ListPositions(ctx context.Context) ([]Position, error)
	GetPosition(ctx context.Context, id int64) (Position, bool, error)
	ListFeet(ctx context.Context) ([]Foot, error)
	GetFoot(ctx context.Context, id int64) (Foot, bool, error)
}
