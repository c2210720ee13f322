package advertisement

import "context"

type PlayerRepository interface {
	Create(ctx context.Context, item PlayerAdvertisement) error
	Update(ctx context.Context, item PlayerAdvertisement) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (PlayerAdvertisement, bool, error)
	List(ctx context.Context, filter Filter) ([]PlayerAdvertisement, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

type ClubRepository interface {
	Create(ctx context.Context, item ClubAdvertisement) error
	Update(ctx context.Context, item ClubAdvertisement) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (ClubAdvertisement, bool, error)
	List(ctx context.Context, filter Filter) ([]ClubAdvertisement, error)
	Count(ctx context.Context, filter Filter) (int, error)
}
