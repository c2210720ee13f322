package offer

import "context"

type ClubOfferRepository interface {
	Create(ctx context.Context, item ClubOffer) error
	Update(ctx context.Context, item ClubOffer) error
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (ClubOffer, bool, error)
	List(ctx context.Context, filter Filter) ([]ClubOffer, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

type PlayerOfferRepository interface {
	Create(ctx context.Context, item PlayerOffer) error
	Update(ctx context.Context, item PlayerOffer) error
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (PlayerOffer, bool, error)
	List(ctx context.Context, filter Filter) ([]PlayerOffer, error)
	Count(ctx context.Context, filter Filter) (int, error)
}
