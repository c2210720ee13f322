package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	idgen "github.com/riskibarqy/scout-market/internal/platform/id"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// PlayerOfferInput is a player's answer to a club advertisement.
type PlayerOfferInput struct {
	ClubAdvertisementID   string
	Age                   int
	Height                int
	PlayerFootID          int64
	Salary                decimal.Decimal
	AdditionalInformation string
}

type PlayerOfferService struct {
	repo       offer.PlayerOfferRepository
	adRepo     advertisement.ClubRepository
	lookupRepo lookup.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerOfferService(
	repo offer.PlayerOfferRepository,
	adRepo advertisement.ClubRepository,
	lookupRepo lookup.Repository,
	idGen idgen.Generator,
) *PlayerOfferService {
	return &PlayerOfferService{
		repo:       repo,
		adRepo:     adRepo,
		lookupRepo: lookupRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerOfferService) Create(ctx context.Context, actor user.Principal, input PlayerOfferInput) (offer.PlayerOffer, error) {
	ctx, span := startActorSpan(ctx, "usecase.PlayerOfferService.Create", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return offer.PlayerOffer{}, err
	}

	ad, err := s.advertisement(ctx, input.ClubAdvertisementID)
	if err != nil {
		return offer.PlayerOffer{}, err
	}
	if ad.ClubMemberID == actor.UserID {
		return offer.PlayerOffer{}, fmt.Errorf("%w: cannot make an offer on your own advertisement", ErrInvalidInput)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return offer.PlayerOffer{}, fmt.Errorf("generate offer id: %w", err)
	}

	item := offer.PlayerOffer{
		ID:                  id,
		ClubAdvertisementID: ad.ID,
		PlayerID:            actor.UserID,
		Status:              offer.StatusOffered,
		CreationDate:        s.now().UTC(),
	}
	applyPlayerOfferInput(&item, input)

	if err := s.validate(ctx, item); err != nil {
		return offer.PlayerOffer{}, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return offer.PlayerOffer{}, wrapStoreError("create player offer", err)
	}

	return item, nil
}

func (s *PlayerOfferService) Update(ctx context.Context, actor user.Principal, id string, input PlayerOfferInput) (offer.PlayerOffer, error) {
	ctx, span := startActorSpan(ctx, "usecase.PlayerOfferService.Update", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return offer.PlayerOffer{}, err
	}
	if err := requireOwnerOrAdmin(actor, item.PlayerID, "offer"); err != nil {
		return offer.PlayerOffer{}, err
	}

	applyPlayerOfferInput(&item, input)
	if err := s.validate(ctx, item); err != nil {
		return offer.PlayerOffer{}, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return offer.PlayerOffer{}, wrapStoreError("update player offer", err)
	}

	return item, nil
}

func (s *PlayerOfferService) Accept(ctx context.Context, actor user.Principal, id string) (offer.PlayerOffer, error) {
	return s.setStatus(ctx, actor, id, offer.StatusAccepted)
}

func (s *PlayerOfferService) Reject(ctx context.Context, actor user.Principal, id string) (offer.PlayerOffer, error) {
	return s.setStatus(ctx, actor, id, offer.StatusRejected)
}

func (s *PlayerOfferService) setStatus(ctx context.Context, actor user.Principal, id string, status offer.Status) (offer.PlayerOffer, error) {
	ctx, span := startActorSpan(ctx, "usecase.PlayerOfferService.SetStatus", actor, attribute.String("offer.status", string(status)))
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return offer.PlayerOffer{}, err
	}
	ad, err := s.advertisement(ctx, item.ClubAdvertisementID)
	if err != nil {
		return offer.PlayerOffer{}, err
	}
	if err := requireOwnerOrAdmin(actor, ad.ClubMemberID, "advertisement"); err != nil {
		return offer.PlayerOffer{}, err
	}

	updated, err := s.repo.UpdateStatus(ctx, item.ID, status)
	if err != nil {
		return offer.PlayerOffer{}, fmt.Errorf("update player offer status: %w", err)
	}
	if !updated {
		return offer.PlayerOffer{}, fmt.Errorf("%w: player offer=%s", ErrNotFound, item.ID)
	}

	item.Status = status
	return item, nil
}

func (s *PlayerOfferService) Delete(ctx context.Context, actor user.Principal, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.PlayerOfferService.Delete", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, item.PlayerID, "offer"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete player offer: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player offer=%s", ErrNotFound, item.ID)
	}
	return nil
}

func (s *PlayerOfferService) Get(ctx context.Context, id string) (offer.PlayerOffer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return offer.PlayerOffer{}, fmt.Errorf("%w: offer id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return offer.PlayerOffer{}, fmt.Errorf("get player offer: %w", err)
	}
	if !exists {
		return offer.PlayerOffer{}, fmt.Errorf("%w: player offer=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerOfferService) List(ctx context.Context, input ListOffersInput) ([]offer.PlayerOffer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerOfferService.List")
	defer span.End()

	filter, err := offerFilter(input)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list player offers: %w", err)
	}
	return items, nil
}

func (s *PlayerOfferService) Count(ctx context.Context, status offer.Status) (int, error) {
	filter, err := offerFilter(ListOffersInput{Status: status})
	if err != nil {
		return 0, err
	}
	n, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count player offers: %w", err)
	}
	return n, nil
}

func (s *PlayerOfferService) advertisement(ctx context.Context, id string) (advertisement.ClubAdvertisement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("%w: club advertisement id is required", ErrInvalidInput)
	}
	ad, exists, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("get club advertisement: %w", err)
	}
	if !exists {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("%w: club advertisement=%s", ErrInvalidInput, id)
	}
	return ad, nil
}

func (s *PlayerOfferService) validate(ctx context.Context, item offer.PlayerOffer) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return checkLookups(ctx, s.lookupRepo, 0, item.PlayerFootID)
}

func applyPlayerOfferInput(item *offer.PlayerOffer, input PlayerOfferInput) {
	item.Age = input.Age
	item.Height = input.Height
	item.PlayerFootID = input.PlayerFootID
	item.Salary = input.Salary
	item.AdditionalInformation = strings.TrimSpace(input.AdditionalInformation)
}
