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

// ClubOfferInput is a club's answer to a player advertisement.
type ClubOfferInput struct {
	PlayerAdvertisementID string
	PlayerPositionID      int64
	ClubName              string
	League                string
	Region                string
	Salary                decimal.Decimal
	AdditionalInformation string
}

// ListOffersInput selects offers by status, maker and advertisement owner.
type ListOffersInput struct {
	Status     offer.Status
	MakerID    string
	ReceiverID string
}

type ClubOfferService struct {
	repo       offer.ClubOfferRepository
	adRepo     advertisement.PlayerRepository
	lookupRepo lookup.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewClubOfferService(
	repo offer.ClubOfferRepository,
	adRepo advertisement.PlayerRepository,
	lookupRepo lookup.Repository,
	idGen idgen.Generator,
) *ClubOfferService {
	return &ClubOfferService{
		repo:       repo,
		adRepo:     adRepo,
		lookupRepo: lookupRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *ClubOfferService) Create(ctx context.Context, actor user.Principal, input ClubOfferInput) (offer.ClubOffer, error) {
	ctx, span := startActorSpan(ctx, "usecase.ClubOfferService.Create", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return offer.ClubOffer{}, err
	}

	ad, err := s.advertisement(ctx, input.PlayerAdvertisementID)
	if err != nil {
		return offer.ClubOffer{}, err
	}
	if ad.PlayerID == actor.UserID {
		return offer.ClubOffer{}, fmt.Errorf("%w: cannot make an offer on your own advertisement", ErrInvalidInput)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return offer.ClubOffer{}, fmt.Errorf("generate offer id: %w", err)
	}

	item := offer.ClubOffer{
		ID:                    id,
		PlayerAdvertisementID: ad.ID,
		ClubMemberID:          actor.UserID,
		Status:                offer.StatusOffered,
		CreationDate:          s.now().UTC(),
	}
	applyClubOfferInput(&item, input)

	if err := s.validate(ctx, item); err != nil {
		return offer.ClubOffer{}, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return offer.ClubOffer{}, wrapStoreError("create club offer", err)
	}

	return item, nil
}

// Update edits the offer terms. Status and the target advertisement are fixed.
func (s *ClubOfferService) Update(ctx context.Context, actor user.Principal, id string, input ClubOfferInput) (offer.ClubOffer, error) {
	ctx, span := startActorSpan(ctx, "usecase.ClubOfferService.Update", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return offer.ClubOffer{}, err
	}
	if err := requireOwnerOrAdmin(actor, item.ClubMemberID, "offer"); err != nil {
		return offer.ClubOffer{}, err
	}

	applyClubOfferInput(&item, input)
	if err := s.validate(ctx, item); err != nil {
		return offer.ClubOffer{}, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return offer.ClubOffer{}, wrapStoreError("update club offer", err)
	}

	return item, nil
}

func (s *ClubOfferService) Accept(ctx context.Context, actor user.Principal, id string) (offer.ClubOffer, error) {
	return s.setStatus(ctx, actor, id, offer.StatusAccepted)
}

func (s *ClubOfferService) Reject(ctx context.Context, actor user.Principal, id string) (offer.ClubOffer, error) {
	return s.setStatus(ctx, actor, id, offer.StatusRejected)
}

// setStatus is allowed for the advertisement owner and admins. The
// advertisement is not required to be active.
func (s *ClubOfferService) setStatus(ctx context.Context, actor user.Principal, id string, status offer.Status) (offer.ClubOffer, error) {
	ctx, span := startActorSpan(ctx, "usecase.ClubOfferService.SetStatus", actor, attribute.String("offer.status", string(status)))
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return offer.ClubOffer{}, err
	}
	ad, err := s.advertisement(ctx, item.PlayerAdvertisementID)
	if err != nil {
		return offer.ClubOffer{}, err
	}
	if err := requireOwnerOrAdmin(actor, ad.PlayerID, "advertisement"); err != nil {
		return offer.ClubOffer{}, err
	}

	updated, err := s.repo.UpdateStatus(ctx, item.ID, status)
	if err != nil {
		return offer.ClubOffer{}, fmt.Errorf("update club offer status: %w", err)
	}
	if !updated {
		return offer.ClubOffer{}, fmt.Errorf("%w: club offer=%s", ErrNotFound, item.ID)
	}

	item.Status = status
	return item, nil
}

func (s *ClubOfferService) Delete(ctx context.Context, actor user.Principal, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.ClubOfferService.Delete", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, item.ClubMemberID, "offer"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete club offer: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: club offer=%s", ErrNotFound, item.ID)
	}
	return nil
}

func (s *ClubOfferService) Get(ctx context.Context, id string) (offer.ClubOffer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return offer.ClubOffer{}, fmt.Errorf("%w: offer id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return offer.ClubOffer{}, fmt.Errorf("get club offer: %w", err)
	}
	if !exists {
		return offer.ClubOffer{}, fmt.Errorf("%w: club offer=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *ClubOfferService) List(ctx context.Context, input ListOffersInput) ([]offer.ClubOffer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubOfferService.List")
	defer span.End()

	filter, err := offerFilter(input)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list club offers: %w", err)
	}
	return items, nil
}

func (s *ClubOfferService) Count(ctx context.Context, status offer.Status) (int, error) {
	filter, err := offerFilter(ListOffersInput{Status: status})
	if err != nil {
		return 0, err
	}
	n, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count club offers: %w", err)
	}
	return n, nil
}

func (s *ClubOfferService) advertisement(ctx context.Context, id string) (advertisement.PlayerAdvertisement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("%w: player advertisement id is required", ErrInvalidInput)
	}
	ad, exists, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("get player advertisement: %w", err)
	}
	if !exists {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("%w: player advertisement=%s", ErrInvalidInput, id)
	}
	return ad, nil
}

func (s *ClubOfferService) validate(ctx context.Context, item offer.ClubOffer) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return checkLookups(ctx, s.lookupRepo, item.PlayerPositionID, 0)
}

func applyClubOfferInput(item *offer.ClubOffer, input ClubOfferInput) {
	item.PlayerPositionID = input.PlayerPositionID
	item.ClubName = strings.TrimSpace(input.ClubName)
	item.League = strings.TrimSpace(input.League)
	item.Region = strings.TrimSpace(input.Region)
	item.Salary = input.Salary
	item.AdditionalInformation = strings.TrimSpace(input.AdditionalInformation)
}

func offerFilter(input ListOffersInput) (offer.Filter, error) {
	if input.Status != "" && !input.Status.Valid() {
		return offer.Filter{}, fmt.Errorf("%w: invalid offer status=%s", ErrInvalidInput, input.Status)
	}
	return offer.Filter{
		Status:     input.Status,
		MakerID:    strings.TrimSpace(input.MakerID),
		ReceiverID: strings.TrimSpace(input.ReceiverID),
	}, nil
}
