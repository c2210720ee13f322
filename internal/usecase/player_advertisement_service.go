package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	idgen "github.com/riskibarqy/scout-market/internal/platform/id"
)

// PlayerAdvertisementInput is the editable part of a player advertisement.
type PlayerAdvertisementInput struct {
	PlayerPositionID int64
	League           string
	Region           string
	Age              int
	Height           int
	PlayerFootID     int64
	SalaryRange      advertisement.SalaryRange
	EndDate          time.Time
}

// ListAdvertisementsInput selects advertisements by state and owner.
type ListAdvertisementsInput struct {
	State   advertisement.State
	OwnerID string
}

type PlayerAdvertisementService struct {
	repo       advertisement.PlayerRepository
	lookupRepo lookup.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerAdvertisementService(
	repo advertisement.PlayerRepository,
	lookupRepo lookup.Repository,
	idGen idgen.Generator,
) *PlayerAdvertisementService {
	return &PlayerAdvertisementService{
		repo:       repo,
		lookupRepo: lookupRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerAdvertisementService) Create(ctx context.Context, actor user.Principal, input PlayerAdvertisementInput) (advertisement.PlayerAdvertisement, error) {
	ctx, span := startActorSpan(ctx, "usecase.PlayerAdvertisementService.Create", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return advertisement.PlayerAdvertisement{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("generate advertisement id: %w", err)
	}

	item := advertisement.PlayerAdvertisement{
		ID:           id,
		PlayerID:     actor.UserID,
		CreationDate: s.now().UTC(),
	}
	applyPlayerAdvertisementInput(&item, input)

	if err := s.validate(ctx, item); err != nil {
		return advertisement.PlayerAdvertisement{}, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return advertisement.PlayerAdvertisement{}, wrapStoreError("create player advertisement", err)
	}

	return item, nil
}

func (s *PlayerAdvertisementService) Update(ctx context.Context, actor user.Principal, id string, input PlayerAdvertisementInput) (advertisement.PlayerAdvertisement, error) {
	ctx, span := startActorSpan(ctx, "usecase.PlayerAdvertisementService.Update", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return advertisement.PlayerAdvertisement{}, err
	}
	if err := requireOwnerOrAdmin(actor, item.PlayerID, "advertisement"); err != nil {
		return advertisement.PlayerAdvertisement{}, err
	}

	applyPlayerAdvertisementInput(&item, input)
	if err := s.validate(ctx, item); err != nil {
		return advertisement.PlayerAdvertisement{}, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return advertisement.PlayerAdvertisement{}, wrapStoreError("update player advertisement", err)
	}

	return item, nil
}

// Delete removes the advertisement with its offers and favorites.
func (s *PlayerAdvertisementService) Delete(ctx context.Context, actor user.Principal, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.PlayerAdvertisementService.Delete", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, item.PlayerID, "advertisement"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete player advertisement: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player advertisement=%s", ErrNotFound, item.ID)
	}
	return nil
}

func (s *PlayerAdvertisementService) Get(ctx context.Context, id string) (advertisement.PlayerAdvertisement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("%w: advertisement id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("get player advertisement: %w", err)
	}
	if !exists {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("%w: player advertisement=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerAdvertisementService) List(ctx context.Context, input ListAdvertisementsInput) ([]advertisement.PlayerAdvertisement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerAdvertisementService.List")
	defer span.End()

	items, err := s.repo.List(ctx, s.filter(input))
	if err != nil {
		return nil, fmt.Errorf("list player advertisements: %w", err)
	}
	return items, nil
}

func (s *PlayerAdvertisementService) Count(ctx context.Context, state advertisement.State) (int, error) {
	n, err := s.repo.Count(ctx, s.filter(ListAdvertisementsInput{State: state}))
	if err != nil {
		return 0, fmt.Errorf("count player advertisements: %w", err)
	}
	return n, nil
}

func (s *PlayerAdvertisementService) filter(input ListAdvertisementsInput) advertisement.Filter {
	return advertisement.Filter{
		State:   input.State,
		OwnerID: strings.TrimSpace(input.OwnerID),
		Now:     s.now().UTC(),
	}
}

func (s *PlayerAdvertisementService) validate(ctx context.Context, item advertisement.PlayerAdvertisement) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return checkLookups(ctx, s.lookupRepo, item.PlayerPositionID, item.PlayerFootID)
}

func applyPlayerAdvertisementInput(item *advertisement.PlayerAdvertisement, input PlayerAdvertisementInput) {
	item.PlayerPositionID = input.PlayerPositionID
	item.League = strings.TrimSpace(input.League)
	item.Region = strings.TrimSpace(input.Region)
	item.Age = input.Age
	item.Height = input.Height
	item.PlayerFootID = input.PlayerFootID
	item.SalaryRange = input.SalaryRange
	item.EndDate = input.EndDate.UTC()
}
