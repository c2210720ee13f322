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

// ClubAdvertisementInput is the editable part of a club advertisement.
type ClubAdvertisementInput struct {
	PlayerPositionID int64
	ClubName         string
	League           string
	Region           string
	SalaryRange      advertisement.SalaryRange
	EndDate          time.Time
}

type ClubAdvertisementService struct {
	repo       advertisement.ClubRepository
	lookupRepo lookup.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewClubAdvertisementService(
	repo advertisement.ClubRepository,
	lookupRepo lookup.Repository,
	idGen idgen.Generator,
) *ClubAdvertisementService {
	return &ClubAdvertisementService{
		repo:       repo,
		lookupRepo: lookupRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *ClubAdvertisementService) Create(ctx context.Context, actor user.Principal, input ClubAdvertisementInput) (advertisement.ClubAdvertisement, error) {
	ctx, span := startActorSpan(ctx, "usecase.ClubAdvertisementService.Create", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return advertisement.ClubAdvertisement{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("generate advertisement id: %w", err)
	}

	item := advertisement.ClubAdvertisement{
		ID:           id,
		ClubMemberID: actor.UserID,
		CreationDate: s.now().UTC(),
	}
	applyClubAdvertisementInput(&item, input)

	if err := s.validate(ctx, item); err != nil {
		return advertisement.ClubAdvertisement{}, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return advertisement.ClubAdvertisement{}, wrapStoreError("create club advertisement", err)
	}

	return item, nil
}

func (s *ClubAdvertisementService) Update(ctx context.Context, actor user.Principal, id string, input ClubAdvertisementInput) (advertisement.ClubAdvertisement, error) {
	ctx, span := startActorSpan(ctx, "usecase.ClubAdvertisementService.Update", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return advertisement.ClubAdvertisement{}, err
	}
	if err := requireOwnerOrAdmin(actor, item.ClubMemberID, "advertisement"); err != nil {
		return advertisement.ClubAdvertisement{}, err
	}

	applyClubAdvertisementInput(&item, input)
	if err := s.validate(ctx, item); err != nil {
		return advertisement.ClubAdvertisement{}, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return advertisement.ClubAdvertisement{}, wrapStoreError("update club advertisement", err)
	}

	return item, nil
}

func (s *ClubAdvertisementService) Delete(ctx context.Context, actor user.Principal, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.ClubAdvertisementService.Delete", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, item.ClubMemberID, "advertisement"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete club advertisement: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: club advertisement=%s", ErrNotFound, item.ID)
	}
	return nil
}

func (s *ClubAdvertisementService) Get(ctx context.Context, id string) (advertisement.ClubAdvertisement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("%w: advertisement id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("get club advertisement: %w", err)
	}
	if !exists {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("%w: club advertisement=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *ClubAdvertisementService) List(ctx context.Context, input ListAdvertisementsInput) ([]advertisement.ClubAdvertisement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdvertisementService.List")
	defer span.End()

	items, err := s.repo.List(ctx, advertisement.Filter{
		State:   input.State,
		OwnerID: strings.TrimSpace(input.OwnerID),
		Now:     s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("list club advertisements: %w", err)
	}
	return items, nil
}

func (s *ClubAdvertisementService) Count(ctx context.Context, state advertisement.State) (int, error) {
	n, err := s.repo.Count(ctx, advertisement.Filter{State: state, Now: s.now().UTC()})
	if err != nil {
		return 0, fmt.Errorf("count club advertisements: %w", err)
	}
	return n, nil
}

func (s *ClubAdvertisementService) validate(ctx context.Context, item advertisement.ClubAdvertisement) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return checkLookups(ctx, s.lookupRepo, item.PlayerPositionID, 0)
}

func applyClubAdvertisementInput(item *advertisement.ClubAdvertisement, input ClubAdvertisementInput) {
	item.PlayerPositionID = input.PlayerPositionID
	item.ClubName = strings.TrimSpace(input.ClubName)
	item.League = strings.TrimSpace(input.League)
	item.Region = strings.TrimSpace(input.Region)
	item.SalaryRange = input.SalaryRange
	item.EndDate = input.EndDate.UTC()
}
