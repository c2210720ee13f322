package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	idgen "github.com/riskibarqy/scout-market/internal/platform/id"
)

type ClubHistoryInput struct {
	ClubName         string
	League           string
	Region           string
	PlayerPositionID int64
	Achievements     clubhistory.Achievements
	StartDate        time.Time
	EndDate          time.Time
}

type ClubHistoryService struct {
	repo       clubhistory.Repository
	lookupRepo lookup.Repository
	idGen      idgen.Generator
}

func NewClubHistoryService(repo clubhistory.Repository, lookupRepo lookup.Repository, idGen idgen.Generator) *ClubHistoryService {
	return &ClubHistoryService{
		repo:       repo,
		lookupRepo: lookupRepo,
		idGen:      idGen,
	}
}

func (s *ClubHistoryService) Create(ctx context.Context, actor user.Principal, input ClubHistoryInput) (clubhistory.ClubHistory, error) {
	ctx, span := startActorSpan(ctx, "usecase.ClubHistoryService.Create", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return clubhistory.ClubHistory{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return clubhistory.ClubHistory{}, fmt.Errorf("generate club history id: %w", err)
	}

	item := clubhistory.ClubHistory{ID: id, PlayerID: actor.UserID}
	applyClubHistoryInput(&item, input)
	if err := s.validate(ctx, item); err != nil {
		return clubhistory.ClubHistory{}, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return clubhistory.ClubHistory{}, wrapStoreError("create club history", err)
	}

	return item, nil
}

func (s *ClubHistoryService) Update(ctx context.Context, actor user.Principal, id string, input ClubHistoryInput) (clubhistory.ClubHistory, error) {
	ctx, span := startActorSpan(ctx, "usecase.ClubHistoryService.Update", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return clubhistory.ClubHistory{}, err
	}
	if err := requireOwnerOrAdmin(actor, item.PlayerID, "club history"); err != nil {
		return clubhistory.ClubHistory{}, err
	}

	applyClubHistoryInput(&item, input)
	if err := s.validate(ctx, item); err != nil {
		return clubhistory.ClubHistory{}, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return clubhistory.ClubHistory{}, wrapStoreError("update club history", err)
	}

	return item, nil
}

func (s *ClubHistoryService) Delete(ctx context.Context, actor user.Principal, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.ClubHistoryService.Delete", actor)
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, item.PlayerID, "club history"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete club history: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: club history=%s", ErrNotFound, item.ID)
	}
	return nil
}

func (s *ClubHistoryService) Get(ctx context.Context, id string) (clubhistory.ClubHistory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clubhistory.ClubHistory{}, fmt.Errorf("%w: club history id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return clubhistory.ClubHistory{}, fmt.Errorf("get club history: %w", err)
	}
	if !exists {
		return clubhistory.ClubHistory{}, fmt.Errorf("%w: club history=%s", ErrNotFound, id)
	}
	return item, nil
}

// List returns every history when playerID is empty.
func (s *ClubHistoryService) List(ctx context.Context, playerID string) ([]clubhistory.ClubHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubHistoryService.List")
	defer span.End()

	items, err := s.repo.List(ctx, strings.TrimSpace(playerID))
	if err != nil {
		return nil, fmt.Errorf("list club histories: %w", err)
	}
	return items, nil
}

func (s *ClubHistoryService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count club histories: %w", err)
	}
	return n, nil
}

func (s *ClubHistoryService) validate(ctx context.Context, item clubhistory.ClubHistory) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return checkLookups(ctx, s.lookupRepo, item.PlayerPositionID, 0)
}

func applyClubHistoryInput(item *clubhistory.ClubHistory, input ClubHistoryInput) {
	item.ClubName = strings.TrimSpace(input.ClubName)
	item.League = strings.TrimSpace(input.League)
	item.Region = strings.TrimSpace(input.Region)
	item.PlayerPositionID = input.PlayerPositionID
	item.Achievements = input.Achievements
	item.Achievements.AdditionalAchievements = strings.TrimSpace(input.Achievements.AdditionalAchievements)
	item.StartDate = input.StartDate.UTC()
	item.EndDate = input.EndDate.UTC()
}
