package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
)

type LookupService struct {
	repo lookup.Repository
}

func NewLookupService(repo lookup.Repository) *LookupService {
	return &LookupService{repo: repo}
}

func (s *LookupService) ListPositions(ctx context.Context) ([]lookup.Position, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LookupService.ListPositions")
	defer span.End()

	items, err := s.repo.ListPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player positions: %w", err)
	}
	return items, nil
}

func (s *LookupService) ListFeet(ctx context.Context) ([]lookup.Foot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LookupService.ListFeet")
	defer span.End()

	items, err := s.repo.ListFeet(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player feet: %w", err)
	}
	return items, nil
}

func (s *LookupService) ListOfferStatuses(context.Context) []offer.Status {
	return offer.Statuses()
}

// checkLookups verifies referenced dictionary rows. Zero ids are skipped.
func checkLookups(ctx context.Context, repo lookup.Repository, positionID, footID int64) error {
	if positionID != 0 {
		_, exists, err := repo.GetPosition(ctx, positionID)
		if err != nil {
			return fmt.Errorf("get player position: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: unknown player position=%d", ErrInvalidInput, positionID)
		}
	}
	if footID != 0 {
		_, exists, err := repo.GetFoot(ctx, footID)
		if err != nil {
			return fmt.Errorf("get player foot: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: unknown player foot=%d", ErrInvalidInput, footID)
		}
	}
	return nil
}
