package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
	idgen "github.com/riskibarqy/scout-market/internal/platform/id"
)

type FavoriteService struct {
	repo         favorite.Repository
	playerAdRepo advertisement.PlayerRepository
	clubAdRepo   advertisement.ClubRepository
	idGen        idgen.Generator
}

func NewFavoriteService(
	repo favorite.Repository,
	playerAdRepo advertisement.PlayerRepository,
	clubAdRepo advertisement.ClubRepository,
	idGen idgen.Generator,
) *FavoriteService {
	return &FavoriteService{
		repo:         repo,
		playerAdRepo: playerAdRepo,
		clubAdRepo:   clubAdRepo,
		idGen:        idGen,
	}
}

// Add saves the advertisement for actor. Saving the same advertisement twice
// is rejected as invalid input.
func (s *FavoriteService) Add(ctx context.Context, actor user.Principal, kind favorite.Kind, advertisementID string) (favorite.Favorite, error) {
	ctx, span := startActorSpan(ctx, "usecase.FavoriteService.Add", actor)
	defer span.End()

	if err := requireActor(actor); err != nil {
		return favorite.Favorite{}, err
	}
	advertisementID = strings.TrimSpace(advertisementID)
	if err := s.ensureAdvertisement(ctx, kind, advertisementID); err != nil {
		return favorite.Favorite{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return favorite.Favorite{}, fmt.Errorf("generate favorite id: %w", err)
	}

	item := favorite.Favorite{
		ID:              id,
		Kind:            kind,
		UserID:          actor.UserID,
		AdvertisementID: advertisementID,
	}
	if err := item.Validate(); err != nil {
		return favorite.Favorite{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if errors.Is(err, dberr.ErrUniqueViolation) {
			return favorite.Favorite{}, fmt.Errorf("%w: advertisement=%s is already a favorite", ErrInvalidInput, advertisementID)
		}
		return favorite.Favorite{}, wrapStoreError("create favorite", err)
	}

	return item, nil
}

func (s *FavoriteService) Remove(ctx context.Context, actor user.Principal, kind favorite.Kind, id string) error {
	ctx, span := startActorSpan(ctx, "usecase.FavoriteService.Remove", actor)
	defer span.End()

	if !kind.Valid() {
		return fmt.Errorf("%w: invalid favorite kind=%s", ErrInvalidInput, kind)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: favorite id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("get favorite: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: favorite=%s", ErrNotFound, id)
	}
	if err := requireOwnerOrAdmin(actor, item.UserID, "favorite"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: favorite=%s", ErrNotFound, id)
	}
	return nil
}

func (s *FavoriteService) ListByUser(ctx context.Context, kind favorite.Kind, userID string) ([]favorite.Favorite, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.ListByUser")
	defer span.End()

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: invalid favorite kind=%s", ErrInvalidInput, kind)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.repo.ListByUser(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return items, nil
}

// PlayerAdvertisements resolves the player advertisements favorited by userID.
func (s *FavoriteService) PlayerAdvertisements(ctx context.Context, userID string) ([]advertisement.PlayerAdvertisement, error) {
	favs, err := s.ListByUser(ctx, favorite.KindPlayerAdvertisement, userID)
	if err != nil {
		return nil, err
	}

	out := make([]advertisement.PlayerAdvertisement, 0, len(favs))
	for _, fav := range favs {
		ad, exists, err := s.playerAdRepo.GetByID(ctx, fav.AdvertisementID)
		if err != nil {
			return nil, fmt.Errorf("get player advertisement: %w", err)
		}
		if exists {
			out = append(out, ad)
		}
	}
	return out, nil
}

// ClubAdvertisements resolves the club advertisements favorited by userID.
func (s *FavoriteService) ClubAdvertisements(ctx context.Context, userID string) ([]advertisement.ClubAdvertisement, error) {
	favs, err := s.ListByUser(ctx, favorite.KindClubAdvertisement, userID)
	if err != nil {
		return nil, err
	}

	out := make([]advertisement.ClubAdvertisement, 0, len(favs))
	for _, fav := range favs {
		ad, exists, err := s.clubAdRepo.GetByID(ctx, fav.AdvertisementID)
		if err != nil {
			return nil, fmt.Errorf("get club advertisement: %w", err)
		}
		if exists {
			out = append(out, ad)
		}
	}
	return out, nil
}

func (s *FavoriteService) Count(ctx context.Context, kind favorite.Kind) (int, error) {
	n, err := s.repo.Count(ctx, kind)
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return n, nil
}

func (s *FavoriteService) ensureAdvertisement(ctx context.Context, kind favorite.Kind, id string) error {
	if id == "" {
		return fmt.Errorf("%w: advertisement id is required", ErrInvalidInput)
	}

	var (
		exists bool
		err    error
	)
	switch kind {
	case favorite.KindPlayerAdvertisement:
		_, exists, err = s.playerAdRepo.GetByID(ctx, id)
	case favorite.KindClubAdvertisement:
		_, exists, err = s.clubAdRepo.GetByID(ctx, id)
	default:
		return fmt.Errorf("%w: invalid favorite kind=%s", ErrInvalidInput, kind)
	}
	if err != nil {
		return fmt.Errorf("get advertisement: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s advertisement=%s", ErrNotFound, kind, id)
	}
	return nil
}
