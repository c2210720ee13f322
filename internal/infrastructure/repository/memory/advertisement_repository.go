package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
)

type PlayerAdvertisementRepository struct {
	db *Database
}

func NewPlayerAdvertisementRepository(db *Database) *PlayerAdvertisementRepository {
	return &PlayerAdvertisementRepository{db: db}
}

func (r *PlayerAdvertisementRepository) Create(_ context.Context, item advertisement.PlayerAdvertisement) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	r.db.playerAds.insert(item.ID, item)
	return nil
}

func (r *PlayerAdvertisementRepository) Update(_ context.Context, item advertisement.PlayerAdvertisement) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	if !r.db.playerAds.replace(item.ID, item) {
		return fmt.Errorf("player advertisement not found: %s", item.ID)
	}
	return nil
}

func (r *PlayerAdvertisementRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.db.playerAds.remove(id) {
		return false, nil
	}
	r.db.cascadePlayerAdvertisement(id)
	return true, nil
}

func (r *PlayerAdvertisementRepository) GetByID(_ context.Context, id string) (advertisement.PlayerAdvertisement, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.playerAds.get(id)
	return item, ok, nil
}

func (r *PlayerAdvertisementRepository) List(_ context.Context, filter advertisement.Filter) ([]advertisement.PlayerAdvertisement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.playerAds.list(playerAdMatcher(filter)), nil
}

func (r *PlayerAdvertisementRepository) Count(_ context.Context, filter advertisement.Filter) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.playerAds.count(playerAdMatcher(filter)), nil
}

func (r *PlayerAdvertisementRepository) checkRefs(item advertisement.PlayerAdvertisement) error {
	if err := r.db.requireUser("player_advertisements_player_id_fkey", item.PlayerID); err != nil {
		return err
	}
	if err := r.db.requirePosition("player_advertisements_player_position_id_fkey", item.PlayerPositionID); err != nil {
		return err
	}
	return r.db.requireFoot("player_advertisements_player_foot_id_fkey", item.PlayerFootID)
}

func playerAdMatcher(filter advertisement.Filter) func(advertisement.PlayerAdvertisement) bool {
	return func(a advertisement.PlayerAdvertisement) bool {
		if filter.OwnerID != "" && a.PlayerID != filter.OwnerID {
			return false
		}
		return matchState(filter, a.IsActive(filter.Now))
	}
}

type ClubAdvertisementRepository struct {
	db *Database
}

func NewClubAdvertisementRepository(db *Database) *ClubAdvertisementRepository {
	return &ClubAdvertisementRepository{db: db}
}

func (r *ClubAdvertisementRepository) Create(_ context.Context, item advertisement.ClubAdvertisement) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	r.db.clubAds.insert(item.ID, item)
	return nil
}

func (r *ClubAdvertisementRepository) Update(_ context.Context, item advertisement.ClubAdvertisement) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	if !r.db.clubAds.replace(item.ID, item) {
		return fmt.Errorf("club advertisement not found: %s", item.ID)
	}
	return nil
}

func (r *ClubAdvertisementRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.db.clubAds.remove(id) {
		return false, nil
	}
	r.db.cascadeClubAdvertisement(id)
	return true, nil
}

func (r *ClubAdvertisementRepository) GetByID(_ context.Context, id string) (advertisement.ClubAdvertisement, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.clubAds.get(id)
	return item, ok, nil
}

func (r *ClubAdvertisementRepository) List(_ context.Context, filter advertisement.Filter) ([]advertisement.ClubAdvertisement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.clubAds.list(clubAdMatcher(filter)), nil
}

func (r *ClubAdvertisementRepository) Count(_ context.Context, filter advertisement.Filter) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.clubAds.count(clubAdMatcher(filter)), nil
}

func (r *ClubAdvertisementRepository) checkRefs(item advertisement.ClubAdvertisement) error {
	if err := r.db.requireUser("club_advertisements_club_member_id_fkey", item.ClubMemberID); err != nil {
		return err
	}
	return r.db.requirePosition("club_advertisements_player_position_id_fkey", item.PlayerPositionID)
}

func clubAdMatcher(filter advertisement.Filter) func(advertisement.ClubAdvertisement) bool {
	return func(a advertisement.ClubAdvertisement) bool {
		if filter.OwnerID != "" && a.ClubMemberID != filter.OwnerID {
			return false
		}
		return matchState(filter, a.IsActive(filter.Now))
	}
}

func matchState(filter advertisement.Filter, active bool) bool {
	switch filter.State {
	case advertisement.StateActive:
		return active
	case advertisement.StateInactive:
		return !active
	default:
		return true
	}
}
