package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
)

type ClubHistoryRepository struct {
	db *Database
}

func NewClubHistoryRepository(db *Database) *ClubHistoryRepository {
	return &ClubHistoryRepository{db: db}
}

func (r *ClubHistoryRepository) Create(_ context.Context, item clubhistory.ClubHistory) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	r.db.histories.insert(item.ID, item)
	return nil
}

func (r *ClubHistoryRepository) Update(_ context.Context, item clubhistory.ClubHistory) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	if !r.db.histories.replace(item.ID, item) {
		return fmt.Errorf("club history not found: %s", item.ID)
	}
	return nil
}

func (r *ClubHistoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.db.histories.remove(id), nil
}

func (r *ClubHistoryRepository) GetByID(_ context.Context, id string) (clubhistory.ClubHistory, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.histories.get(id)
	return item, ok, nil
}

func (r *ClubHistoryRepository) List(_ context.Context, playerID string) ([]clubhistory.ClubHistory, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if playerID == "" {
		return r.db.histories.list(nil), nil
	}
	return r.db.histories.list(func(h clubhistory.ClubHistory) bool { return h.PlayerID == playerID }), nil
}

func (r *ClubHistoryRepository) Count(_ context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.histories.count(nil), nil
}

func (r *ClubHistoryRepository) checkRefs(item clubhistory.ClubHistory) error {
	if err := r.db.requireUser("club_histories_player_id_fkey", item.PlayerID); err != nil {
		return err
	}
	return r.db.requirePosition("club_histories_player_position_id_fkey", item.PlayerPositionID)
}
