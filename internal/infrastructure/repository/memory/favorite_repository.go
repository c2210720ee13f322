package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
)

type FavoriteRepository struct {
	db *Database
}

func NewFavoriteRepository(db *Database) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(_ context.Context, item favorite.Favorite) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, err := r.db.favorites(item.Kind)
	if err != nil {
		return err
	}

	var adExists bool
	if item.Kind == favorite.KindPlayerAdvertisement {
		_, adExists = r.db.playerAds.get(item.AdvertisementID)
	} else {
		_, adExists = r.db.clubAds.get(item.AdvertisementID)
	}
	if !adExists {
		return dberr.ForeignKey("favorites_advertisement_id_fkey", fmt.Errorf("%s advertisement %s does not exist", item.Kind, item.AdvertisementID))
	}
	if err := r.db.requireUser("favorites_user_id_fkey", item.UserID); err != nil {
		return err
	}

	dup := t.count(func(f favorite.Favorite) bool {
		return f.UserID == item.UserID && f.AdvertisementID == item.AdvertisementID
	})
	if dup > 0 {
		return dberr.Unique("favorites_user_advertisement_key", fmt.Errorf("user %s already saved %s", item.UserID, item.AdvertisementID))
	}

	t.insert(item.ID, item)
	return nil
}

func (r *FavoriteRepository) Delete(_ context.Context, kind favorite.Kind, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, err := r.db.favorites(kind)
	if err != nil {
		return false, err
	}
	return t.remove(id), nil
}

func (r *FavoriteRepository) GetByID(_ context.Context, kind favorite.Kind, id string) (favorite.Favorite, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, err := r.db.favorites(kind)
	if err != nil {
		return favorite.Favorite{}, false, err
	}
	item, ok := t.get(id)
	return item, ok, nil
}

func (r *FavoriteRepository) ListByUser(_ context.Context, kind favorite.Kind, userID string) ([]favorite.Favorite, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, err := r.db.favorites(kind)
	if err != nil {
		return nil, err
	}
	return t.list(func(f favorite.Favorite) bool { return f.UserID == userID }), nil
}

func (r *FavoriteRepository) Count(_ context.Context, kind favorite.Kind) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, err := r.db.favorites(kind)
	if err != nil {
		return 0, err
	}
	return t.count(nil), nil
}
