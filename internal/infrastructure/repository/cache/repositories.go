package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	basecache "github.com/riskibarqy/scout-market/internal/platform/cache"
)

// LookupRepository caches position and foot lookups. The rows only change through migrations.
type LookupRepository struct {
	next  lookup.Repository
	cache *basecache.Store
}

func NewLookupRepository(next lookup.Repository, cache *basecache.Store) *LookupRepository {
	return &LookupRepository{next: next, cache: cache}
}

func (r *LookupRepository) ListPositions(ctx context.Context) ([]lookup.Position, error) {
	v, err := r.cache.GetOrLoad(ctx, "lookup:positions", func(ctx context.Context) (any, error) {
		items, err := r.next.ListPositions(ctx)
		if err != nil {
			return nil, err
		}
		return append([]lookup.Position(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]lookup.Position)
	return append([]lookup.Position(nil), items...), nil
}

func (r *LookupRepository) GetPosition(ctx context.Context, id int64) (lookup.Position, bool, error) {
	key := "lookup:position:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetPosition(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedByID[lookup.Position]{value: item, exists: exists}, nil
	})
	if err != nil {
		return lookup.Position{}, false, err
	}

	cached, _ := v.(cachedByID[lookup.Position])
	return cached.value, cached.exists, nil
}

func (r *LookupRepository) ListFeet(ctx context.Context) ([]lookup.Foot, error) {
	v, err := r.cache.GetOrLoad(ctx, "lookup:feet", func(ctx context.Context) (any, error) {
		items, err := r.next.ListFeet(ctx)
		if err != nil {
			return nil, err
		}
		return append([]lookup.Foot(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]lookup.Foot)
	return append([]lookup.Foot(nil), items...), nil
}

func (r *LookupRepository) GetFoot(ctx context.Context, id int64) (lookup.Foot, bool, error) {
	key := "lookup:foot:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetFoot(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedByID[lookup.Foot]{value: item, exists: exists}, nil
	})
	if err != nil {
		return lookup.Foot{}, false, err
	}

	cached, _ := v.(cachedByID[lookup.Foot])
	return cached.value, cached.exists, nil
}

// UserRepository caches single-user reads, which back every authenticated request.
// Writes go through and evict the affected key.
type UserRepository struct {
	next  user.Repository
	cache *basecache.Store
}

func NewUserRepository(next user.Repository, cache *basecache.Store) *UserRepository {
	return &UserRepository{next: next, cache: cache}
}

// Create evicts even on failure: a conflicting insert means a cached miss
// for item.ID is stale.
func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	err := r.next.Create(ctx, item)
	r.cache.Delete(ctx, userKey(item.ID))
	return err
}

func (r *UserRepository) Update(ctx context.Context, item user.User) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, userKey(item.ID))
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, userID)
	if err != nil {
		return false, err
	}
	r.cache.Delete(ctx, userKey(userID))
	return deleted, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, userKey(userID), func(ctx context.Context) (cachedByID[user.User], error) {
		item, exists, err := r.next.GetByID(ctx, userID)
		if err != nil {
			return cachedByID[user.User]{}, err
		}
		return cachedByID[user.User]{value: item, exists: exists}, nil
	})
	if err != nil {
		return user.User{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	return r.next.List(ctx)
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

type cachedByID[T any] struct {
	value  T
	exists bool
}

func userKey(userID string) string {
	return "user:id:" + userID
}
