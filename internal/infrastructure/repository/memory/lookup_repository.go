package memory

import (
	"context"

	"github.com/riskibarqy/scout-market/internal/domain/lookup"
)

type LookupRepository struct {
	db *Database
}

func NewLookupRepository(db *Database) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) ListPositions(_ context.Context) ([]lookup.Position, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return append([]lookup.Position(nil), r.db.positions...), nil
}

func (r *LookupRepository) GetPosition(_ context.Context, id int64) (lookup.Position, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, p := range r.db.positions {
		if p.ID == id {
			return p, true, nil
		}
	}
	return lookup.Position{}, false, nil
}

func (r *LookupRepository) ListFeet(_ context.Context) ([]lookup.Foot, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return append([]lookup.Foot(nil), r.db.feet...), nil
}

func (r *LookupRepository) GetFoot(_ context.Context, id int64) (lookup.Foot, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, f := range r.db.feet {
		if f.ID == id {
			return f, true, nil
		}
	}
	return lookup.Foot{}, false, nil
}
