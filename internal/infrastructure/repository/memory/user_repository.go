package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
)

type UserRepository struct {
	db *Database
}

func NewUserRepository(db *Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.users.get(item.ID); exists {
		return dberr.Unique("users_pkey", fmt.Errorf("user %s already exists", item.ID))
	}
	if err := r.checkEmail(item); err != nil {
		return err
	}

	r.db.users.insert(item.ID, item)
	return nil
}

func (r *UserRepository) Update(_ context.Context, item user.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkEmail(item); err != nil {
		return err
	}
	if !r.db.users.replace(item.ID, item) {
		return fmt.Errorf("user not found: %s", item.ID)
	}
	return nil
}

func (r *UserRepository) Delete(_ context.Context, userID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.db.deleteUser(userID), nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.users.get(userID)
	return item, ok, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.users.list(nil), nil
}

func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.users.count(nil), nil
}

func (r *UserRepository) checkEmail(item user.User) error {
	taken := r.db.users.count(func(u user.User) bool {
		return u.ID != item.ID && strings.EqualFold(u.Email, item.Email)
	})
	if taken > 0 {
		return dberr.Unique("users_email_key", fmt.Errorf("email %s already registered", item.Email))
	}
	return nil
}
