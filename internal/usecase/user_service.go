package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
)

// UpdateUserInput carries the profile fields a user may edit.
type UpdateUserInput struct {
	ID          string
	FirstName   string
	LastName    string
	PhoneNumber string
	Location    string
}

type UserService struct {
	repo   user.Repository
	logger *logging.Logger
	now    func() time.Time
}

func NewUserService(repo user.Repository, logger *logging.Logger) *UserService {
	if logger == nil {
		logger = logging.Default()
	}

	return &UserService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Me returns the profile for the token subject, creating it on first sight.
func (s *UserService) Me(ctx context.Context, principal user.Principal) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Me")
	defer span.End()

	if err := requireActor(principal); err != nil {
		return user.User{}, err
	}

	item, exists, err := s.repo.GetByID(ctx, principal.UserID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if exists {
		return item, nil
	}

	if strings.TrimSpace(principal.Email) == "" {
		return user.User{}, fmt.Errorf("%w: token carries no email for user=%s", ErrUnauthorized, principal.UserID)
	}

	role := principal.Role
	if !role.Valid() {
		role = user.RoleUser
	}
	item = user.User{
		ID:           principal.UserID,
		Email:        strings.ToLower(strings.TrimSpace(principal.Email)),
		Role:         role,
		CreationDate: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if !errors.Is(err, dberr.ErrUniqueViolation) {
			return user.User{}, wrapStoreError("create user", err)
		}
		// A concurrent first request may have provisioned the same subject.
		stored, exists, getErr := s.repo.GetByID(ctx, item.ID)
		if getErr != nil {
			return user.User{}, fmt.Errorf("get user: %w", getErr)
		}
		if !exists {
			return user.User{}, wrapStoreError("create user", err)
		}
		return stored, nil
	}

	s.logger.InfoContext(ctx, "user provisioned", "user_id", item.ID, "role", item.Role)
	return item, nil
}

// Authorize resolves the stored profile for principal and rejects blocked
// accounts. The stored role wins over the token role.
func (s *UserService) Authorize(ctx context.Context, principal user.Principal) (user.Principal, error) {
	item, err := s.Me(ctx, principal)
	if err != nil {
		return user.Principal{}, err
	}
	if item.IsBlocked {
		return user.Principal{}, fmt.Errorf("%w: user=%s is blocked", ErrForbidden, item.ID)
	}

	return user.Principal{UserID: item.ID, Email: item.Email, Role: item.Role}, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return item, nil
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}

func (s *UserService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (s *UserService) Update(ctx context.Context, actor user.Principal, input UpdateUserInput) (user.User, error) {
	ctx, span := startActorSpan(ctx, "usecase.UserService.Update", actor)
	defer span.End()

	item, err := s.Get(ctx, input.ID)
	if err != nil {
		return user.User{}, err
	}
	if err := requireOwnerOrAdmin(actor, item.ID, "user"); err != nil {
		return user.User{}, err
	}

	item.FirstName = strings.TrimSpace(input.FirstName)
	item.LastName = strings.TrimSpace(input.LastName)
	item.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	item.Location = strings.TrimSpace(input.Location)
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return user.User{}, wrapStoreError("update user", err)
	}
	return item, nil
}

// Delete removes the account together with everything it owns.
func (s *UserService) Delete(ctx context.Context, actor user.Principal, userID string) error {
	ctx, span := startActorSpan(ctx, "usecase.UserService.Delete", actor)
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := requireOwnerOrAdmin(actor, userID, "user"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	s.logger.InfoContext(ctx, "user deleted", "user_id", userID, "actor_id", actor.UserID)
	return nil
}

func (s *UserService) SetBlocked(ctx context.Context, actor user.Principal, userID string, blocked bool) (user.User, error) {
	ctx, span := startActorSpan(ctx, "usecase.UserService.SetBlocked", actor)
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return user.User{}, err
	}
	if strings.TrimSpace(userID) == actor.UserID {
		return user.User{}, fmt.Errorf("%w: admins cannot change their own block state", ErrInvalidInput)
	}

	item, err := s.Get(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	item.IsBlocked = blocked
	if err := s.repo.Update(ctx, item); err != nil {
		return user.User{}, wrapStoreError("update user block state", err)
	}

	s.logger.InfoContext(ctx, "user block state changed", "user_id", item.ID, "blocked", blocked, "actor_id", actor.UserID)
	return item, nil
}

func (s *UserService) SetRole(ctx context.Context, actor user.Principal, userID string, role user.Role) (user.User, error) {
	ctx, span := startActorSpan(ctx, "usecase.UserService.SetRole", actor)
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return user.User{}, err
	}
	if !role.Valid() {
		return user.User{}, fmt.Errorf("%w: invalid role=%s", ErrInvalidInput, role)
	}

	item, err := s.Get(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	item.Role = role
	if err := s.repo.Update(ctx, item); err != nil {
		return user.User{}, wrapStoreError("update user role", err)
	}

	s.logger.InfoContext(ctx, "user role changed", "user_id", item.ID, "role", role, "actor_id", actor.UserID)
	return item, nil
}
