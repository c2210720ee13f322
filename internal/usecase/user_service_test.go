package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/infrastructure/repository/memory"
	usermock "github.com/riskibarqy/scout-market/internal/mocks/domain/user"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestUserService_Me_ProvisionsOnFirstSight(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	repo := usermock.NewRepository(t)
	service := NewUserService(repo, logging.NewNop())
	service.now = fixedClock

	principal := user.Principal{UserID: "u-1", Email: " Scout@Example.com ", Role: user.RoleUser}
	want := user.User{ID: "u-1", Email: "scout@example.com", Role: user.RoleUser, CreationDate: testNow}

	repo.On("GetByID", mock.Anything, "u-1").Return(user.User{}, false, nil).Once()
	repo.On("Create", mock.Anything, want).Return(nil).Once()

	got, err := service.Me(ctx, principal)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected user: got=%+v want=%+v", got, want)
	}
}

func TestUserService_Me_RequiresEmailToProvision(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewUserService(repo, logging.NewNop())

	repo.On("GetByID", mock.Anything, "u-1").Return(user.User{}, false, nil).Once()

	_, err := service.Me(t.Context(), user.Principal{UserID: "u-1"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUserService_Me_LosesProvisioningRace(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewUserService(repo, logging.NewNop())
	service.now = fixedClock

	stored := user.User{ID: "u-1", Email: "scout@example.com", Role: user.RoleUser, CreationDate: testNow.Add(-time.Second)}

	repo.On("GetByID", mock.Anything, "u-1").Return(user.User{}, false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(dberr.Unique("users_pkey", errors.New("duplicate key"))).Once()
	repo.On("GetByID", mock.Anything, "u-1").Return(stored, true, nil).Once()

	got, err := service.Me(t.Context(), user.Principal{UserID: "u-1", Email: "scout@example.com"})
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if got != stored {
		t.Fatalf("expected stored user: got=%+v want=%+v", got, stored)
	}
}

func TestUserService_Me_EmailConflictStaysConflict(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewUserService(repo, logging.NewNop())

	repo.On("GetByID", mock.Anything, "u-2").Return(user.User{}, false, nil).Twice()
	repo.On("Create", mock.Anything, mock.Anything).Return(dberr.Unique("users_email_key", errors.New("duplicate key"))).Once()

	_, err := service.Me(t.Context(), user.Principal{UserID: "u-2", Email: "taken@example.com"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

// gatedUserRepository holds the first reads until every caller has read, so
// all of them observe a missing user before any of them inserts.
type gatedUserRepository struct {
	user.Repository
	gate  sync.WaitGroup
	reads atomic.Int32
	held  int32
}

func (r *gatedUserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	item, exists, err := r.Repository.GetByID(ctx, userID)
	if r.reads.Add(1) <= r.held {
		r.gate.Done()
		r.gate.Wait()
	}
	return item, exists, err
}

func TestUserService_Authorize_ConcurrentFirstRequests(t *testing.T) {
	t.Parallel()

	const callers = 4
	repo := &gatedUserRepository{Repository: memory.NewUserRepository(memory.NewDatabase()), held: callers}
	repo.gate.Add(callers)
	service := NewUserService(repo, logging.NewNop())

	principal := user.Principal{UserID: "u-new", Email: "new@example.com", Role: user.RoleUser}

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = service.Authorize(t.Context(), principal)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	n, err := service.Count(t.Context())
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one provisioned user, got %d", n)
	}
}

func TestUserService_Authorize(t *testing.T) {
	t.Parallel()

	t.Run("stored role wins over token role", func(t *testing.T) {
		repo := usermock.NewRepository(t)
		service := NewUserService(repo, logging.NewNop())
		repo.On("GetByID", mock.Anything, "u-1").
			Return(user.User{ID: "u-1", Email: "a@example.com", Role: user.RoleUser}, true, nil).
			Once()

		got, err := service.Authorize(t.Context(), user.Principal{UserID: "u-1", Role: user.RoleAdmin})
		if err != nil {
			t.Fatalf("authorize: %v", err)
		}
		if got.IsAdmin() {
			t.Fatalf("expected token admin claim to be ignored")
		}
	})

	t.Run("blocked user is forbidden", func(t *testing.T) {
		repo := usermock.NewRepository(t)
		service := NewUserService(repo, logging.NewNop())
		repo.On("GetByID", mock.Anything, "u-2").
			Return(user.User{ID: "u-2", Email: "b@example.com", Role: user.RoleUser, IsBlocked: true}, true, nil).
			Once()

		_, err := service.Authorize(t.Context(), user.Principal{UserID: "u-2"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestUserService_Update_OwnerOrAdmin(t *testing.T) {
	t.Parallel()

	stored := user.User{ID: "u-1", Email: "a@example.com", Role: user.RoleUser}

	t.Run("other user is forbidden", func(t *testing.T) {
		repo := usermock.NewRepository(t)
		service := NewUserService(repo, logging.NewNop())
		repo.On("GetByID", mock.Anything, "u-1").Return(stored, true, nil).Once()

		_, err := service.Update(t.Context(), user.Principal{UserID: "u-9", Role: user.RoleUser}, UpdateUserInput{ID: "u-1", FirstName: "Eve"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("owner edits profile", func(t *testing.T) {
		repo := usermock.NewRepository(t)
		service := NewUserService(repo, logging.NewNop())
		repo.On("GetByID", mock.Anything, "u-1").Return(stored, true, nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(v user.User) bool {
			return v.ID == "u-1" && v.FirstName == "Ada" && v.Location == "Lisbon"
		})).Return(nil).Once()

		got, err := service.Update(t.Context(), user.Principal{UserID: "u-1", Role: user.RoleUser}, UpdateUserInput{
			ID:        "u-1",
			FirstName: " Ada ",
			Location:  "Lisbon",
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.FirstName != "Ada" {
			t.Fatalf("expected trimmed first name, got %q", got.FirstName)
		}
	})
}

func TestUserService_SetBlocked(t *testing.T) {
	t.Parallel()

	admin := user.Principal{UserID: "admin", Role: user.RoleAdmin}

	t.Run("requires admin", func(t *testing.T) {
		service := NewUserService(usermock.NewRepository(t), logging.NewNop())
		_, err := service.SetBlocked(t.Context(), user.Principal{UserID: "u-1", Role: user.RoleUser}, "u-2", true)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin cannot block self", func(t *testing.T) {
		service := NewUserService(usermock.NewRepository(t), logging.NewNop())
		_, err := service.SetBlocked(t.Context(), admin, "admin", true)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("blocks target", func(t *testing.T) {
		repo := usermock.NewRepository(t)
		service := NewUserService(repo, logging.NewNop())
		repo.On("GetByID", mock.Anything, "u-2").Return(user.User{ID: "u-2", Email: "b@example.com", Role: user.RoleUser}, true, nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(v user.User) bool { return v.IsBlocked })).Return(nil).Once()

		got, err := service.SetBlocked(t.Context(), admin, "u-2", true)
		if err != nil {
			t.Fatalf("set blocked: %v", err)
		}
		if !got.IsBlocked {
			t.Fatalf("expected blocked user")
		}
	})
}

func TestUserService_SetRole_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	service := NewUserService(usermock.NewRepository(t), logging.NewNop())
	_, err := service.SetRole(t.Context(), user.Principal{UserID: "admin", Role: user.RoleAdmin}, "u-2", user.Role("owner"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewUserService(repo, logging.NewNop())
	repo.On("Delete", mock.MatchedBy(func(context.Context) bool { return true }), "u-1").Return(false, nil).Once()

	err := service.Delete(t.Context(), user.Principal{UserID: "u-1", Role: user.RoleUser}, "u-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Delete_CascadesOwnedResources(t *testing.T) {
	t.Parallel()

	m := newMarketplace(t)
	player := m.signUp(t, "player", user.RoleUser)
	club := m.signUp(t, "club", user.RoleUser)

	ad, err := m.playerAds.Create(t.Context(), player, validPlayerAdInput())
	if err != nil {
		t.Fatalf("create advertisement: %v", err)
	}
	if _, err := m.clubOffers.Create(t.Context(), club, validClubOfferInput(ad.ID)); err != nil {
		t.Fatalf("create offer: %v", err)
	}

	if err := m.users.Delete(t.Context(), player, player.UserID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := m.playerAds.Get(t.Context(), ad.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected advertisement removed with owner, got %v", err)
	}
	n, err := m.clubOffers.Count(t.Context(), "")
	if err != nil {
		t.Fatalf("count offers: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected offers removed with advertisement, got %d", n)
	}
}
