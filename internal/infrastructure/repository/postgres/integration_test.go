package postgres

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// openTestDB starts a disposable Postgres, applies db/migrations and seeds lookups.
// Set SCOUT_INTEGRATION=1 to run; docker must be reachable.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if os.Getenv("SCOUT_INTEGRATION") != "1" {
		t.Skip("set SCOUT_INTEGRATION=1 to run postgres integration tests")
	}

	ctx := t.Context()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("scout_market"),
		tcpostgres.WithUsername("scout"),
		tcpostgres.WithPassword("scout"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		// t.Context is already canceled when cleanups run.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New("file://"+filepath.ToSlash(migrationsDir(t)), dsn)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("apply migrations: %v", err)
	}
	srcErr, dbErr := m.Close()
	require.NoError(t, srcErr)
	require.NoError(t, dbErr)

	db, err := sqlx.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, BootstrapSeed(ctx, db))
	return db
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve caller path")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "db", "migrations")
}

func TestPostgresRepositories(t *testing.T) {
	db := openTestDB(t)
	ctx := t.Context()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	users := NewUserRepository(db)
	playerAds := NewPlayerAdvertisementRepository(db)
	clubOffers := NewClubOfferRepository(db)
	chats := NewChatRepository(db)
	messages := NewMessageRepository(db)
	favorites := NewFavoriteRepository(db)
	problems := NewProblemRepository(db)
	lookups := NewLookupRepository(db)

	player := user.User{ID: "player-1", Email: "player@example.com", Role: user.RoleUser, CreationDate: now}
	club := user.User{ID: "club-1", Email: "club@example.com", Role: user.RoleUser, CreationDate: now}
	require.NoError(t, users.Create(ctx, player))
	require.NoError(t, users.Create(ctx, club))

	t.Run("email is unique ignoring case", func(t *testing.T) {
		err := users.Create(ctx, user.User{ID: "dup", Email: "PLAYER@example.com", Role: user.RoleUser, CreationDate: now})
		assert.ErrorIs(t, err, dberr.ErrUniqueViolation)
	})

	t.Run("lookups are seeded", func(t *testing.T) {
		positions, err := lookups.ListPositions(ctx)
		require.NoError(t, err)
		assert.Len(t, positions, 10)
		_, exists, err := lookups.GetFoot(ctx, 3)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	ad := advertisement.PlayerAdvertisement{
		ID:               "ad-1",
		PlayerID:         player.ID,
		PlayerPositionID: 10,
		League:           "Premier League",
		Region:           "England",
		Age:              22,
		Height:           181,
		PlayerFootID:     2,
		SalaryRange:      advertisement.SalaryRange{Min: decimal.NewFromInt(1000), Max: decimal.NewFromInt(2500)},
		CreationDate:     now.Add(-24 * time.Hour),
		EndDate:          now.Add(24 * time.Hour),
	}
	require.NoError(t, playerAds.Create(ctx, ad))

	t.Run("advertisement state filters", func(t *testing.T) {
		active, err := playerAds.Count(ctx, advertisement.Filter{State: advertisement.StateActive, Now: now})
		require.NoError(t, err)
		assert.Equal(t, 1, active)

		inactive, err := playerAds.Count(ctx, advertisement.Filter{State: advertisement.StateInactive, Now: now})
		require.NoError(t, err)
		assert.Equal(t, 0, inactive)

		got, exists, err := playerAds.GetByID(ctx, ad.ID)
		require.NoError(t, err)
		require.True(t, exists)
		assert.True(t, ad.SalaryRange.Max.Equal(got.SalaryRange.Max))
	})

	t.Run("unknown position is a foreign key violation", func(t *testing.T) {
		bad := ad
		bad.ID = "ad-bad"
		bad.PlayerPositionID = 99
		assert.ErrorIs(t, playerAds.Create(ctx, bad), dberr.ErrForeignKeyViolation)
	})

	clubOffer := offer.ClubOffer{
		ID:                    "offer-1",
		PlayerAdvertisementID: ad.ID,
		ClubMemberID:          club.ID,
		Status:                offer.StatusOffered,
		PlayerPositionID:      10,
		ClubName:              "Arsenal",
		League:                "Premier League",
		Region:                "England",
		Salary:                decimal.RequireFromString("2000.50"),
		CreationDate:          now,
	}
	require.NoError(t, clubOffers.Create(ctx, clubOffer))

	t.Run("offers received by advertisement owner", func(t *testing.T) {
		received, err := clubOffers.List(ctx, offer.Filter{ReceiverID: player.ID})
		require.NoError(t, err)
		require.Len(t, received, 1)
		assert.True(t, clubOffer.Salary.Equal(received[0].Salary))

		updated, err := clubOffers.UpdateStatus(ctx, clubOffer.ID, offer.StatusAccepted)
		require.NoError(t, err)
		assert.True(t, updated)

		pending, err := clubOffers.Count(ctx, offer.Filter{Status: offer.StatusOffered})
		require.NoError(t, err)
		assert.Equal(t, 0, pending)
	})

	t.Run("chat pair is unique in either order", func(t *testing.T) {
		first, created, err := chats.GetOrCreate(ctx, chat.Chat{ID: "chat-1", User1ID: player.ID, User2ID: club.ID})
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := chats.GetOrCreate(ctx, chat.Chat{ID: "chat-2", User1ID: club.ID, User2ID: player.ID})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)

		require.NoError(t, messages.Create(ctx, chat.Message{ID: "m2", ChatID: first.ID, SenderID: club.ID, ReceiverID: player.ID, Content: "later", Timestamp: now.Add(time.Minute)}))
		require.NoError(t, messages.Create(ctx, chat.Message{ID: "m1", ChatID: first.ID, SenderID: player.ID, ReceiverID: club.ID, Content: "hello", Timestamp: now}))

		listed, err := messages.ListByChat(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "m1", listed[0].ID)
	})

	t.Run("favorites reject duplicates", func(t *testing.T) {
		fav := favorite.Favorite{ID: "fav-1", Kind: favorite.KindPlayerAdvertisement, UserID: club.ID, AdvertisementID: ad.ID}
		require.NoError(t, favorites.Create(ctx, fav))

		dup := fav
		dup.ID = "fav-2"
		assert.ErrorIs(t, favorites.Create(ctx, dup), dberr.ErrUniqueViolation)

		listed, err := favorites.ListByUser(ctx, favorite.KindPlayerAdvertisement, club.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, ad.ID, listed[0].AdvertisementID)
	})

	t.Run("problems solved filter", func(t *testing.T) {
		require.NoError(t, problems.Create(ctx, problem.Problem{ID: "p1", Title: "Login", Description: "cannot log in", CreationDate: now, RequesterID: player.ID}))
		unsolved, err := problems.Count(ctx, problem.StateUnsolved)
		require.NoError(t, err)
		assert.Equal(t, 1, unsolved)
	})

	t.Run("deleting a user cascades", func(t *testing.T) {
		deleted, err := users.Delete(ctx, player.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		_, exists, err := playerAds.GetByID(ctx, ad.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		n, err := clubOffers.Count(ctx, offer.Filter{})
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}
