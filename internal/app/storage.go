package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/config"
	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	cacherepo "github.com/riskibarqy/scout-market/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/scout-market/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scout-market/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/scout-market/internal/platform/cache"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
)

type repositories struct {
	users         user.Repository
	lookups       lookup.Repository
	playerAds     advertisement.PlayerRepository
	clubAds       advertisement.ClubRepository
	clubOffers    offer.ClubOfferRepository
	playerOffers  offer.PlayerOfferRepository
	clubHistories clubhistory.Repository
	chats         chat.Repository
	messages      chat.MessageRepository
	favorites     favorite.Repository
	problems      problem.Repository

	// db is nil for the memory driver and cache is nil when disabled.
	db    *sqlx.DB
	cache *cache.Store
}

// openRepositories builds the store selected by STORAGE_DRIVER. The returned
// func releases whatever the store holds open.
func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos   repositories
		release = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		db := memory.NewDatabase()
		repos = repositories{
			users:         memory.NewUserRepository(db),
			lookups:       memory.NewLookupRepository(db),
			playerAds:     memory.NewPlayerAdvertisementRepository(db),
			clubAds:       memory.NewClubAdvertisementRepository(db),
			clubOffers:    memory.NewClubOfferRepository(db),
			playerOffers:  memory.NewPlayerOfferRepository(db),
			clubHistories: memory.NewClubHistoryRepository(db),
			chats:         memory.NewChatRepository(db),
			messages:      memory.NewMessageRepository(db),
			favorites:     memory.NewFavoriteRepository(db),
			problems:      memory.NewProblemRepository(db),
		}
		logger.WarnContext(ctx, "using in-memory storage, data is lost on restart")
	case config.StoragePostgres:
		db, err := openDatabase(cfg.DBURL, cfg.DBDisablePreparedBinary, cfg.DBMaxOpenConns)
		if err != nil {
			return repositories{}, nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return repositories{}, nil, errors.Wrap(err, "ping postgres")
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, err
		}

		repos = repositories{
			users:         postgres.NewUserRepository(db),
			lookups:       postgres.NewLookupRepository(db),
			playerAds:     postgres.NewPlayerAdvertisementRepository(db),
			clubAds:       postgres.NewClubAdvertisementRepository(db),
			clubOffers:    postgres.NewClubOfferRepository(db),
			playerOffers:  postgres.NewPlayerOfferRepository(db),
			clubHistories: postgres.NewClubHistoryRepository(db),
			chats:         postgres.NewChatRepository(db),
			messages:      postgres.NewMessageRepository(db),
			favorites:     postgres.NewFavoriteRepository(db),
			problems:      postgres.NewProblemRepository(db),
		}
		repos.db = db
		release = db.Close
		logger.InfoContext(ctx, "postgres storage ready", "db_name", dbNameFromURL(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)
	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.cache = store
		repos.users = cacherepo.NewUserRepository(repos.users, store)
		repos.lookups = cacherepo.NewLookupRepository(repos.lookups, store)
		logger.InfoContext(ctx, "read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, release, nil
}
