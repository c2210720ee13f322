package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/scout-market/internal/config"
	"github.com/riskibarqy/scout-market/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/scout-market/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/scout-market/internal/platform/id"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
	"github.com/riskibarqy/scout-market/internal/platform/metrics"
	"github.com/riskibarqy/scout-market/internal/usecase"
)

// NewHTTPServer wires storage, use cases and the router. The returned func
// must be called after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	verifier, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
	if err != nil {
		return nil, nil, fmt.Errorf("build token verifier: %w", err)
	}

	repos, release, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	services := newServices(repos, idgen.NewUUIDGenerator(), logger)

	httpMetrics, err := newMetrics(cfg, repos)
	if err != nil {
		_ = release()
		return nil, nil, err
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Handler:            httpapi.NewHandler(services, logger),
		Verifier:           verifier,
		Authorizer:         services.Users,
		Logger:             logger,
		Metrics:            httpMetrics,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, release, nil
}

func newServices(repos repositories, ids idgen.Generator, logger *logging.Logger) httpapi.Services {
	s := httpapi.Services{
		Users:         usecase.NewUserService(repos.users, logger),
		Lookups:       usecase.NewLookupService(repos.lookups),
		PlayerAds:     usecase.NewPlayerAdvertisementService(repos.playerAds, repos.lookups, ids),
		ClubAds:       usecase.NewClubAdvertisementService(repos.clubAds, repos.lookups, ids),
		ClubOffers:    usecase.NewClubOfferService(repos.clubOffers, repos.playerAds, repos.lookups, ids),
		PlayerOffers:  usecase.NewPlayerOfferService(repos.playerOffers, repos.clubAds, repos.lookups, ids),
		ClubHistories: usecase.NewClubHistoryService(repos.clubHistories, repos.lookups, ids),
		Chats:         usecase.NewChatService(repos.chats, repos.messages, repos.users, ids, logger),
		Favorites:     usecase.NewFavoriteService(repos.favorites, repos.playerAds, repos.clubAds, ids),
		Problems:      usecase.NewProblemService(repos.problems, ids),
	}
	s.Summary = usecase.NewSummaryService(
		s.Users, s.PlayerAds, s.ClubAds, s.ClubOffers, s.PlayerOffers,
		s.ClubHistories, s.Chats, s.Problems, s.Favorites,
	)
	return s
}

func newMetrics(cfg config.Config, repos repositories) (*metrics.HTTP, error) {
	if !cfg.MetricsEnabled {
		return nil, nil
	}

	m := metrics.NewHTTP("scout_market")
	if repos.db != nil {
		if err := m.RegisterDB(repos.db.DB, dbNameFromURL(cfg.DBURL)); err != nil {
			return nil, fmt.Errorf("register db metrics: %w", err)
		}
	}
	if repos.cache != nil {
		if err := m.RegisterCache("repository", repos.cache); err != nil {
			return nil, fmt.Errorf("register cache metrics: %w", err)
		}
	}
	return m, nil
}
