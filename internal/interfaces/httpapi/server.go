package httpapi

import (
	"net/http"

	"github.com/riskibarqy/scout-market/internal/platform/logging"
	"github.com/riskibarqy/scout-market/internal/platform/metrics"
)

type RouterConfig struct {
	Handler            *Handler
	Verifier           TokenVerifier
	Authorizer         PrincipalAuthorizer
	Logger             *logging.Logger
	Metrics            *metrics.HTTP
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, cfg.Handler, cfg.Metrics, cfg.SwaggerEnabled)

	guard := routeGuard{verifier: cfg.Verifier, authorizer: cfg.Authorizer}
	registerUserRoutes(mux, cfg.Handler, guard)
	registerLookupRoutes(mux, cfg.Handler, guard)
	registerAdvertisementRoutes(mux, cfg.Handler, guard)
	registerOfferRoutes(mux, cfg.Handler, guard)
	registerClubHistoryRoutes(mux, cfg.Handler, guard)
	registerChatRoutes(mux, cfg.Handler, guard)
	registerFavoriteRoutes(mux, cfg.Handler, guard)
	registerProblemRoutes(mux, cfg.Handler, guard)
	registerAdminRoutes(mux, cfg.Handler, guard)

	return RequestTracing(
		RequestLogging(logger,
			RequestMetrics(cfg.Metrics,
				CORS(cfg.CORSAllowedOrigins,
					recoverPanic(logger, capturePattern(mux))))))
}

// routeGuard applies the two authorization policies to handlers.
type routeGuard struct {
	verifier   TokenVerifier
	authorizer PrincipalAuthorizer
}

// user admits authenticated, non-blocked users and admins.
func (g routeGuard) user(fn http.HandlerFunc) http.Handler {
	return RequireAuth(g.verifier, g.authorizer, fn)
}

// admin additionally requires the admin role.
func (g routeGuard) admin(fn http.HandlerFunc) http.Handler {
	return RequireAuth(g.verifier, g.authorizer, RequireAdmin(fn))
}
