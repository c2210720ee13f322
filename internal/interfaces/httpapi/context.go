package httpapi

import (
	"context"

	"github.com/riskibarqy/scout-market/internal/domain/user"
)

type contextKey string

const (
	principalContextKey contextKey = "auth_principal"
	routeContextKey     contextKey = "route_info"
)

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}

// routeInfo is filled in by the mux wrapper once the pattern is known.
type routeInfo struct {
	pattern string
}

func withRouteInfo(ctx context.Context) (context.Context, *routeInfo) {
	if info, ok := ctx.Value(routeContextKey).(*routeInfo); ok {
		return ctx, info
	}
	info := &routeInfo{}
	return context.WithValue(ctx, routeContextKey, info), info
}

func routeFromContext(ctx context.Context) string {
	if info, ok := ctx.Value(routeContextKey).(*routeInfo); ok {
		return info.pattern
	}
	return ""
}
