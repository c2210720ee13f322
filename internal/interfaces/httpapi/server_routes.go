package httpapi

import (
	"net/http"

	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, m *metrics.HTTP, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /openapi.json", handler.OpenAPIJSON)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerUserRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	mux.Handle("GET /api/users", g.user(h.ListUsers))
	mux.Handle("GET /api/users/me", g.user(h.GetMe))
	mux.Handle("GET /api/users/count", g.user(h.CountUsers))
	mux.Handle("GET /api/users/export", g.admin(h.ExportUsers))
	mux.Handle("GET /api/users/{userID}", g.user(h.GetUser))
	mux.Handle("PUT /api/users/{userID}", g.user(h.UpdateUser))
	mux.Handle("DELETE /api/users/{userID}", g.user(h.DeleteUser))
	mux.Handle("PUT /api/users/{userID}/block", g.admin(h.BlockUser))
	mux.Handle("PUT /api/users/{userID}/unblock", g.admin(h.UnblockUser))
	mux.Handle("PUT /api/users/{userID}/role", g.admin(h.SetUserRole))
}

func registerLookupRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	mux.Handle("GET /api/player-positions", g.user(h.ListPlayerPositions))
	mux.Handle("GET /api/player-feet", g.user(h.ListPlayerFeet))
	mux.Handle("GET /api/offer-statuses", g.user(h.ListOfferStatuses))
}

func registerAdvertisementRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	mux.Handle("GET /api/player-advertisements", g.user(h.ListPlayerAdvertisements))
	mux.Handle("GET /api/player-advertisements/active", g.user(h.ListActivePlayerAdvertisements))
	mux.Handle("GET /api/player-advertisements/inactive", g.user(h.ListInactivePlayerAdvertisements))
	mux.Handle("GET /api/player-advertisements/count", g.user(h.CountPlayerAdvertisements))
	mux.Handle("GET /api/player-advertisements/export", g.admin(h.ExportPlayerAdvertisements))
	mux.Handle("GET /api/player-advertisements/user/{userID}", g.user(h.ListPlayerAdvertisementsByUser))
	mux.Handle("GET /api/player-advertisements/{id}", g.user(h.GetPlayerAdvertisement))
	mux.Handle("POST /api/player-advertisements", g.user(h.CreatePlayerAdvertisement))
	mux.Handle("PUT /api/player-advertisements/{id}", g.user(h.UpdatePlayerAdvertisement))
	mux.Handle("DELETE /api/player-advertisements/{id}", g.user(h.DeletePlayerAdvertisement))

	mux.Handle("GET /api/club-advertisements", g.user(h.ListClubAdvertisements))
	mux.Handle("GET /api/club-advertisements/active", g.user(h.ListActiveClubAdvertisements))
	mux.Handle("GET /api/club-advertisements/inactive", g.user(h.ListInactiveClubAdvertisements))
	mux.Handle("GET /api/club-advertisements/count", g.user(h.CountClubAdvertisements))
	mux.Handle("GET /api/club-advertisements/export", g.admin(h.ExportClubAdvertisements))
	mux.Handle("GET /api/club-advertisements/user/{userID}", g.user(h.ListClubAdvertisementsByUser))
	mux.Handle("GET /api/club-advertisements/{id}", g.user(h.GetClubAdvertisement))
	mux.Handle("POST /api/club-advertisements", g.user(h.CreateClubAdvertisement))
	mux.Handle("PUT /api/club-advertisements/{id}", g.user(h.UpdateClubAdvertisement))
	mux.Handle("DELETE /api/club-advertisements/{id}", g.user(h.DeleteClubAdvertisement))
}

func registerOfferRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	mux.Handle("GET /api/club-offers", g.user(h.ListClubOffers))
	mux.Handle("GET /api/club-offers/count", g.user(h.CountClubOffers))
	mux.Handle("GET /api/club-offers/export", g.admin(h.ExportClubOffers))
	mux.Handle("GET /api/club-offers/received", g.user(h.ListReceivedClubOffers))
	mux.Handle("GET /api/club-offers/user/{userID}", g.user(h.ListClubOffersByUser))
	mux.Handle("GET /api/club-offers/{id}", g.user(h.GetClubOffer))
	mux.Handle("POST /api/club-offers", g.user(h.CreateClubOffer))
	mux.Handle("PUT /api/club-offers/{id}", g.user(h.UpdateClubOffer))
	mux.Handle("PUT /api/club-offers/{id}/accept", g.user(h.AcceptClubOffer))
	mux.Handle("PUT /api/club-offers/{id}/reject", g.user(h.RejectClubOffer))
	mux.Handle("DELETE /api/club-offers/{id}", g.user(h.DeleteClubOffer))

	mux.Handle("GET /api/player-offers", g.user(h.ListPlayerOffers))
	mux.Handle("GET /api/player-offers/count", g.user(h.CountPlayerOffers))
	mux.Handle("GET /api/player-offers/export", g.admin(h.ExportPlayerOffers))
	mux.Handle("GET /api/player-offers/received", g.user(h.ListReceivedPlayerOffers))
	mux.Handle("GET /api/player-offers/user/{userID}", g.user(h.ListPlayerOffersByUser))
	mux.Handle("GET /api/player-offers/{id}", g.user(h.GetPlayerOffer))
	mux.Handle("POST /api/player-offers", g.user(h.CreatePlayerOffer))
	mux.Handle("PUT /api/player-offers/{id}", g.user(h.UpdatePlayerOffer))
	mux.Handle("PUT /api/player-offers/{id}/accept", g.user(h.AcceptPlayerOffer))
	mux.Handle("PUT /api/player-offers/{id}/reject", g.user(h.RejectPlayerOffer))
	mux.Handle("DELETE /api/player-offers/{id}", g.user(h.DeletePlayerOffer))
}

func registerClubHistoryRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	mux.Handle("GET /api/club-histories", g.user(h.ListClubHistories))
	mux.Handle("GET /api/club-histories/count", g.user(h.CountClubHistories))
	mux.Handle("GET /api/club-histories/export", g.admin(h.ExportClubHistories))
	mux.Handle("GET /api/club-histories/user/{userID}", g.user(h.ListClubHistoriesByUser))
	mux.Handle("GET /api/club-histories/{id}", g.user(h.GetClubHistory))
	mux.Handle("POST /api/club-histories", g.user(h.CreateClubHistory))
	mux.Handle("PUT /api/club-histories/{id}", g.user(h.UpdateClubHistory))
	mux.Handle("DELETE /api/club-histories/{id}", g.user(h.DeleteClubHistory))
}

func registerChatRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	mux.Handle("GET /api/chats", g.user(h.ListChats))
	mux.Handle("GET /api/chats/count", g.user(h.CountChats))
	mux.Handle("GET /api/chats/user/{userID}", g.user(h.ListChatsByUser))
	mux.Handle("GET /api/chats/{id}", g.user(h.GetChat))
	mux.Handle("POST /api/chats", g.user(h.OpenChat))
	mux.Handle("DELETE /api/chats/{id}", g.user(h.DeleteChat))

	mux.Handle("GET /api/messages/count", g.user(h.CountMessages))
	mux.Handle("GET /api/messages/chat/{chatID}", g.user(h.ListChatMessages))
	mux.Handle("GET /api/messages/{id}", g.user(h.GetMessage))
	mux.Handle("POST /api/messages", g.user(h.SendMessage))
	mux.Handle("DELETE /api/messages/{id}", g.user(h.DeleteMessage))
}

func registerFavoriteRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	kinds := []struct {
		prefix         string
		kind           favorite.Kind
		advertisements http.HandlerFunc
	}{
		{"/api/favorite-player-advertisements", favorite.KindPlayerAdvertisement, h.ListFavoritePlayerAdvertisements},
		{"/api/favorite-club-advertisements", favorite.KindClubAdvertisement, h.ListFavoriteClubAdvertisements},
	}

	for _, k := range kinds {
		mux.Handle("GET "+k.prefix, g.user(h.ListFavorites(k.kind)))
		mux.Handle("GET "+k.prefix+"/count", g.user(h.CountFavorites(k.kind)))
		mux.Handle("GET "+k.prefix+"/advertisements", g.user(k.advertisements))
		mux.Handle("GET "+k.prefix+"/user/{userID}", g.user(h.ListFavorites(k.kind)))
		mux.Handle("GET "+k.prefix+"/user/{userID}/advertisements", g.user(k.advertisements))
		mux.Handle("POST "+k.prefix, g.user(h.AddFavorite(k.kind)))
		mux.Handle("DELETE "+k.prefix+"/{id}", g.user(h.RemoveFavorite(k.kind)))
	}
}

func registerProblemRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	mux.Handle("GET /api/problems", g.user(h.ListProblems))
	mux.Handle("GET /api/problems/solved", g.user(h.ListSolvedProblems))
	mux.Handle("GET /api/problems/unsolved", g.user(h.ListUnsolvedProblems))
	mux.Handle("GET /api/problems/count", g.user(h.CountProblems))
	mux.Handle("GET /api/problems/export", g.admin(h.ExportProblems))
	mux.Handle("GET /api/problems/{id}", g.user(h.GetProblem))
	mux.Handle("POST /api/problems", g.user(h.CreateProblem))
	mux.Handle("PUT /api/problems/{id}", g.user(h.UpdateProblem))
	mux.Handle("PUT /api/problems/{id}/solve", g.admin(h.SolveProblem))
	mux.Handle("DELETE /api/problems/{id}", g.user(h.DeleteProblem))
}

func registerAdminRoutes(mux *http.ServeMux, h *Handler, g routeGuard) {
	mux.Handle("GET /api/admin/summary", g.admin(h.GetAdminSummary))
}
