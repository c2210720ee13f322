package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/scout-market/internal/domain/favorite"
)

// Favorite handlers are shared by both advertisement kinds; the route decides
// which kind is served.

func (h *Handler) AddFavorite(kind favorite.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.Handler.AddFavorite")
		defer span.End()

		principal, err := requirePrincipal(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		var req favoriteRequest
		if err := h.decodeRequest(ctx, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		item, err := h.favorites.Add(ctx, principal, kind, req.AdvertisementID)
		if err != nil {
			h.fail(ctx, w, "add favorite failed", err, "kind", kind, "advertisement_id", req.AdvertisementID)
			return
		}
		writeSuccess(ctx, w, http.StatusCreated, favoriteToDTO(item))
	}
}

func (h *Handler) RemoveFavorite(kind favorite.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFavorite")
		defer span.End()

		principal, err := requirePrincipal(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		id := pathValue(r, "id")
		if err := h.favorites.Remove(ctx, principal, kind, id); err != nil {
			h.fail(ctx, w, "remove favorite failed", err, "kind", kind, "favorite_id", id)
			return
		}
		writeNoContent(w)
	}
}

// ListFavorites lists the caller's favorites, or userID's when the route
// carries one.
func (h *Handler) ListFavorites(kind favorite.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavorites")
		defer span.End()

		userID, err := favoriteOwner(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		items, err := h.favorites.ListByUser(ctx, kind, userID)
		if err != nil {
			h.fail(ctx, w, "list favorites failed", err, "kind", kind, "user_id", userID)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, mapSlice(items, favoriteToDTO))
	}
}

// ListFavoritePlayerAdvertisements resolves favorites to the advertisements.
func (h *Handler) ListFavoritePlayerAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavoritePlayerAdvertisements")
	defer span.End()

	userID, err := favoriteOwner(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.favorites.PlayerAdvertisements(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "list favorite player advertisements failed", err, "user_id", userID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerAdvertisementToDTO))
}

func (h *Handler) ListFavoriteClubAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavoriteClubAdvertisements")
	defer span.End()

	userID, err := favoriteOwner(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.favorites.ClubAdvertisements(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "list favorite club advertisements failed", err, "user_id", userID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, clubAdvertisementToDTO))
}

func (h *Handler) CountFavorites(kind favorite.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.Handler.CountFavorites")
		defer span.End()

		n, err := h.favorites.Count(ctx, kind)
		if err != nil {
			h.fail(ctx, w, "count favorites failed", err, "kind", kind)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
	}
}

func favoriteOwner(r *http.Request) (string, error) {
	principal, err := requirePrincipal(r.Context())
	if err != nil {
		return "", err
	}

	if !strings.Contains(r.Pattern, "{userID}") {
		return principal.UserID, nil
	}
	userID, err := userIDParam(r)
	if err != nil {
		return "", err
	}
	if err := requireSelfOrAdmin(principal, userID); err != nil {
		return "", err
	}
	return userID, nil
}
