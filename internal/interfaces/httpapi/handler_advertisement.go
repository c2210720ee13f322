package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/usecase"
)

func parseAdvertisementState(r *http.Request) (advertisement.State, error) {
	state, err := advertisement.ParseState(queryValue(r, "state"))
	if err != nil {
		return advertisement.StateAll, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return state, nil
}

func (h *Handler) GetPlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerAdvertisement")
	defer span.End()

	id := pathValue(r, "id")
	item, err := h.playerAds.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get player advertisement failed", err, "advertisement_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerAdvertisementToDTO(item))
}

func (h *Handler) ListPlayerAdvertisements(w http.ResponseWriter, r *http.Request) {
	state, err := parseAdvertisementState(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listPlayerAdvertisements(w, r, usecase.ListAdvertisementsInput{State: state})
}

func (h *Handler) ListActivePlayerAdvertisements(w http.ResponseWriter, r *http.Request) {
	h.listPlayerAdvertisements(w, r, usecase.ListAdvertisementsInput{State: advertisement.StateActive})
}

func (h *Handler) ListInactivePlayerAdvertisements(w http.ResponseWriter, r *http.Request) {
	h.listPlayerAdvertisements(w, r, usecase.ListAdvertisementsInput{State: advertisement.StateInactive})
}

func (h *Handler) ListPlayerAdvertisementsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listPlayerAdvertisements(w, r, usecase.ListAdvertisementsInput{OwnerID: userID})
}

func (h *Handler) listPlayerAdvertisements(w http.ResponseWriter, r *http.Request, input usecase.ListAdvertisementsInput) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerAdvertisements")
	defer span.End()

	items, err := h.playerAds.List(ctx, input)
	if err != nil {
		h.fail(ctx, w, "list player advertisements failed", err, "state", input.State, "owner_id", input.OwnerID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerAdvertisementToDTO))
}

func (h *Handler) CountPlayerAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountPlayerAdvertisements")
	defer span.End()

	state, err := parseAdvertisementState(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	n, err := h.playerAds.Count(ctx, state)
	if err != nil {
		h.fail(ctx, w, "count player advertisements failed", err, "state", state)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}

func (h *Handler) CreatePlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayerAdvertisement")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerAdvertisementRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerAds.Create(ctx, principal, req.input())
	if err != nil {
		h.fail(ctx, w, "create player advertisement failed", err, "user_id", principal.UserID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerAdvertisementToDTO(item))
}

func (h *Handler) UpdatePlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerAdvertisement")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerAdvertisementRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.playerAds.Update(ctx, principal, id, req.input())
	if err != nil {
		h.fail(ctx, w, "update player advertisement failed", err, "advertisement_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerAdvertisementToDTO(item))
}

func (h *Handler) DeletePlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayerAdvertisement")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	if err := h.playerAds.Delete(ctx, principal, id); err != nil {
		h.fail(ctx, w, "delete player advertisement failed", err, "advertisement_id", id)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ExportPlayerAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayerAdvertisements")
	defer span.End()

	state, err := parseAdvertisementState(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerAds.List(ctx, usecase.ListAdvertisementsInput{State: state})
	if err != nil {
		h.fail(ctx, w, "export player advertisements failed", err)
		return
	}
	h.writeExport(ctx, w, r, playerAdvertisementsTable(items))
}

func (h *Handler) GetClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubAdvertisement")
	defer span.End()

	id := pathValue(r, "id")
	item, err := h.clubAds.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get club advertisement failed", err, "advertisement_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubAdvertisementToDTO(item))
}

func (h *Handler) ListClubAdvertisements(w http.ResponseWriter, r *http.Request) {
	state, err := parseAdvertisementState(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listClubAdvertisements(w, r, usecase.ListAdvertisementsInput{State: state})
}

func (h *Handler) ListActiveClubAdvertisements(w http.ResponseWriter, r *http.Request) {
	h.listClubAdvertisements(w, r, usecase.ListAdvertisementsInput{State: advertisement.StateActive})
}

func (h *Handler) ListInactiveClubAdvertisements(w http.ResponseWriter, r *http.Request) {
	h.listClubAdvertisements(w, r, usecase.ListAdvertisementsInput{State: advertisement.StateInactive})
}

func (h *Handler) ListClubAdvertisementsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listClubAdvertisements(w, r, usecase.ListAdvertisementsInput{OwnerID: userID})
}

func (h *Handler) listClubAdvertisements(w http.ResponseWriter, r *http.Request, input usecase.ListAdvertisementsInput) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubAdvertisements")
	defer span.End()

	items, err := h.clubAds.List(ctx, input)
	if err != nil {
		h.fail(ctx, w, "list club advertisements failed", err, "state", input.State, "owner_id", input.OwnerID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, clubAdvertisementToDTO))
}

func (h *Handler) CountClubAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountClubAdvertisements")
	defer span.End()

	state, err := parseAdvertisementState(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	n, err := h.clubAds.Count(ctx, state)
	if err != nil {
		h.fail(ctx, w, "count club advertisements failed", err, "state", state)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}

func (h *Handler) CreateClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClubAdvertisement")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req clubAdvertisementRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubAds.Create(ctx, principal, req.input())
	if err != nil {
		h.fail(ctx, w, "create club advertisement failed", err, "user_id", principal.UserID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, clubAdvertisementToDTO(item))
}

func (h *Handler) UpdateClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubAdvertisement")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req clubAdvertisementRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.clubAds.Update(ctx, principal, id, req.input())
	if err != nil {
		h.fail(ctx, w, "update club advertisement failed", err, "advertisement_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubAdvertisementToDTO(item))
}

func (h *Handler) DeleteClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClubAdvertisement")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	if err := h.clubAds.Delete(ctx, principal, id); err != nil {
		h.fail(ctx, w, "delete club advertisement failed", err, "advertisement_id", id)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ExportClubAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportClubAdvertisements")
	defer span.End()

	state, err := parseAdvertisementState(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.clubAds.List(ctx, usecase.ListAdvertisementsInput{State: state})
	if err != nil {
		h.fail(ctx, w, "export club advertisements failed", err)
		return
	}
	h.writeExport(ctx, w, r, clubAdvertisementsTable(items))
}
