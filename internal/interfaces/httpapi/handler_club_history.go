package httpapi

import "net/http"

func (h *Handler) GetClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubHistory")
	defer span.End()

	id := pathValue(r, "id")
	item, err := h.clubHistories.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get club history failed", err, "club_history_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubHistoryToDTO(item))
}

// ListClubHistories accepts an optional playerId filter.
func (h *Handler) ListClubHistories(w http.ResponseWriter, r *http.Request) {
	h.listClubHistories(w, r, queryValue(r, "playerId"))
}

func (h *Handler) ListClubHistoriesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listClubHistories(w, r, userID)
}

func (h *Handler) listClubHistories(w http.ResponseWriter, r *http.Request, playerID string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubHistories")
	defer span.End()

	items, err := h.clubHistories.List(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "list club histories failed", err, "player_id", playerID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, clubHistoryToDTO))
}

func (h *Handler) CountClubHistories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountClubHistories")
	defer span.End()

	n, err := h.clubHistories.Count(ctx)
	if err != nil {
		h.fail(ctx, w, "count club histories failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}

func (h *Handler) CreateClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClubHistory")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req clubHistoryRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubHistories.Create(ctx, principal, req.input())
	if err != nil {
		h.fail(ctx, w, "create club history failed", err, "user_id", principal.UserID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, clubHistoryToDTO(item))
}

func (h *Handler) UpdateClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubHistory")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req clubHistoryRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.clubHistories.Update(ctx, principal, id, req.input())
	if err != nil {
		h.fail(ctx, w, "update club history failed", err, "club_history_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubHistoryToDTO(item))
}

func (h *Handler) DeleteClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClubHistory")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	if err := h.clubHistories.Delete(ctx, principal, id); err != nil {
		h.fail(ctx, w, "delete club history failed", err, "club_history_id", id)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ExportClubHistories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportClubHistories")
	defer span.End()

	items, err := h.clubHistories.List(ctx, queryValue(r, "playerId"))
	if err != nil {
		h.fail(ctx, w, "export club histories failed", err)
		return
	}
	h.writeExport(ctx, w, r, clubHistoriesTable(items))
}
