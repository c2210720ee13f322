package httpapi

import (
	"net/http"

	"github.com/riskibarqy/scout-market/internal/domain/offer"
)

func (h *Handler) ListPlayerPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerPositions")
	defer span.End()

	items, err := h.lookups.ListPositions(ctx)
	if err != nil {
		h.fail(ctx, w, "list player positions failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, positionToDTO))
}

func (h *Handler) ListPlayerFeet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerFeet")
	defer span.End()

	items, err := h.lookups.ListFeet(ctx)
	if err != nil {
		h.fail(ctx, w, "list player feet failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, footToDTO))
}

func (h *Handler) ListOfferStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOfferStatuses")
	defer span.End()

	statuses := h.lookups.ListOfferStatuses(ctx)
	writeSuccess(ctx, w, http.StatusOK, mapSlice(statuses, func(s offer.Status) string { return string(s) }))
}

func (h *Handler) GetAdminSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminSummary")
	defer span.End()

	summary, err := h.summary.Get(ctx)
	if err != nil {
		h.fail(ctx, w, "get admin summary failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}
