package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/usecase"
)

// offerDecision is an accept or reject transition.
type offerDecision[T any] func(ctx context.Context, actor user.Principal, id string) (T, error)

// parseOfferStatus treats an empty value as "any status".
func parseOfferStatus(r *http.Request) (offer.Status, error) {
	raw := queryValue(r, "status")
	if raw == "" {
		return "", nil
	}
	status, err := offer.ParseStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return status, nil
}

func (h *Handler) GetClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubOffer")
	defer span.End()

	id := pathValue(r, "id")
	item, err := h.clubOffers.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get club offer failed", err, "offer_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubOfferToDTO(item))
}

func (h *Handler) ListClubOffers(w http.ResponseWriter, r *http.Request) {
	status, err := parseOfferStatus(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listClubOffers(w, r, usecase.ListOffersInput{Status: status})
}

func (h *Handler) ListClubOffersByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listClubOffers(w, r, usecase.ListOffersInput{MakerID: userID})
}

// ListReceivedClubOffers returns offers made on the caller's advertisements.
func (h *Handler) ListReceivedClubOffers(w http.ResponseWriter, r *http.Request) {
	principal, err := requirePrincipal(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listClubOffers(w, r, usecase.ListOffersInput{ReceiverID: principal.UserID})
}

func (h *Handler) listClubOffers(w http.ResponseWriter, r *http.Request, input usecase.ListOffersInput) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubOffers")
	defer span.End()

	items, err := h.clubOffers.List(ctx, input)
	if err != nil {
		h.fail(ctx, w, "list club offers failed", err, "status", input.Status, "maker_id", input.MakerID, "receiver_id", input.ReceiverID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, clubOfferToDTO))
}

func (h *Handler) CountClubOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountClubOffers")
	defer span.End()

	status, err := parseOfferStatus(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	n, err := h.clubOffers.Count(ctx, status)
	if err != nil {
		h.fail(ctx, w, "count club offers failed", err, "status", status)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}

func (h *Handler) CreateClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClubOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req clubOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubOffers.Create(ctx, principal, req.input())
	if err != nil {
		h.fail(ctx, w, "create club offer failed", err, "advertisement_id", req.PlayerAdvertisementID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, clubOfferToDTO(item))
}

func (h *Handler) UpdateClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req clubOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.clubOffers.Update(ctx, principal, id, req.input())
	if err != nil {
		h.fail(ctx, w, "update club offer failed", err, "offer_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubOfferToDTO(item))
}

func (h *Handler) AcceptClubOffer(w http.ResponseWriter, r *http.Request) {
	h.decideClubOffer(w, r, h.clubOffers.Accept)
}

func (h *Handler) RejectClubOffer(w http.ResponseWriter, r *http.Request) {
	h.decideClubOffer(w, r, h.clubOffers.Reject)
}

func (h *Handler) decideClubOffer(w http.ResponseWriter, r *http.Request, decide offerDecision[offer.ClubOffer]) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DecideClubOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := decide(ctx, principal, id)
	if err != nil {
		h.fail(ctx, w, "decide club offer failed", err, "offer_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubOfferToDTO(item))
}

func (h *Handler) DeleteClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClubOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	if err := h.clubOffers.Delete(ctx, principal, id); err != nil {
		h.fail(ctx, w, "delete club offer failed", err, "offer_id", id)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ExportClubOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportClubOffers")
	defer span.End()

	status, err := parseOfferStatus(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.clubOffers.List(ctx, usecase.ListOffersInput{Status: status})
	if err != nil {
		h.fail(ctx, w, "export club offers failed", err)
		return
	}
	h.writeExport(ctx, w, r, clubOffersTable(items))
}

func (h *Handler) GetPlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerOffer")
	defer span.End()

	id := pathValue(r, "id")
	item, err := h.playerOffers.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get player offer failed", err, "offer_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerOfferToDTO(item))
}

func (h *Handler) ListPlayerOffers(w http.ResponseWriter, r *http.Request) {
	status, err := parseOfferStatus(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listPlayerOffers(w, r, usecase.ListOffersInput{Status: status})
}

func (h *Handler) ListPlayerOffersByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listPlayerOffers(w, r, usecase.ListOffersInput{MakerID: userID})
}

// ListReceivedPlayerOffers returns offers made on the caller's advertisements.
func (h *Handler) ListReceivedPlayerOffers(w http.ResponseWriter, r *http.Request) {
	principal, err := requirePrincipal(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listPlayerOffers(w, r, usecase.ListOffersInput{ReceiverID: principal.UserID})
}

func (h *Handler) listPlayerOffers(w http.ResponseWriter, r *http.Request, input usecase.ListOffersInput) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerOffers")
	defer span.End()

	items, err := h.playerOffers.List(ctx, input)
	if err != nil {
		h.fail(ctx, w, "list player offers failed", err, "status", input.Status, "maker_id", input.MakerID, "receiver_id", input.ReceiverID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerOfferToDTO))
}

func (h *Handler) CountPlayerOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountPlayerOffers")
	defer span.End()

	status, err := parseOfferStatus(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	n, err := h.playerOffers.Count(ctx, status)
	if err != nil {
		h.fail(ctx, w, "count player offers failed", err, "status", status)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}

func (h *Handler) CreatePlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayerOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerOffers.Create(ctx, principal, req.input())
	if err != nil {
		h.fail(ctx, w, "create player offer failed", err, "advertisement_id", req.ClubAdvertisementID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerOfferToDTO(item))
}

func (h *Handler) UpdatePlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.playerOffers.Update(ctx, principal, id, req.input())
	if err != nil {
		h.fail(ctx, w, "update player offer failed", err, "offer_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerOfferToDTO(item))
}

func (h *Handler) AcceptPlayerOffer(w http.ResponseWriter, r *http.Request) {
	h.decidePlayerOffer(w, r, h.playerOffers.Accept)
}

func (h *Handler) RejectPlayerOffer(w http.ResponseWriter, r *http.Request) {
	h.decidePlayerOffer(w, r, h.playerOffers.Reject)
}

func (h *Handler) decidePlayerOffer(w http.ResponseWriter, r *http.Request, decide offerDecision[offer.PlayerOffer]) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DecidePlayerOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := decide(ctx, principal, id)
	if err != nil {
		h.fail(ctx, w, "decide player offer failed", err, "offer_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerOfferToDTO(item))
}

func (h *Handler) DeletePlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayerOffer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	if err := h.playerOffers.Delete(ctx, principal, id); err != nil {
		h.fail(ctx, w, "delete player offer failed", err, "offer_id", id)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ExportPlayerOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayerOffers")
	defer span.End()

	status, err := parseOfferStatus(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerOffers.List(ctx, usecase.ListOffersInput{Status: status})
	if err != nil {
		h.fail(ctx, w, "export player offers failed", err)
		return
	}
	h.writeExport(ctx, w, r, playerOffersTable(items))
}
