package httpapi

import (
	"net/http"

	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/usecase"
)

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.users.Me(ctx, principal)
	if err != nil {
		h.fail(ctx, w, "get me failed", err, "user_id", principal.UserID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	userID := pathValue(r, "userID")
	item, err := h.users.Get(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "get user failed", err, "user_id", userID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	items, err := h.users.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list users failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, userToDTO))
}

func (h *Handler) CountUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountUsers")
	defer span.End()

	n, err := h.users.Count(ctx)
	if err != nil {
		h.fail(ctx, w, "count users failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateUser")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateUserRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	userID := pathValue(r, "userID")
	item, err := h.users.Update(ctx, principal, usecase.UpdateUserInput{
		ID:          userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Location:    req.Location,
	})
	if err != nil {
		h.fail(ctx, w, "update user failed", err, "user_id", userID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteUser")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	userID := pathValue(r, "userID")
	if err := h.users.Delete(ctx, principal, userID); err != nil {
		h.fail(ctx, w, "delete user failed", err, "user_id", userID)
		return
	}
	writeNoContent(w)
}

func (h *Handler) BlockUser(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true)
}

func (h *Handler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false)
}

func (h *Handler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetUserBlocked")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	userID := pathValue(r, "userID")
	item, err := h.users.SetBlocked(ctx, principal, userID, blocked)
	if err != nil {
		h.fail(ctx, w, "set user block state failed", err, "user_id", userID, "blocked", blocked)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetUserRole")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setRoleRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	userID := pathValue(r, "userID")
	item, err := h.users.SetRole(ctx, principal, userID, user.Role(req.Role))
	if err != nil {
		h.fail(ctx, w, "set user role failed", err, "user_id", userID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportUsers")
	defer span.End()

	items, err := h.users.List(ctx)
	if err != nil {
		h.fail(ctx, w, "export users failed", err)
		return
	}
	h.writeExport(ctx, w, r, usersTable(items))
}
