package httpapi

import "net/http"

func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChat")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.chats.Get(ctx, principal, id)
	if err != nil {
		h.fail(ctx, w, "get chat failed", err, "chat_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, chatToDTO(item))
}

// ListChats lists every chat for admins and only the caller's chats otherwise.
func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	principal, err := requirePrincipal(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	userID := principal.UserID
	if principal.IsAdmin() {
		userID = ""
	}
	h.listChats(w, r, userID)
}

func (h *Handler) ListChatsByUser(w http.ResponseWriter, r *http.Request) {
	principal, err := requirePrincipal(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	if err := requireSelfOrAdmin(principal, userID); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listChats(w, r, userID)
}

func (h *Handler) listChats(w http.ResponseWriter, r *http.Request, userID string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChats")
	defer span.End()

	items, err := h.chats.ListByUser(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "list chats failed", err, "user_id", userID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, chatToDTO))
}

func (h *Handler) CountChats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountChats")
	defer span.End()

	n, err := h.chats.Count(ctx)
	if err != nil {
		h.fail(ctx, w, "count chats failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}

// OpenChat returns the existing chat with the other user or creates it.
func (h *Handler) OpenChat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenChat")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req openChatRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.chats.Open(ctx, principal, req.UserID)
	if err != nil {
		h.fail(ctx, w, "open chat failed", err, "user_id", principal.UserID, "other_user_id", req.UserID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, chatToDTO(item))
}

func (h *Handler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChat")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	if err := h.chats.Delete(ctx, principal, id); err != nil {
		h.fail(ctx, w, "delete chat failed", err, "chat_id", id)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChatMessages")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	chatID := pathValue(r, "chatID")
	items, err := h.chats.ListMessages(ctx, principal, chatID)
	if err != nil {
		h.fail(ctx, w, "list chat messages failed", err, "chat_id", chatID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, messageToDTO))
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMessage")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.chats.GetMessage(ctx, principal, id)
	if err != nil {
		h.fail(ctx, w, "get message failed", err, "message_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, messageToDTO(item))
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendMessage")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req sendMessageRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.chats.SendMessage(ctx, principal, req.ChatID, req.Content)
	if err != nil {
		h.fail(ctx, w, "send message failed", err, "chat_id", req.ChatID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, messageToDTO(item))
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMessage")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	if err := h.chats.DeleteMessage(ctx, principal, id); err != nil {
		h.fail(ctx, w, "delete message failed", err, "message_id", id)
		return
	}
	writeNoContent(w)
}

func (h *Handler) CountMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountMessages")
	defer span.End()

	n, err := h.chats.CountMessages(ctx)
	if err != nil {
		h.fail(ctx, w, "count messages failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}
