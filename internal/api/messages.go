package api

import (
	"errors"
	"net/http"
	"strings"

	"kurir/internal/auth"
	"kurir/internal/chat"
	"kurir/internal/model"
	"kurir/internal/remote"
	"kurir/internal/store"
)

// MessagesHandler handles the per-request conversation. Customers address
// their conversation by request number; the role query parameter selects
// which side of the read/unread bookkeeping applies. Reading as admin
// requires a valid bearer token.
type MessagesHandler struct {
	Store     *store.Store
	Requests  *remote.Client
	JWTSecret string
}

// role extracts and authorizes the chat role for the request. Defaults to
// customer; the admin role requires a valid token.
func (h *MessagesHandler) role(r *http.Request) (string, error) {
	role := r.URL.Query().Get("role")
	if role == "" {
		role = model.SenderCustomer
	}
	if role != model.SenderAdmin && role != model.SenderCustomer {
		return "", errors.New("invalid role")
	}
	if role == model.SenderAdmin {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return "", errors.New("admin role requires authentication")
		}
		if _, err := auth.ValidateToken(h.JWTSecret, strings.TrimPrefix(header, "Bearer ")); err != nil {
			return "", errors.New("admin role requires authentication")
		}
	}
	return role, nil
}

// resolveRequest maps the request number in the path to the remote record.
func (h *MessagesHandler) resolveRequest(w http.ResponseWriter, r *http.Request) *model.ShippingRequest {
	record, err := h.Requests.RequestByNumber(r.Context(), r.PathValue("number"))
	if errors.Is(err, remote.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "shipping request not found")
		return nil
	}
	if err != nil {
		jsonError(w, http.StatusBadGateway, "request service unavailable")
		return nil
	}
	return record
}

// List handles GET /api/requests/{number}/messages?role=. Reading the
// conversation marks the other side's messages read.
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	role, err := h.role(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, err.Error())
		return
	}

	record := h.resolveRequest(w, r)
	if record == nil {
		return
	}

	conversation, err := chat.Read(r.Context(), h.Store, record.ID, role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to read conversation")
		return
	}
	if conversation == nil {
		conversation = []model.Message{}
	}
	jsonResponse(w, http.StatusOK, conversation)
}

type sendMessageRequest struct {
	SenderName string `json:"sender_name"`
	Message    string `json:"message"`
}

// Send handles POST /api/requests/{number}/messages?role=.
func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	role, err := h.role(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		jsonError(w, http.StatusBadRequest, "message required")
		return
	}

	record := h.resolveRequest(w, r)
	if record == nil {
		return
	}

	conversation, err := chat.Send(r.Context(), h.Store, record.ID, role, req.SenderName, req.Message)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to send message")
		return
	}
	jsonResponse(w, http.StatusCreated, conversation)
}

// Unread handles GET /api/requests/{number}/messages/unread?role=.
func (h *MessagesHandler) Unread(w http.ResponseWriter, r *http.Request) {
	role, err := h.role(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, err.Error())
		return
	}

	record := h.resolveRequest(w, r)
	if record == nil {
		return
	}

	count, err := chat.UnreadCount(r.Context(), h.Store, record.ID, role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to count unread messages")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"unread": count})
}
