package api

import (
	"errors"
	"net/http"

	"kurir/internal/remote"
)

// RequestsHandler bridges to the shipping-request service.
type RequestsHandler struct {
	Requests *remote.Client
}

// Get handles GET /api/requests/{number}: the public tracking lookup.
func (h *RequestsHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.Requests.RequestByNumber(r.Context(), r.PathValue("number"))
	if errors.Is(err, remote.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "shipping request not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusBadGateway, "request service unavailable")
		return
	}
	jsonResponse(w, http.StatusOK, record)
}

type updateRequestStatusRequest struct {
	To string `json:"to"`
}

// SetStatus handles PUT /api/requests/{number}/status (admin only). The
// transition source is the record's current status, resolved fresh, so a
// stale caller cannot move a terminal request backwards. The prior state
// stays untouched when the remote call fails.
func (h *RequestsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req updateRequestStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Requests.RequestByNumber(r.Context(), r.PathValue("number"))
	if errors.Is(err, remote.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "shipping request not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusBadGateway, "request service unavailable")
		return
	}

	err = h.Requests.UpdateStatus(r.Context(), record.ID, record.Status, req.To)
	if errors.Is(err, remote.ErrInvalidTransition) {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, remote.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "shipping request not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusBadGateway, err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "status updated"})
}
