package api

import (
	"net/http"

	"kurir/internal/model"
	"kurir/internal/store"
)

// CompanyHandler handles the single company info record.
type CompanyHandler struct {
	Store *store.Store
}

// Get handles GET /api/company.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.Store.CompanyInfo(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get company info")
		return
	}
	jsonResponse(w, http.StatusOK, info)
}

// Put handles PUT /api/company.
func (h *CompanyHandler) Put(w http.ResponseWriter, r *http.Request) {
	var info model.CompanyInfo
	if err := decodeJSON(r, &info); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Store.SetCompanyInfo(r.Context(), info); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save company info")
		return
	}
	jsonResponse(w, http.StatusOK, info)
}
