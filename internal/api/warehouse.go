package api

import (
	"net/http"

	"kurir/internal/model"
	"kurir/internal/store"
)

// WarehouseHandler handles warehouse item CRUD endpoints.
type WarehouseHandler struct {
	Store *store.Store
}

type warehouseItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// List handles GET /api/warehouse.
func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.WarehouseItems(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list warehouse items")
		return
	}
	if items == nil {
		items = []model.WarehouseItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/warehouse.
func (h *WarehouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req warehouseItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity cannot be negative")
		return
	}

	item, err := h.Store.AddWarehouseItem(r.Context(), model.WarehouseItem{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create warehouse item")
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/warehouse/{id}.
func (h *WarehouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req warehouseItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.UpdateWarehouseItem(r.Context(), r.PathValue("id"), func(i *model.WarehouseItem) {
		i.Name = req.Name
		i.Description = req.Description
		i.Quantity = req.Quantity
	})
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "warehouse item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/warehouse/{id}.
func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Store.RemoveWarehouseItem(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete warehouse item")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "warehouse item not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "warehouse item deleted"})
}
