package api

import (
	"net/http"

	"kurir/internal/model"
	"kurir/internal/store"
)

// ShipmentsHandler handles shipment CRUD, trash and annotation endpoints.
type ShipmentsHandler struct {
	Store *store.Store
}

type createShipmentRequest struct {
	SenderName      string  `json:"senderName"`
	SenderPhone     string  `json:"senderPhone"`
	SenderAddress   string  `json:"senderAddress"`
	ReceiverName    string  `json:"receiverName"`
	ReceiverPhone   string  `json:"receiverPhone"`
	ReceiverAddress string  `json:"receiverAddress"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentLocation string  `json:"paymentLocation"`
	ReceivedDate    string  `json:"receivedDate"`
}

type updateShipmentRequest struct {
	SenderName      *string  `json:"senderName"`
	SenderPhone     *string  `json:"senderPhone"`
	SenderAddress   *string  `json:"senderAddress"`
	ReceiverName    *string  `json:"receiverName"`
	ReceiverPhone   *string  `json:"receiverPhone"`
	ReceiverAddress *string  `json:"receiverAddress"`
	Description     *string  `json:"description"`
	Amount          *float64 `json:"amount"`
	PaymentMethod   *string  `json:"paymentMethod"`
	PaymentLocation *string  `json:"paymentLocation"`
	ReceivedDate    *string  `json:"receivedDate"`
	DeliveryDate    *string  `json:"deliveryDate"`
}

// List handles GET /api/shipments.
func (h *ShipmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.Store.Shipments(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list shipments")
		return
	}
	if shipments == nil {
		shipments = []model.Shipment{}
	}
	jsonResponse(w, http.StatusOK, shipments)
}

// Create handles POST /api/shipments.
func (h *ShipmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SenderName == "" || req.ReceiverName == "" {
		jsonError(w, http.StatusBadRequest, "sender and receiver names required")
		return
	}
	if req.Amount < 0 {
		jsonError(w, http.StatusBadRequest, "amount cannot be negative")
		return
	}

	sh, err := h.Store.AddShipment(r.Context(), model.Shipment{
		SenderName:      req.SenderName,
		SenderPhone:     req.SenderPhone,
		SenderAddress:   req.SenderAddress,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		Description:     req.Description,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		PaymentLocation: req.PaymentLocation,
		ReceivedDate:    req.ReceivedDate,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create shipment")
		return
	}

	jsonResponse(w, http.StatusCreated, sh)
}

// Get handles GET /api/shipments/{id}.
func (h *ShipmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	sh, err := h.Store.ShipmentByID(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get shipment")
		return
	}
	if sh == nil {
		jsonError(w, http.StatusNotFound, "shipment not found")
		return
	}
	jsonResponse(w, http.StatusOK, sh)
}

// GetByTracking handles GET /api/shipments/tracking/{number}.
func (h *ShipmentsHandler) GetByTracking(w http.ResponseWriter, r *http.Request) {
	sh, err := h.Store.ShipmentByTracking(r.Context(), r.PathValue("number"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get shipment")
		return
	}
	if sh == nil {
		jsonError(w, http.StatusNotFound, "shipment not found")
		return
	}
	jsonResponse(w, http.StatusOK, sh)
}

// Update handles PUT /api/shipments/{id}.
func (h *ShipmentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateShipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sh, err := h.Store.UpdateShipment(r.Context(), r.PathValue("id"), func(m *model.Shipment) {
		setIf(&m.SenderName, req.SenderName)
		setIf(&m.SenderPhone, req.SenderPhone)
		setIf(&m.SenderAddress, req.SenderAddress)
		setIf(&m.ReceiverName, req.ReceiverName)
		setIf(&m.ReceiverPhone, req.ReceiverPhone)
		setIf(&m.ReceiverAddress, req.ReceiverAddress)
		setIf(&m.Description, req.Description)
		setIf(&m.PaymentMethod, req.PaymentMethod)
		setIf(&m.PaymentLocation, req.PaymentLocation)
		setIf(&m.ReceivedDate, req.ReceivedDate)
		setIf(&m.DeliveryDate, req.DeliveryDate)
		if req.Amount != nil {
			m.Amount = *req.Amount
		}
	})
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if sh == nil {
		jsonError(w, http.StatusNotFound, "shipment not found")
		return
	}
	jsonResponse(w, http.StatusOK, sh)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles PUT /api/shipments/{id}/status.
func (h *ShipmentsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !model.ValidStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	sh, err := h.Store.SetShipmentStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	if sh == nil {
		jsonError(w, http.StatusNotFound, "shipment not found")
		return
	}
	jsonResponse(w, http.StatusOK, sh)
}

type setLocationRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SetLocation handles PUT /api/shipments/{id}/location.
func (h *ShipmentsHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req setLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sh, err := h.Store.SetShipmentLocation(r.Context(), r.PathValue("id"), req.X, req.Y)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update location")
		return
	}
	if sh == nil {
		jsonError(w, http.StatusNotFound, "shipment not found")
		return
	}
	jsonResponse(w, http.StatusOK, sh)
}

// Delete handles DELETE /api/shipments/{id} (moves the record to trash).
func (h *ShipmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Store.TrashShipment(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete shipment")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "shipment not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "shipment moved to trash"})
}

// ListTrash handles GET /api/shipments/trash.
func (h *ShipmentsHandler) ListTrash(w http.ResponseWriter, r *http.Request) {
	trashed, err := h.Store.TrashedShipments(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list trash")
		return
	}
	if trashed == nil {
		trashed = []model.Shipment{}
	}
	jsonResponse(w, http.StatusOK, trashed)
}

// Restore handles POST /api/shipments/{id}/restore.
func (h *ShipmentsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Store.RestoreShipment(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to restore shipment")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "shipment not found in trash")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "shipment restored"})
}

// DeleteFromTrash handles DELETE /api/shipments/trash/{id}.
func (h *ShipmentsHandler) DeleteFromTrash(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Store.DeleteTrashedShipment(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete shipment")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "shipment not found in trash")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "shipment deleted permanently"})
}

// setIf assigns through dst when src is present.
func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
