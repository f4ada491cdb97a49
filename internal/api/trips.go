package api

import (
	"net/http"
	"strconv"

	"kurir/internal/model"
	"kurir/internal/report"
	"kurir/internal/store"
)

// TripsHandler handles trip endpoints. Trips are addressed by serial number,
// the public reference, never by internal id.
type TripsHandler struct {
	Store *store.Store
}

type createTripRequest struct {
	Date           string  `json:"date"`
	TobaccoRevenue float64 `json:"tobaccoRevenue"`
	OtherRevenue   float64 `json:"otherRevenue"`
}

// List handles GET /api/trips.
func (h *TripsHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Store.Trips(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list trips")
		return
	}
	if trips == nil {
		trips = []model.Trip{}
	}
	jsonResponse(w, http.StatusOK, trips)
}

// Create handles POST /api/trips.
func (h *TripsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TobaccoRevenue < 0 || req.OtherRevenue < 0 {
		jsonError(w, http.StatusBadRequest, "revenue cannot be negative")
		return
	}

	trip, err := h.Store.AddTrip(r.Context(), model.Trip{
		Date:           req.Date,
		TobaccoRevenue: req.TobaccoRevenue,
		OtherRevenue:   req.OtherRevenue,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create trip")
		return
	}
	jsonResponse(w, http.StatusCreated, trip)
}

// Get handles GET /api/trips/{serial}.
func (h *TripsHandler) Get(w http.ResponseWriter, r *http.Request) {
	serial, err := strconv.Atoi(r.PathValue("serial"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid trip serial number")
		return
	}

	trip, err := h.Store.TripBySerial(r.Context(), serial)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get trip")
		return
	}
	if trip == nil {
		jsonError(w, http.StatusNotFound, "trip not found")
		return
	}
	jsonResponse(w, http.StatusOK, trip)
}

// Delete handles DELETE /api/trips/{serial}.
func (h *TripsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serial, err := strconv.Atoi(r.PathValue("serial"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid trip serial number")
		return
	}

	ok, err := h.Store.RemoveTrip(r.Context(), serial)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete trip")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "trip not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "trip deleted"})
}

type attachShipmentRequest struct {
	ShipmentID   string  `json:"shipmentId"`
	DeliveryCost float64 `json:"deliveryCost"`
}

// AttachShipment handles POST /api/trips/{serial}/shipments.
func (h *TripsHandler) AttachShipment(w http.ResponseWriter, r *http.Request) {
	serial, err := strconv.Atoi(r.PathValue("serial"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid trip serial number")
		return
	}

	var req attachShipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ShipmentID == "" {
		jsonError(w, http.StatusBadRequest, "shipmentId required")
		return
	}

	trip, err := h.Store.AttachShipment(r.Context(), serial, req.ShipmentID, req.DeliveryCost)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if trip == nil {
		jsonError(w, http.StatusNotFound, "trip not found")
		return
	}
	jsonResponse(w, http.StatusOK, trip)
}

type setRevenueRequest struct {
	TobaccoRevenue float64 `json:"tobaccoRevenue"`
	OtherRevenue   float64 `json:"otherRevenue"`
}

// SetRevenue handles PUT /api/trips/{serial}/revenue.
func (h *TripsHandler) SetRevenue(w http.ResponseWriter, r *http.Request) {
	serial, err := strconv.Atoi(r.PathValue("serial"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid trip serial number")
		return
	}

	var req setRevenueRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	trip, err := h.Store.SetTripRevenue(r.Context(), serial, req.TobaccoRevenue, req.OtherRevenue)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if trip == nil {
		jsonError(w, http.StatusNotFound, "trip not found")
		return
	}
	jsonResponse(w, http.StatusOK, trip)
}

// DeliveryPayments handles GET /api/trips/{serial}/delivery-payments:
// the shipments on this trip whose price is collected from the receiver,
// read from the live shipment records.
func (h *TripsHandler) DeliveryPayments(w http.ResponseWriter, r *http.Request) {
	serial, err := strconv.Atoi(r.PathValue("serial"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid trip serial number")
		return
	}

	trips, err := h.Store.Trips(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load trips")
		return
	}
	shipments, err := h.Store.Shipments(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load shipments")
		return
	}

	selected, found := report.DeliveryPayments(trips, shipments, serial)
	if !found {
		jsonError(w, http.StatusNotFound, "trip not found")
		return
	}
	if selected == nil {
		selected = []model.Shipment{}
	}
	jsonResponse(w, http.StatusOK, selected)
}
