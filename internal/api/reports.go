package api

import (
	"net/http"

	"kurir/internal/model"
	"kurir/internal/report"
	"kurir/internal/store"
)

// ReportsHandler computes the revenue/expense report over an optional date
// range.
type ReportsHandler struct {
	Store *store.Store
}

type reportResponse struct {
	Totals       report.Totals    `json:"totals"`
	ExpenseTotal float64          `json:"expenseTotal"`
	Shipments    []model.Shipment `json:"shipments"`
	Trips        []model.Trip     `json:"trips"`
	NonZeroTrips []model.Trip     `json:"nonZeroTrips"`
	Expenses     []model.Expense  `json:"expenses"`
}

// Get handles GET /api/reports?startDate=&endDate=. Bounds are inclusive;
// an absent bound filters nothing on that side.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	ctx := r.Context()
	shipments, err := h.Store.Shipments(ctx)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load shipments")
		return
	}
	trips, err := h.Store.Trips(ctx)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load trips")
		return
	}
	expenses, err := h.Store.Expenses(ctx)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}

	shipments = report.ShipmentsInRange(shipments, startDate, endDate)
	trips = report.TripsInRange(trips, startDate, endDate)
	expenses = report.ExpensesInRange(expenses, startDate, endDate)

	resp := reportResponse{
		Totals:       report.Revenue(shipments, trips),
		ExpenseTotal: report.ExpenseTotal(expenses),
		Shipments:    shipments,
		Trips:        trips,
		NonZeroTrips: report.NonZeroTrips(trips),
		Expenses:     expenses,
	}
	if resp.Shipments == nil {
		resp.Shipments = []model.Shipment{}
	}
	if resp.Trips == nil {
		resp.Trips = []model.Trip{}
	}
	if resp.NonZeroTrips == nil {
		resp.NonZeroTrips = []model.Trip{}
	}
	if resp.Expenses == nil {
		resp.Expenses = []model.Expense{}
	}
	jsonResponse(w, http.StatusOK, resp)
}
