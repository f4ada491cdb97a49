package api

import (
	"net/http"

	"kurir/internal/model"
	"kurir/internal/store"
)

// ExpensesHandler handles expense CRUD endpoints.
type ExpensesHandler struct {
	Store *store.Store
}

type expenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// List handles GET /api/expenses.
func (h *ExpensesHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Store.Expenses(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	jsonResponse(w, http.StatusOK, expenses)
}

// Create handles POST /api/expenses.
func (h *ExpensesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Description == "" {
		jsonError(w, http.StatusBadRequest, "description required")
		return
	}
	if req.Amount < 0 {
		jsonError(w, http.StatusBadRequest, "amount cannot be negative")
		return
	}

	expense, err := h.Store.AddExpense(r.Context(), model.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create expense")
		return
	}
	jsonResponse(w, http.StatusCreated, expense)
}

// Update handles PUT /api/expenses/{id}.
func (h *ExpensesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := h.Store.UpdateExpense(r.Context(), r.PathValue("id"), func(e *model.Expense) {
		e.Description = req.Description
		e.Amount = req.Amount
		e.Date = req.Date
		e.Category = req.Category
	})
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if expense == nil {
		jsonError(w, http.StatusNotFound, "expense not found")
		return
	}
	jsonResponse(w, http.StatusOK, expense)
}

// Delete handles DELETE /api/expenses/{id}.
func (h *ExpensesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Store.RemoveExpense(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "expense not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "expense deleted"})
}
