package api

import (
	"database/sql"
	"net/http"

	"kurir/internal/remote"
	"kurir/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
// Customer-facing routes (tracking lookups, the customer side of a
// conversation) are public; everything that mutates business data requires
// the admin token.
func NewRouter(db *sql.DB, s *store.Store, requests *remote.Client, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	shipmentsHandler := &ShipmentsHandler{Store: s}
	tripsHandler := &TripsHandler{Store: s}
	expensesHandler := &ExpensesHandler{Store: s}
	warehouseHandler := &WarehouseHandler{Store: s}
	companyHandler := &CompanyHandler{Store: s}
	reportsHandler := &ReportsHandler{Store: s}
	messagesHandler := &MessagesHandler{Store: s, Requests: requests, JWTSecret: jwtSecret}
	requestsHandler := &RequestsHandler{Requests: requests}
	eventsHandler := &EventsHandler{Bus: s.Bus()}

	authMW := AuthMiddleware(jwtSecret)

	// Public: login, tracking, the customer side of conversations.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/shipments/tracking/{number}", shipmentsHandler.GetByTracking)
	mux.HandleFunc("GET /api/requests/{number}", requestsHandler.Get)
	mux.HandleFunc("GET /api/requests/{number}/messages", messagesHandler.List)
	mux.HandleFunc("POST /api/requests/{number}/messages", messagesHandler.Send)
	mux.HandleFunc("GET /api/requests/{number}/messages/unread", messagesHandler.Unread)

	// Authenticated.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Shipments.
	mux.Handle("GET /api/shipments", authMW(http.HandlerFunc(shipmentsHandler.List)))
	mux.Handle("POST /api/shipments", authMW(http.HandlerFunc(shipmentsHandler.Create)))
	mux.Handle("GET /api/shipments/trash", authMW(http.HandlerFunc(shipmentsHandler.ListTrash)))
	mux.Handle("DELETE /api/shipments/trash/{id}", authMW(http.HandlerFunc(shipmentsHandler.DeleteFromTrash)))
	mux.Handle("GET /api/shipments/{id}", authMW(http.HandlerFunc(shipmentsHandler.Get)))
	mux.Handle("PUT /api/shipments/{id}", authMW(http.HandlerFunc(shipmentsHandler.Update)))
	mux.Handle("DELETE /api/shipments/{id}", authMW(http.HandlerFunc(shipmentsHandler.Delete)))
	mux.Handle("PUT /api/shipments/{id}/status", authMW(http.HandlerFunc(shipmentsHandler.SetStatus)))
	mux.Handle("PUT /api/shipments/{id}/location", authMW(http.HandlerFunc(shipmentsHandler.SetLocation)))
	mux.Handle("POST /api/shipments/{id}/restore", authMW(http.HandlerFunc(shipmentsHandler.Restore)))

	// Trips.
	mux.Handle("GET /api/trips", authMW(http.HandlerFunc(tripsHandler.List)))
	mux.Handle("POST /api/trips", authMW(http.HandlerFunc(tripsHandler.Create)))
	mux.Handle("GET /api/trips/{serial}", authMW(http.HandlerFunc(tripsHandler.Get)))
	mux.Handle("DELETE /api/trips/{serial}", authMW(http.HandlerFunc(tripsHandler.Delete)))
	mux.Handle("POST /api/trips/{serial}/shipments", authMW(http.HandlerFunc(tripsHandler.AttachShipment)))
	mux.Handle("PUT /api/trips/{serial}/revenue", authMW(http.HandlerFunc(tripsHandler.SetRevenue)))
	mux.Handle("GET /api/trips/{serial}/delivery-payments", authMW(http.HandlerFunc(tripsHandler.DeliveryPayments)))

	// Expenses.
	mux.Handle("GET /api/expenses", authMW(http.HandlerFunc(expensesHandler.List)))
	mux.Handle("POST /api/expenses", authMW(http.HandlerFunc(expensesHandler.Create)))
	mux.Handle("PUT /api/expenses/{id}", authMW(http.HandlerFunc(expensesHandler.Update)))
	mux.Handle("DELETE /api/expenses/{id}", authMW(http.HandlerFunc(expensesHandler.Delete)))

	// Warehouse.
	mux.Handle("GET /api/warehouse", authMW(http.HandlerFunc(warehouseHandler.List)))
	mux.Handle("POST /api/warehouse", authMW(http.HandlerFunc(warehouseHandler.Create)))
	mux.Handle("PUT /api/warehouse/{id}", authMW(http.HandlerFunc(warehouseHandler.Update)))
	mux.Handle("DELETE /api/warehouse/{id}", authMW(http.HandlerFunc(warehouseHandler.Delete)))

	// Company info.
	mux.Handle("GET /api/company", authMW(http.HandlerFunc(companyHandler.Get)))
	mux.Handle("PUT /api/company", authMW(http.HandlerFunc(companyHandler.Put)))

	// Reports.
	mux.Handle("GET /api/reports", authMW(http.HandlerFunc(reportsHandler.Get)))

	// Request status updates (admin only; lookups are public above).
	mux.Handle("PUT /api/requests/{number}/status", authMW(http.HandlerFunc(requestsHandler.SetStatus)))

	// Change signal stream.
	mux.Handle("GET /api/events", authMW(http.HandlerFunc(eventsHandler.Stream)))

	return mux
}
