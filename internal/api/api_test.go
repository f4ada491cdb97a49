package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"kurir/internal/db"
	"kurir/internal/kv"
	"kurir/internal/model"
	"kurir/internal/notify"
	"kurir/internal/remote"
	"kurir/internal/store"
)

const testJWTSecret = "test-secret"

// fakeRequestService serves a single shipping request, REQ-001, and accepts
// status updates for it.
func fakeRequestService(t *testing.T) *remote.Client {
	t.Helper()
	status := model.RequestPending
	mux := http.NewServeMux()
	mux.HandleFunc("GET /requests/REQ-001", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.ShippingRequest{
			ID:            "req-1",
			RequestNumber: "REQ-001",
			CustomerName:  "Maja",
			Status:        status,
		})
	})
	mux.HandleFunc("PUT /requests/req-1/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		status = body["status"]
		w.WriteHeader(http.StatusNoContent)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return remote.NewClient(server.URL)
}

func setupTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	database := db.NewTestDB(t)
	s := store.New(kv.NewSQLite(database), notify.NewBus())
	router := NewRouter(database, s, fakeRequestService(t), testJWTSecret)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	// Store admin credentials.
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	store.SaveAdminCredentials(ctx, database, "admin", string(hash))

	// Get token.
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "password"})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var loginResp map[string]string
	json.NewDecoder(resp.Body).Decode(&loginResp)
	token := loginResp["token"]
	if token == "" {
		t.Fatal("empty token from login")
	}

	return server, token
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func TestLoginEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	// Test invalid credentials.
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
	resp, _ := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestShipmentsRequireAuth(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, _ := http.Get(server.URL + "/api/shipments")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestShipmentsAPIFlow(t *testing.T) {
	server, token := setupTestServer(t)

	// Create shipment.
	req, _ := authRequest("POST", server.URL+"/api/shipments", token, map[string]any{
		"senderName":      "Ana",
		"receiverName":    "Bojan",
		"amount":          120.0,
		"paymentMethod":   model.PaymentOnDelivery,
		"paymentLocation": model.PaymentAtReceiver,
		"receivedDate":    "2026-03-01",
	})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var sh model.Shipment
	json.NewDecoder(resp.Body).Decode(&sh)
	resp.Body.Close()
	if sh.TrackingNumber == "" {
		t.Fatal("expected tracking number assigned")
	}

	// Public tracking lookup needs no token.
	resp, _ = http.Get(server.URL + "/api/shipments/tracking/" + sh.TrackingNumber)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("tracking lookup: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Set location; coordinates clamp.
	req, _ = authRequest("PUT", server.URL+"/api/shipments/"+sh.ID+"/location", token, map[string]float64{
		"x": 130, "y": 40,
	})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set location: expected 200, got %d", resp.StatusCode)
	}
	var located model.Shipment
	json.NewDecoder(resp.Body).Decode(&located)
	resp.Body.Close()
	if located.Location == nil || located.Location.X != 100 || located.Location.Label != "100%, 40%" {
		t.Errorf("unexpected location: %+v", located.Location)
	}

	// Trash and restore.
	req, _ = authRequest("DELETE", server.URL+"/api/shipments/"+sh.ID, token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("POST", server.URL+"/api/shipments/"+sh.ID+"/restore", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("restore: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestTripDeliveryPaymentsEndpoint(t *testing.T) {
	server, token := setupTestServer(t)

	// Shipment paying at receiver.
	req, _ := authRequest("POST", server.URL+"/api/shipments", token, map[string]any{
		"senderName":      "Ana",
		"receiverName":    "Bojan",
		"amount":          50.0,
		"paymentMethod":   model.PaymentOnDelivery,
		"paymentLocation": model.PaymentAtReceiver,
	})
	resp, _ := http.DefaultClient.Do(req)
	var paying model.Shipment
	json.NewDecoder(resp.Body).Decode(&paying)
	resp.Body.Close()

	// Shipment paying at sender.
	req, _ = authRequest("POST", server.URL+"/api/shipments", token, map[string]any{
		"senderName":      "Cene",
		"receiverName":    "Darja",
		"amount":          30.0,
		"paymentMethod":   model.PaymentOnDelivery,
		"paymentLocation": model.PaymentAtSender,
	})
	resp, _ = http.DefaultClient.Do(req)
	var prepaid model.Shipment
	json.NewDecoder(resp.Body).Decode(&prepaid)
	resp.Body.Close()

	// Trip with both attached.
	req, _ = authRequest("POST", server.URL+"/api/trips", token, map[string]any{"date": "2026-03-02"})
	resp, _ = http.DefaultClient.Do(req)
	var trip model.Trip
	json.NewDecoder(resp.Body).Decode(&trip)
	resp.Body.Close()

	for _, id := range []string{paying.ID, prepaid.ID} {
		req, _ = authRequest("POST", server.URL+"/api/trips/1/shipments", token, map[string]any{"shipmentId": id})
		resp, _ = http.DefaultClient.Do(req)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("attach: expected 200, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	req, _ = authRequest("GET", server.URL+"/api/trips/1/delivery-payments", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var selected []model.Shipment
	json.NewDecoder(resp.Body).Decode(&selected)
	resp.Body.Close()

	if len(selected) != 1 || selected[0].ID != paying.ID {
		t.Errorf("expected only the receiver-paying shipment, got %+v", selected)
	}
}

func TestReportsEndpoint(t *testing.T) {
	server, token := setupTestServer(t)

	for _, amount := range []float64{100, 50} {
		req, _ := authRequest("POST", server.URL+"/api/shipments", token, map[string]any{
			"senderName":   "Ana",
			"receiverName": "Bojan",
			"amount":       amount,
			"receivedDate": "2026-03-01",
		})
		resp, _ := http.DefaultClient.Do(req)
		resp.Body.Close()
	}
	req, _ := authRequest("POST", server.URL+"/api/trips", token, map[string]any{
		"date":           "2026-03-01",
		"tobaccoRevenue": 10.0,
	})
	resp, _ := http.DefaultClient.Do(req)
	resp.Body.Close()

	req, _ = authRequest("GET", server.URL+"/api/reports", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var rep struct {
		Totals struct {
			ShipmentTotal float64 `json:"shipmentTotal"`
			TripTotal     float64 `json:"tripTotal"`
			GrandTotal    float64 `json:"grandTotal"`
		} `json:"totals"`
	}
	json.NewDecoder(resp.Body).Decode(&rep)
	resp.Body.Close()

	if rep.Totals.ShipmentTotal != 150 || rep.Totals.TripTotal != 10 || rep.Totals.GrandTotal != 160 {
		t.Errorf("unexpected totals: %+v", rep.Totals)
	}

	// Out-of-range filter excludes everything.
	req, _ = authRequest("GET", server.URL+"/api/reports?startDate=2026-04-01&endDate=2026-04-30", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	json.NewDecoder(resp.Body).Decode(&rep)
	resp.Body.Close()
	if rep.Totals.GrandTotal != 0 {
		t.Errorf("expected empty range, got grand total %v", rep.Totals.GrandTotal)
	}
}

func TestConversationFlow(t *testing.T) {
	server, token := setupTestServer(t)

	// Customer sends a message; no auth needed.
	body, _ := json.Marshal(map[string]string{"sender_name": "Maja", "message": "Where is my package?"})
	resp, _ := http.Post(server.URL+"/api/requests/REQ-001/messages", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("customer send: expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Admin role without token is rejected.
	resp, _ = http.Get(server.URL + "/api/requests/REQ-001/messages?role=admin")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for unauthenticated admin role, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Admin unread badge shows one message.
	req, _ := authRequest("GET", server.URL+"/api/requests/REQ-001/messages/unread?role=admin", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	var unread map[string]int
	json.NewDecoder(resp.Body).Decode(&unread)
	resp.Body.Close()
	if unread["unread"] != 1 {
		t.Fatalf("expected 1 unread for admin, got %d", unread["unread"])
	}

	// Admin reads the conversation; the customer message flips to read.
	req, _ = authRequest("GET", server.URL+"/api/requests/REQ-001/messages?role=admin", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	var conversation []model.Message
	json.NewDecoder(resp.Body).Decode(&conversation)
	resp.Body.Close()
	if len(conversation) != 1 || !conversation[0].Read {
		t.Fatalf("expected read customer message, got %+v", conversation)
	}

	req, _ = authRequest("GET", server.URL+"/api/requests/REQ-001/messages/unread?role=admin", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	json.NewDecoder(resp.Body).Decode(&unread)
	resp.Body.Close()
	if unread["unread"] != 0 {
		t.Errorf("expected 0 unread after admin read, got %d", unread["unread"])
	}

	// Unknown request number is a 404.
	resp, _ = http.Get(server.URL + "/api/requests/REQ-999/messages")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown request, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRequestStatusUsesLiveRecord(t *testing.T) {
	server, token := setupTestServer(t)

	// REQ-001 is pending; pending -> pending is not a forward move, and the
	// caller has no way to claim a different source status.
	req, _ := authRequest("PUT", server.URL+"/api/requests/REQ-001/status", token, map[string]string{"to": model.RequestPending})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-forward transition, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// A forward move succeeds and the remote record advances.
	req, _ = authRequest("PUT", server.URL+"/api/requests/REQ-001/status", token, map[string]string{"to": model.RequestApproved})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = http.Get(server.URL + "/api/requests/REQ-001")
	var record model.ShippingRequest
	json.NewDecoder(resp.Body).Decode(&record)
	resp.Body.Close()
	if record.Status != model.RequestApproved {
		t.Fatalf("expected approved, got %q", record.Status)
	}

	// Now that the live record is approved, stepping back to pending is
	// rejected against the current status.
	req, _ = authRequest("PUT", server.URL+"/api/requests/REQ-001/status", token, map[string]string{"to": model.RequestPending})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for backward transition, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown request numbers resolve to nothing to update.
	req, _ = authRequest("PUT", server.URL+"/api/requests/REQ-999/status", token, map[string]string{"to": model.RequestApproved})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown request, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCompanyInfoRoundTrip(t *testing.T) {
	server, token := setupTestServer(t)

	req, _ := authRequest("PUT", server.URL+"/api/company", token, model.CompanyInfo{
		Name:    "Kurir d.o.o.",
		Phone:   "+386 1 234 5678",
		Address: "Glavna cesta 1",
	})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("GET", server.URL+"/api/company", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	var info model.CompanyInfo
	json.NewDecoder(resp.Body).Decode(&info)
	resp.Body.Close()
	if info.Name != "Kurir d.o.o." {
		t.Errorf("company info round trip failed: %+v", info)
	}
}
