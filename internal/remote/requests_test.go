package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kurir/internal/model"
)

func TestRequestByNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/requests/REQ-001" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(model.ShippingRequest{
			ID:            "r1",
			RequestNumber: "REQ-001",
			CustomerName:  "Maja",
			Status:        model.RequestPending,
		})
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	ctx := context.Background()

	record, err := client.RequestByNumber(ctx, "REQ-001")
	if err != nil {
		t.Fatal(err)
	}
	if record.ID != "r1" || record.CustomerName != "Maja" {
		t.Errorf("unexpected record: %+v", record)
	}

	_, err = client.RequestByNumber(ctx, "REQ-999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	var gotPath, gotStatus string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotStatus = body["status"]
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	err := client.UpdateStatus(context.Background(), "r1", model.RequestPending, model.RequestApproved)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/requests/r1/status" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotStatus != model.RequestApproved {
		t.Errorf("unexpected status %q", gotStatus)
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	err := client.UpdateStatus(context.Background(), "r1", model.RequestCompleted, model.RequestPending)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for transition out of terminal state, got %v", err)
	}
	if called {
		t.Error("invalid transition must not reach the remote service")
	}
}

func TestRemoteFailureSurfacesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	if _, err := client.RequestByNumber(context.Background(), "REQ-001"); err == nil {
		t.Error("expected error for remote failure")
	}
	if err := client.UpdateStatus(context.Background(), "r1", model.RequestPending, model.RequestApproved); err == nil {
		t.Error("expected error for remote failure")
	}
}
