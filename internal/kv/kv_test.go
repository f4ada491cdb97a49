package kv

import (
	"context"
	"testing"

	"kurir/internal/db"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"sqlite": NewSQLite(db.NewTestDB(t)),
		"memory": NewMemory(),
	}
}

func TestLoadAbsentKey(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		value, err := s.Load(ctx, "missing")
		if err != nil {
			t.Errorf("%s: load: %v", name, err)
		}
		if value != nil {
			t.Errorf("%s: expected nil for absent key, got %q", name, value)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		payload := []byte(`[{"id":"a"},{"id":"b"}]`)
		if err := s.Save(ctx, "shipments", payload); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}

		value, err := s.Load(ctx, "shipments")
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if string(value) != string(payload) {
			t.Errorf("%s: round trip mismatch: %q", name, value)
		}
	}
}

func TestSaveReplacesPriorValue(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		if err := s.Save(ctx, "expenses", []byte(`[1]`)); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}
		if err := s.Save(ctx, "expenses", []byte(`[2]`)); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}

		value, err := s.Load(ctx, "expenses")
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if string(value) != `[2]` {
			t.Errorf("%s: expected last write to win, got %q", name, value)
		}
	}
}
