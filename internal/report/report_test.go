package report

import (
	"testing"

	"kurir/internal/model"
)

func TestRevenueTotals(t *testing.T) {
	shipments := []model.Shipment{{Amount: 100}, {Amount: 50}}
	trips := []model.Trip{{TobaccoRevenue: 10, OtherRevenue: 0}}

	totals := Revenue(shipments, trips)

	if totals.ShipmentTotal != 150 {
		t.Errorf("ShipmentTotal = %v, want 150", totals.ShipmentTotal)
	}
	if totals.TripTotal != 10 {
		t.Errorf("TripTotal = %v, want 10", totals.TripTotal)
	}
	if totals.GrandTotal != 160 {
		t.Errorf("GrandTotal = %v, want 160", totals.GrandTotal)
	}
}

func TestRevenueIndependentOfOrdering(t *testing.T) {
	shipments := []model.Shipment{{Amount: 1}, {Amount: 2}, {Amount: 3}}
	reversed := []model.Shipment{{Amount: 3}, {Amount: 2}, {Amount: 1}}
	trips := []model.Trip{{OtherRevenue: 4}, {TobaccoRevenue: 5}}

	a := Revenue(shipments, trips)
	b := Revenue(reversed, trips)
	if a.GrandTotal != b.GrandTotal {
		t.Errorf("grand total depends on ordering: %v vs %v", a.GrandTotal, b.GrandTotal)
	}
}

func TestMissingAmountReadsAsZero(t *testing.T) {
	// A record decoded from a payload without an amount field carries the
	// zero value.
	shipments := []model.Shipment{{ID: "a"}, {Amount: 5}}
	if got := ShipmentSubtotal(shipments); got != 5 {
		t.Errorf("ShipmentSubtotal = %v, want 5", got)
	}
}

func TestNonZeroTripsExcludesZeroButTotalsCountThem(t *testing.T) {
	trips := []model.Trip{
		{SerialNumber: 1, TobaccoRevenue: 0, OtherRevenue: 0},
		{SerialNumber: 2, TobaccoRevenue: 3},
	}

	nonZero := NonZeroTrips(trips)
	if len(nonZero) != 1 || nonZero[0].SerialNumber != 2 {
		t.Errorf("expected only trip 2, got %+v", nonZero)
	}

	totals := Revenue(nil, trips)
	if totals.TripCount != 2 {
		t.Errorf("TripCount = %d, want 2 (zero-revenue trips still count)", totals.TripCount)
	}
	if totals.TripTotal != 3 {
		t.Errorf("TripTotal = %v, want 3", totals.TripTotal)
	}
}

func TestDateRangeFilter(t *testing.T) {
	expenses := []model.Expense{
		{ID: "a", Date: "2026-01-01"},
		{ID: "b", Date: "2026-01-15"},
		{ID: "c", Date: "2026-02-01"},
	}

	tests := []struct {
		name       string
		start, end string
		want       []string
	}{
		{"no bounds passes everything", "", "", []string{"a", "b", "c"}},
		{"inclusive lower bound", "2026-01-15", "", []string{"b", "c"}},
		{"inclusive upper bound", "", "2026-01-15", []string{"a", "b"}},
		{"both bounds", "2026-01-02", "2026-01-31", []string{"b"}},
		{"start equals end matches exact date", "2026-01-15", "2026-01-15", []string{"b"}},
		{"empty range", "2026-03-01", "2026-03-31", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpensesInRange(expenses, tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("record %d = %q, want %q", i, e.ID, tt.want[i])
				}
			}
		})
	}
}

func TestDateFilterIsLexicalNotParsed(t *testing.T) {
	// Comparison stays a plain string comparison for compatibility with
	// existing stored values. Non-padded dates sort by character, not by
	// calendar: "2026-1-5" falls inside a year range ('1' > '0', '-' < '2')
	// while "2026-9-5" falls outside it ('9' > '1') even though September 5
	// is within the calendar year.
	shipments := []model.Shipment{
		{ID: "jan", ReceivedDate: "2026-1-5"},
		{ID: "sep", ReceivedDate: "2026-9-5"},
	}
	got := ShipmentsInRange(shipments, "2026-01-01", "2026-12-31")
	if len(got) != 1 || got[0].ID != "jan" {
		t.Errorf("expected only the lexically in-range date, got %+v", got)
	}
}

func TestDeliveryPayments(t *testing.T) {
	shipments := []model.Shipment{
		{ID: "s1", PaymentLocation: model.PaymentAtReceiver},
		{ID: "s2", PaymentLocation: model.PaymentAtSender},
		{ID: "s3", PaymentLocation: model.PaymentAtReceiver}, // not attached
	}
	trips := []model.Trip{{
		SerialNumber: 7,
		Shipments: []model.TripShipment{
			{ShipmentID: "s1"},
			{ShipmentID: "s2"},
		},
	}}

	got, ok := DeliveryPayments(trips, shipments, 7)
	if !ok {
		t.Fatal("expected trip to resolve")
	}
	if len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("expected exactly s1, got %+v", got)
	}
}

func TestDeliveryPaymentsUsesLiveRecord(t *testing.T) {
	// The live shipment pays at sender even though the attach-time snapshot
	// existed; the projection must be empty.
	shipments := []model.Shipment{{ID: "s1", PaymentLocation: model.PaymentAtSender}}
	trips := []model.Trip{{
		SerialNumber: 7,
		Shipments:    []model.TripShipment{{ShipmentID: "s1"}},
	}}

	got, ok := DeliveryPayments(trips, shipments, 7)
	if !ok {
		t.Fatal("expected trip to resolve")
	}
	if len(got) != 0 {
		t.Errorf("expected empty projection, got %+v", got)
	}
}

func TestDeliveryPaymentsTripNotFound(t *testing.T) {
	_, ok := DeliveryPayments(nil, nil, 42)
	if ok {
		t.Error("expected not-found for missing trip")
	}
}

func TestExpenseTotal(t *testing.T) {
	expenses := []model.Expense{{Amount: 1.5}, {Amount: 2.5}}
	if got := ExpenseTotal(expenses); got != 4 {
		t.Errorf("ExpenseTotal = %v, want 4", got)
	}
}
