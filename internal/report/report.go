// Package report computes derived numbers over collection snapshots. Every
// function is pure: it takes the snapshot plus parameters and touches no
// state, so callers re-run it whenever a change signal arrives.
package report

import (
	"kurir/internal/model"
)

// Totals is the revenue summary: shipment amounts and trip ad-hoc revenue
// reported separately and combined.
type Totals struct {
	ShipmentTotal float64 `json:"shipmentTotal"`
	TripTotal     float64 `json:"tripTotal"`
	GrandTotal    float64 `json:"grandTotal"`
	ShipmentCount int     `json:"shipmentCount"`
	TripCount     int     `json:"tripCount"`
}

// ShipmentSubtotal sums shipment amounts in a single pass. A missing amount
// reads as 0.
func ShipmentSubtotal(shipments []model.Shipment) float64 {
	var total float64
	for _, s := range shipments {
		total += s.Amount
	}
	return total
}

// TripSubtotal sums combined trip revenue in a single pass. Trips with zero
// combined revenue still count (they contribute 0).
func TripSubtotal(trips []model.Trip) float64 {
	var total float64
	for _, t := range trips {
		total += t.Revenue()
	}
	return total
}

// Revenue computes the full revenue summary. The grand total is always the
// sum of the two subtotals, independent of collection ordering.
func Revenue(shipments []model.Shipment, trips []model.Trip) Totals {
	shipmentTotal := ShipmentSubtotal(shipments)
	tripTotal := TripSubtotal(trips)
	return Totals{
		ShipmentTotal: shipmentTotal,
		TripTotal:     tripTotal,
		GrandTotal:    shipmentTotal + tripTotal,
		ShipmentCount: len(shipments),
		TripCount:     len(trips),
	}
}

// NonZeroTrips returns trips whose combined revenue is above zero. Trips at
// exactly zero are excluded here but still counted in totals.
func NonZeroTrips(trips []model.Trip) []model.Trip {
	var out []model.Trip
	for _, t := range trips {
		if t.Revenue() > 0 {
			out = append(out, t)
		}
	}
	return out
}

// ExpenseTotal sums expense amounts in a single pass.
func ExpenseTotal(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// inRange compares ISO-format date strings lexically, inclusive on both
// bounds. An empty bound passes everything on that side. Stored values were
// always compared as strings; keep it that way, do not parse.
func inRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

func filterByDate[T any](records []T, date func(T) string, start, end string) []T {
	if start == "" && end == "" {
		return records
	}
	var out []T
	for _, r := range records {
		if inRange(date(r), start, end) {
			out = append(out, r)
		}
	}
	return out
}

// ShipmentsInRange filters shipments by received date.
func ShipmentsInRange(shipments []model.Shipment, start, end string) []model.Shipment {
	return filterByDate(shipments, func(s model.Shipment) string { return s.ReceivedDate }, start, end)
}

// TripsInRange filters trips by trip date.
func TripsInRange(trips []model.Trip, start, end string) []model.Trip {
	return filterByDate(trips, func(t model.Trip) string { return t.Date }, start, end)
}

// ExpensesInRange filters expenses by expense date.
func ExpensesInRange(expenses []model.Expense, start, end string) []model.Expense {
	return filterByDate(expenses, func(e model.Expense) string { return e.Date }, start, end)
}

// DeliveryPayments selects the shipments attached to the trip with the given
// serial number whose payment is collected from the receiver. Attachment is
// necessary but not sufficient: the payment-location predicate is evaluated
// against the live shipment record, never the trip's frozen projection.
// The second return value is false when no trip has that serial number.
func DeliveryPayments(trips []model.Trip, shipments []model.Shipment, serial int) ([]model.Shipment, bool) {
	var trip *model.Trip
	for i := range trips {
		if trips[i].SerialNumber == serial {
			trip = &trips[i]
			break
		}
	}
	if trip == nil {
		return nil, false
	}

	attached := make(map[string]bool, len(trip.Shipments))
	for _, ref := range trip.Shipments {
		attached[ref.ShipmentID] = true
	}

	var out []model.Shipment
	for _, s := range shipments {
		if attached[s.ID] && s.PaymentLocation == model.PaymentAtReceiver {
			out = append(out, s)
		}
	}
	return out, true
}
