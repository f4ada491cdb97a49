package model

import (
	"fmt"
	"time"
)

// Shipment represents a single consignment from sender to receiver.
// Date fields that take part in range filtering (ReceivedDate, DeliveryDate)
// are ISO YYYY-MM-DD strings so that filters can compare them lexically, the
// same way existing stored values were always compared.
type Shipment struct {
	ID              string    `json:"id"`
	TrackingNumber  string    `json:"trackingNumber"`
	SenderName      string    `json:"senderName"`
	SenderPhone     string    `json:"senderPhone"`
	SenderAddress   string    `json:"senderAddress"`
	ReceiverName    string    `json:"receiverName"`
	ReceiverPhone   string    `json:"receiverPhone"`
	ReceiverAddress string    `json:"receiverAddress"`
	Description     string    `json:"description,omitempty"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentLocation string    `json:"paymentLocation,omitempty"`
	ReceivedDate    string    `json:"receivedDate"`
	DeliveryDate    string    `json:"deliveryDate,omitempty"`
	Status          string    `json:"status"`
	Location        *Location `json:"location,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Shipment statuses.
const (
	StatusPending   = "pending"
	StatusInTransit = "in-transit"
	StatusDelivered = "delivered"
)

// Payment methods.
const (
	PaymentCash       = "cash"
	PaymentOnDelivery = "on-delivery"
)

// Payment locations (meaningful only for on-delivery payments).
const (
	PaymentAtSender   = "sender"
	PaymentAtReceiver = "receiver"
)

// ValidStatus reports whether s is a known shipment status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInTransit || s == StatusDelivered
}

// Location is a shipment's position annotation: a normalized 2-D coordinate
// plus a display label cached at write time.
type Location struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// NewLocation clamps x and y to [0, 100] and derives the label from the
// clamped values. The label is a cached presentation value; it is never
// re-derived on read.
func NewLocation(x, y float64) *Location {
	x = clamp(x, 0, 100)
	y = clamp(y, 0, 100)
	return &Location{
		X:     x,
		Y:     y,
		Label: fmt.Sprintf("%.0f%%, %.0f%%", x, y),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
