package model

import "time"

// ShippingRequest is a customer's pickup request. It lives on the remote
// request service, not in the local collections; only its wire contract is
// modeled here.
type ShippingRequest struct {
	ID               string    `json:"id"`
	RequestNumber    string    `json:"request_number"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	PickupLocation   string    `json:"pickup_location"`
	PickupAddress    string    `json:"pickup_address,omitempty"`
	DeliveryLocation string    `json:"delivery_location"`
	DeliveryAddress  string    `json:"delivery_address,omitempty"`
	Description      string    `json:"description,omitempty"`
	EstimatedWeight  float64   `json:"estimated_weight,omitempty"`
	EstimatedValue   float64   `json:"estimated_value,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Shipping request statuses.
const (
	RequestPending    = "pending"
	RequestApproved   = "approved"
	RequestProcessing = "processing"
	RequestRejected   = "rejected"
	RequestCompleted  = "completed"
)

// requestRank orders statuses along the one-way lifecycle. Rejected and
// completed are terminal.
var requestRank = map[string]int{
	RequestPending:    0,
	RequestApproved:   1,
	RequestProcessing: 2,
	RequestRejected:   3,
	RequestCompleted:  3,
}

// ValidRequestTransition reports whether a request may move from one status
// to another. The lifecycle only moves forward: no transition out of a
// terminal state and no step backwards.
func ValidRequestTransition(from, to string) bool {
	fromRank, ok := requestRank[from]
	if !ok {
		return false
	}
	toRank, ok := requestRank[to]
	if !ok {
		return false
	}
	if from == RequestRejected || from == RequestCompleted {
		return false
	}
	return toRank > fromRank
}
