package model

import "time"

// Message is one chat message inside a shipping-request conversation.
// Read is tracked per direction: an admin-authored message's Read flag
// reflects whether the customer has seen it, and vice versa.
type Message struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	SenderType string    `json:"sender_type"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	Read       bool      `json:"read"`
}

// Chat participant roles.
const (
	SenderAdmin    = "admin"
	SenderCustomer = "customer"
)

// OtherRole returns the opposite chat role.
func OtherRole(role string) string {
	if role == SenderAdmin {
		return SenderCustomer
	}
	return SenderAdmin
}
