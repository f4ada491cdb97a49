package model

import "time"

// Trip represents a delivery run aggregating multiple shipments plus ad-hoc
// revenue not tied to any shipment. SerialNumber, not ID, is the public
// reference used everywhere a person names a trip.
type Trip struct {
	ID             string         `json:"id"`
	SerialNumber   int            `json:"serialNumber"`
	Date           string         `json:"date"`
	Shipments      []TripShipment `json:"shipments"`
	TobaccoRevenue float64        `json:"tobaccoRevenue"`
	OtherRevenue   float64        `json:"otherRevenue"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// TripShipment is a projection of a shipment frozen at the moment it was
// attached to the trip. Its fields may drift from the live Shipment record;
// consumers must not assume freshness and must resolve the live record by
// ShipmentID when current values matter.
type TripShipment struct {
	ShipmentID     string  `json:"shipmentId"`
	TrackingNumber string  `json:"trackingNumber"`
	SenderName     string  `json:"senderName"`
	RecipientName  string  `json:"recipientName"`
	Amount         float64 `json:"amount"`
	DeliveryCost   float64 `json:"deliveryCost"`
}

// Revenue returns the trip's combined ad-hoc revenue.
func (t Trip) Revenue() float64 {
	return t.TobaccoRevenue + t.OtherRevenue
}

// ProjectShipment takes the attach-time snapshot of a live shipment.
func ProjectShipment(s Shipment, deliveryCost float64) TripShipment {
	return TripShipment{
		ShipmentID:     s.ID,
		TrackingNumber: s.TrackingNumber,
		SenderName:     s.SenderName,
		RecipientName:  s.ReceiverName,
		Amount:         s.Amount,
		DeliveryCost:   deliveryCost,
	}
}
