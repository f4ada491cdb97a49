package store

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"kurir/internal/model"
	"kurir/internal/notify"
)

// Shipments returns the live shipment collection.
func (s *Store) Shipments(ctx context.Context) ([]model.Shipment, error) {
	return loadCollection[model.Shipment](ctx, s, KeyShipments)
}

// SaveShipments replaces the shipment collection.
func (s *Store) SaveShipments(ctx context.Context, shipments []model.Shipment) error {
	return saveCollection(ctx, s, KeyShipments, notify.TopicShipments, shipments)
}

// AddShipment appends a new shipment, assigning its identity, tracking
// number, status and creation time when unset.
func (s *Store) AddShipment(ctx context.Context, sh model.Shipment) (*model.Shipment, error) {
	if sh.Amount < 0 {
		return nil, fmt.Errorf("shipment amount cannot be negative")
	}

	if sh.ID == "" {
		sh.ID = uuid.NewString()
	}
	if sh.TrackingNumber == "" {
		number, err := NewTrackingNumber()
		if err != nil {
			return nil, err
		}
		sh.TrackingNumber = number
	}
	if sh.Status == "" {
		sh.Status = model.StatusPending
	}
	if sh.CreatedAt.IsZero() {
		sh.CreatedAt = time.Now().UTC()
	}

	shipments, err := s.Shipments(ctx)
	if err != nil {
		return nil, err
	}
	shipments = append(shipments, sh)
	if err := s.SaveShipments(ctx, shipments); err != nil {
		return nil, err
	}
	return &sh, nil
}

// UpdateShipment loads the collection, applies fn to the matching record and
// saves. ID and tracking number survive the merge unchanged; the tracking
// number is never reassigned after creation. Returns nil if no record
// matches.
func (s *Store) UpdateShipment(ctx context.Context, id string, fn func(*model.Shipment)) (*model.Shipment, error) {
	shipments, err := s.Shipments(ctx)
	if err != nil {
		return nil, err
	}

	for i := range shipments {
		if shipments[i].ID != id {
			continue
		}

		tracking := shipments[i].TrackingNumber
		fn(&shipments[i])
		shipments[i].ID = id
		shipments[i].TrackingNumber = tracking

		if shipments[i].Amount < 0 {
			return nil, fmt.Errorf("shipment amount cannot be negative")
		}

		if err := s.SaveShipments(ctx, shipments); err != nil {
			return nil, err
		}
		updated := shipments[i]
		return &updated, nil
	}
	return nil, nil
}

// SetShipmentStatus updates a shipment's delivery status.
func (s *Store) SetShipmentStatus(ctx context.Context, id, status string) (*model.Shipment, error) {
	if !model.ValidStatus(status) {
		return nil, fmt.Errorf("invalid shipment status %q", status)
	}
	return s.UpdateShipment(ctx, id, func(sh *model.Shipment) {
		sh.Status = status
		if status == model.StatusDelivered && sh.DeliveryDate == "" {
			sh.DeliveryDate = time.Now().UTC().Format("2006-01-02")
		}
	})
}

// SetShipmentLocation replaces the shipment's location annotation. The whole
// sub-object is replaced, never patched; coordinates are clamped and the
// label derived at write time.
func (s *Store) SetShipmentLocation(ctx context.Context, id string, x, y float64) (*model.Shipment, error) {
	return s.UpdateShipment(ctx, id, func(sh *model.Shipment) {
		sh.Location = model.NewLocation(x, y)
	})
}

// ShipmentByID returns the shipment with the given id, or nil.
func (s *Store) ShipmentByID(ctx context.Context, id string) (*model.Shipment, error) {
	shipments, err := s.Shipments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range shipments {
		if shipments[i].ID == id {
			return &shipments[i], nil
		}
	}
	return nil, nil
}

// ShipmentByTracking returns the shipment with the given tracking number, or
// nil.
func (s *Store) ShipmentByTracking(ctx context.Context, trackingNumber string) (*model.Shipment, error) {
	shipments, err := s.Shipments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range shipments {
		if shipments[i].TrackingNumber == trackingNumber {
			return &shipments[i], nil
		}
	}
	return nil, nil
}

// TrashShipment moves a shipment into the recoverable trash collection.
// Returns false if no record matches.
func (s *Store) TrashShipment(ctx context.Context, id string) (bool, error) {
	shipments, err := s.Shipments(ctx)
	if err != nil {
		return false, err
	}

	for i := range shipments {
		if shipments[i].ID != id {
			continue
		}

		trashed, err := s.TrashedShipments(ctx)
		if err != nil {
			return false, err
		}
		trashed = append(trashed, shipments[i])
		if err := saveCollection(ctx, s, KeyTrashedShipments, notify.TopicShipments, trashed); err != nil {
			return false, err
		}

		shipments = append(shipments[:i], shipments[i+1:]...)
		if err := s.SaveShipments(ctx, shipments); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// TrashedShipments returns the trash collection.
func (s *Store) TrashedShipments(ctx context.Context) ([]model.Shipment, error) {
	return loadCollection[model.Shipment](ctx, s, KeyTrashedShipments)
}

// RestoreShipment moves a trashed shipment back into the live collection.
// Returns false if no trashed record matches.
func (s *Store) RestoreShipment(ctx context.Context, id string) (bool, error) {
	trashed, err := s.TrashedShipments(ctx)
	if err != nil {
		return false, err
	}

	for i := range trashed {
		if trashed[i].ID != id {
			continue
		}

		shipments, err := s.Shipments(ctx)
		if err != nil {
			return false, err
		}
		shipments = append(shipments, trashed[i])
		if err := s.SaveShipments(ctx, shipments); err != nil {
			return false, err
		}

		trashed = append(trashed[:i], trashed[i+1:]...)
		if err := saveCollection(ctx, s, KeyTrashedShipments, notify.TopicShipments, trashed); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// DeleteTrashedShipment removes a shipment from the trash permanently.
// Returns false if no trashed record matches.
func (s *Store) DeleteTrashedShipment(ctx context.Context, id string) (bool, error) {
	trashed, err := s.TrashedShipments(ctx)
	if err != nil {
		return false, err
	}

	for i := range trashed {
		if trashed[i].ID != id {
			continue
		}
		trashed = append(trashed[:i], trashed[i+1:]...)
		if err := saveCollection(ctx, s, KeyTrashedShipments, notify.TopicShipments, trashed); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// NewTrackingNumber generates a human-presentable tracking number.
func NewTrackingNumber() (string, error) {
	const digits = "0123456789"
	buf := make([]byte, 8)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("generating tracking number: %w", err)
		}
		buf[i] = digits[n.Int64()]
	}
	return "SH-" + string(buf), nil
}
