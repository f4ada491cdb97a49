package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kurir/internal/model"
	"kurir/internal/notify"
)

// Trips returns the trip collection.
func (s *Store) Trips(ctx context.Context) ([]model.Trip, error) {
	return loadCollection[model.Trip](ctx, s, KeyTrips)
}

// SaveTrips replaces the trip collection.
func (s *Store) SaveTrips(ctx context.Context, trips []model.Trip) error {
	return saveCollection(ctx, s, KeyTrips, notify.TopicTrips, trips)
}

// AddTrip appends a new trip, assigning its identity, serial number and
// creation time when unset. Serial numbers are the public trip reference and
// increase monotonically.
func (s *Store) AddTrip(ctx context.Context, trip model.Trip) (*model.Trip, error) {
	if trip.TobaccoRevenue < 0 || trip.OtherRevenue < 0 {
		return nil, fmt.Errorf("trip revenue cannot be negative")
	}

	trips, err := s.Trips(ctx)
	if err != nil {
		return nil, err
	}

	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if trip.SerialNumber == 0 {
		max := 0
		for _, t := range trips {
			if t.SerialNumber > max {
				max = t.SerialNumber
			}
		}
		trip.SerialNumber = max + 1
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now().UTC()
	}
	if trip.Shipments == nil {
		trip.Shipments = []model.TripShipment{}
	}

	trips = append(trips, trip)
	if err := s.SaveTrips(ctx, trips); err != nil {
		return nil, err
	}
	return &trip, nil
}

// TripBySerial returns the trip with the given serial number, or nil.
func (s *Store) TripBySerial(ctx context.Context, serial int) (*model.Trip, error) {
	trips, err := s.Trips(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		if trips[i].SerialNumber == serial {
			return &trips[i], nil
		}
	}
	return nil, nil
}

// AttachShipment snapshots a live shipment into a trip's reference list. The
// projection is frozen at attach time; later shipment edits do not propagate
// into it. Returns nil if the trip does not exist.
func (s *Store) AttachShipment(ctx context.Context, serial int, shipmentID string, deliveryCost float64) (*model.Trip, error) {
	sh, err := s.ShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, fmt.Errorf("shipment %s not found", shipmentID)
	}

	trips, err := s.Trips(ctx)
	if err != nil {
		return nil, err
	}

	for i := range trips {
		if trips[i].SerialNumber != serial {
			continue
		}

		for _, ref := range trips[i].Shipments {
			if ref.ShipmentID == shipmentID {
				return nil, fmt.Errorf("shipment %s already attached to trip %d", shipmentID, serial)
			}
		}

		trips[i].Shipments = append(trips[i].Shipments, model.ProjectShipment(*sh, deliveryCost))
		if err := s.SaveTrips(ctx, trips); err != nil {
			return nil, err
		}
		updated := trips[i]
		return &updated, nil
	}
	return nil, nil
}

// SetTripRevenue updates a trip's ad-hoc revenue. Returns nil if the trip
// does not exist.
func (s *Store) SetTripRevenue(ctx context.Context, serial int, tobacco, other float64) (*model.Trip, error) {
	if tobacco < 0 || other < 0 {
		return nil, fmt.Errorf("trip revenue cannot be negative")
	}

	trips, err := s.Trips(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		if trips[i].SerialNumber != serial {
			continue
		}
		trips[i].TobaccoRevenue = tobacco
		trips[i].OtherRevenue = other
		if err := s.SaveTrips(ctx, trips); err != nil {
			return nil, err
		}
		updated := trips[i]
		return &updated, nil
	}
	return nil, nil
}

// RemoveTrip deletes the trip with the given serial number. Returns false if
// no trip matches.
func (s *Store) RemoveTrip(ctx context.Context, serial int) (bool, error) {
	trips, err := s.Trips(ctx)
	if err != nil {
		return false, err
	}
	for i := range trips {
		if trips[i].SerialNumber != serial {
			continue
		}
		trips = append(trips[:i], trips[i+1:]...)
		if err := s.SaveTrips(ctx, trips); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
