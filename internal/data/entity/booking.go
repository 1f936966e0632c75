package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCompleted || target == BookingStatusCancelled
	default:
		return false
	}
}

type BookingSource string

const (
	BookingSourceWidget BookingSource = "WIDGET"
	BookingSourceWalkIn BookingSource = "WALK_IN"
	BookingSourcePhone  BookingSource = "PHONE"
)

type Booking struct {
	Base
	Reference      string        `db:"reference"`
	AgencyID       uuid.UUID     `db:"agency_id"`
	CustomerID     uuid.UUID     `db:"customer_id"`
	StartDate      time.Time     `db:"start_date"`
	EndDate        time.Time     `db:"end_date"`
	TotalPrice     float64       `db:"total_price"`
	PaidAmount     float64       `db:"paid_amount"`
	Source         BookingSource `db:"source"`
	Status         BookingStatus `db:"status"`
	FleetVehicleID *uuid.UUID    `db:"fleet_vehicle_id"`
	AssignedAt     *time.Time    `db:"assigned_at"`
}
