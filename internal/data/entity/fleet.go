package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type FleetStatus string

const (
	FleetStatusAvailable   FleetStatus = "AVAILABLE"
	FleetStatusRented      FleetStatus = "RENTED"
	FleetStatusMaintenance FleetStatus = "MAINTENANCE"
	FleetStatusRetired     FleetStatus = "RETIRED"
)

// InvalidTransitionError is returned when a status change is not part of the
// entity lifecycle.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot transition from %s to %s", e.Entity, e.From, e.To)
}

func (s FleetStatus) CanTransitionTo(target FleetStatus) bool {
	switch s {
	case FleetStatusAvailable:
		return target == FleetStatusRented || target == FleetStatusMaintenance || target == FleetStatusRetired
	case FleetStatusRented:
		return target == FleetStatusAvailable
	case FleetStatusMaintenance:
		return target == FleetStatusAvailable || target == FleetStatusRetired
	default:
		return false
	}
}

// FleetVehicle is one physical unit of a catalog Vehicle in an agency fleet.
type FleetVehicle struct {
	Base
	VehicleID          uuid.UUID   `db:"vehicle_id"`
	AgencyID           uuid.UUID   `db:"agency_id"`
	RegistrationNumber *string     `db:"registration_number"`
	CurrentMileage     int         `db:"current_mileage"`
	Status             FleetStatus `db:"status"`
}
