package entity

import (
	"time"

	"github.com/google/uuid"
)

type InspectionType string

const (
	InspectionTypeCheckOut InspectionType = "CHECK_OUT"
	InspectionTypeCheckIn  InspectionType = "CHECK_IN"
)

// FleetInspection is an immutable snapshot of vehicle condition taken at
// check-out or check-in. It is created once and never updated.
type FleetInspection struct {
	BaseSimple
	FleetVehicleID    uuid.UUID      `db:"fleet_vehicle_id"`
	ContractID        uuid.UUID      `db:"contract_id"`
	Type              InspectionType `db:"type"`
	Mileage           int            `db:"mileage"`
	FuelLevel         int            `db:"fuel_level"`
	ConditionRating   *int           `db:"condition_rating"`
	OperatorID        *uuid.UUID     `db:"operator_id"`
	CustomerSignature *string        `db:"customer_signature"`
	CustomerSignedAt  *time.Time     `db:"customer_signed_at"`
}
