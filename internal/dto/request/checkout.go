package request

import (
	"encoding/json"
	"time"
)

// CheckOutRequest is the body of POST /api/bookings/{id}/check-out. Only the
// fleet vehicle reference is mandatory; everything else defaults server-side.
type CheckOutRequest struct {
	FleetVehicleID string `json:"fleetVehicleId" validate:"required,uuid"`

	StartMileage   int `json:"startMileage" validate:"min=0"`
	StartFuelLevel int `json:"startFuelLevel" validate:"min=0,max=100"`

	PhotoFront   *string `json:"photoFront,omitempty"`
	PhotoLeft    *string `json:"photoLeft,omitempty"`
	PhotoRight   *string `json:"photoRight,omitempty"`
	PhotoRear    *string `json:"photoRear,omitempty"`
	PhotoCounter *string `json:"photoCounter,omitempty"`

	DamageSchema       json.RawMessage `json:"damageSchema,omitempty"`
	EquipmentChecklist json.RawMessage `json:"equipmentChecklist,omitempty"`

	IDCardFrontURL  *string `json:"customerIdCardUrl,omitempty"`
	IDCardBackURL   *string `json:"customerIdCardVersoUrl,omitempty"`
	LicenseFrontURL *string `json:"customerLicenseUrl,omitempty"`
	LicenseBackURL  *string `json:"customerLicenseVersoUrl,omitempty"`

	CustomerSignature *string    `json:"customerSignature,omitempty"`
	TermsAcceptedAt   *time.Time `json:"termsAcceptedAt,omitempty"`
	TermsLanguage     *string    `json:"termsLanguage,omitempty" validate:"omitempty,oneof=fr es en"`

	DiscountAmount *float64 `json:"discountAmount,omitempty" validate:"omitempty,min=0"`
	DiscountReason *string  `json:"discountReason,omitempty"`

	DepositMethod *string `json:"depositMethod,omitempty" validate:"omitempty,oneof=CARD CASH"`
	DepositStatus *string `json:"depositStatus,omitempty" validate:"omitempty,oneof=PENDING CAPTURED"`
	PaymentMethod *string `json:"paymentMethod,omitempty" validate:"omitempty,oneof=CARD CASH"`
	PaymentStatus *string `json:"paymentStatus,omitempty" validate:"omitempty,oneof=PENDING PARTIAL PAID"`

	OperatorID *string `json:"operatorId,omitempty" validate:"omitempty,uuid"`
}
