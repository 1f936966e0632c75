package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	switch s {
	case ContractStatusActive:
		return target == ContractStatusCompleted || target == ContractStatusCancelled
	default:
		return false
	}
}

type ContractSource string

const (
	ContractSourceOnlineWidget ContractSource = "ONLINE_WIDGET"
	ContractSourceWalkIn       ContractSource = "WALK_IN"
	ContractSourcePhone        ContractSource = "PHONE"
)

// ContractSourceFromBooking maps the reservation channel onto the contract
// source tag.
func ContractSourceFromBooking(source BookingSource) ContractSource {
	switch source {
	case BookingSourceWidget:
		return ContractSourceOnlineWidget
	case BookingSourceWalkIn:
		return ContractSourceWalkIn
	default:
		return ContractSourcePhone
	}
}

type CommissionType string

const (
	CommissionTypeReversal  CommissionType = "REVERSAL"
	CommissionTypeDeduction CommissionType = "DEDUCTION"
)

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "PENDING"
	CommissionStatusSettled CommissionStatus = "SETTLED"
)

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "PENDING"
	DepositStatusCaptured DepositStatus = "CAPTURED"
	DepositStatusReleased DepositStatus = "RELEASED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "CARD"
	PaymentMethodCash PaymentMethod = "CASH"
)

// DocumentKind identifies one of the identity/license captures a contract
// may require before closure.
type DocumentKind string

const (
	DocumentIDCardFront  DocumentKind = "ID_CARD_FRONT"
	DocumentIDCardBack   DocumentKind = "ID_CARD_BACK"
	DocumentLicenseFront DocumentKind = "LICENSE_FRONT"
	DocumentLicenseBack  DocumentKind = "LICENSE_BACK"
)

type RentalContract struct {
	Base
	ContractNumber string    `db:"contract_number"`
	BookingID      uuid.UUID `db:"booking_id"`
	FleetVehicleID uuid.UUID `db:"fleet_vehicle_id"`
	AgencyID       uuid.UUID `db:"agency_id"`
	CustomerID     uuid.UUID `db:"customer_id"`

	OriginalStartDate time.Time      `db:"original_start_date"`
	OriginalEndDate   time.Time      `db:"original_end_date"`
	CurrentStartDate  time.Time      `db:"current_start_date"`
	CurrentEndDate    time.Time      `db:"current_end_date"`
	ActualStartDate   time.Time      `db:"actual_start_date"`
	Source            ContractSource `db:"source"`

	DailyRate      float64  `db:"daily_rate"`
	TotalDays      int      `db:"total_days"`
	Subtotal       float64  `db:"subtotal"`
	OptionsTotal   float64  `db:"options_total"`
	DiscountAmount float64  `db:"discount_amount"`
	DiscountReason *string  `db:"discount_reason"`
	TaxRate        float64  `db:"tax_rate"`
	TaxAmount      float64  `db:"tax_amount"`
	TotalAmount    float64  `db:"total_amount"`

	DepositAmount     float64       `db:"deposit_amount"`
	DepositMethod     PaymentMethod `db:"deposit_method"`
	DepositStatus     DepositStatus `db:"deposit_status"`
	DepositCapturedAt *time.Time    `db:"deposit_captured_at"`

	PaymentMethod PaymentMethod `db:"payment_method"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	PaidAmount    float64       `db:"paid_amount"`

	StartMileage   int     `db:"start_mileage"`
	StartFuelLevel int     `db:"start_fuel_level"`
	PhotoFront     *string `db:"photo_front"`
	PhotoLeft      *string `db:"photo_left"`
	PhotoRight     *string `db:"photo_right"`
	PhotoRear      *string `db:"photo_rear"`
	PhotoCounter   *string `db:"photo_counter"`

	DamageSchema       []byte `db:"damage_schema"`
	EquipmentChecklist []byte `db:"equipment_checklist"`

	IDCardFrontURL  *string `db:"id_card_front_url"`
	IDCardBackURL   *string `db:"id_card_back_url"`
	LicenseFrontURL *string `db:"license_front_url"`
	LicenseBackURL  *string `db:"license_back_url"`

	CustomerSignature *string    `db:"customer_signature"`
	CustomerSignedAt  *time.Time `db:"customer_signed_at"`
	TermsAcceptedAt   *time.Time `db:"terms_accepted_at"`
	TermsLanguage     *string    `db:"terms_language"`

	Status ContractStatus `db:"status"`

	CommissionRate   *float64          `db:"commission_rate"`
	CommissionAmount *float64          `db:"commission_amount"`
	CommissionType   *CommissionType   `db:"commission_type"`
	CommissionStatus *CommissionStatus `db:"commission_status"`
}

// DocumentURL returns the capture URL for the given kind, nil when unset.
func (c *RentalContract) DocumentURL(kind DocumentKind) *string {
	switch kind {
	case DocumentIDCardFront:
		return c.IDCardFrontURL
	case DocumentIDCardBack:
		return c.IDCardBackURL
	case DocumentLicenseFront:
		return c.LicenseFrontURL
	case DocumentLicenseBack:
		return c.LicenseBackURL
	default:
		return nil
	}
}

// SetDocumentURL stores the capture URL for the given kind.
func (c *RentalContract) SetDocumentURL(kind DocumentKind, url string) {
	switch kind {
	case DocumentIDCardFront:
		c.IDCardFrontURL = &url
	case DocumentIDCardBack:
		c.IDCardBackURL = &url
	case DocumentLicenseFront:
		c.LicenseFrontURL = &url
	case DocumentLicenseBack:
		c.LicenseBackURL = &url
	}
}
