package response

import (
	"encoding/json"
	"time"

	"voltride-booking/internal/data/entity"
)

type AgencyRef struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CustomerRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type FleetVehicleRef struct {
	ID                 string  `json:"id"`
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	CurrentMileage     int     `json:"currentMileage"`
	Status             string  `json:"status"`
	VehicleName        string  `json:"vehicleName,omitempty"`
	VehicleSKU         string  `json:"vehicleSku,omitempty"`
}

type BookingRef struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	TotalPrice float64   `json:"totalPrice"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
}

type ContractResponse struct {
	ID             string `json:"id"`
	ContractNumber string `json:"contractNumber"`
	BookingID      string `json:"bookingId"`
	FleetVehicleID string `json:"fleetVehicleId"`
	AgencyID       string `json:"agencyId"`
	CustomerID     string `json:"customerId"`

	OriginalStartDate time.Time `json:"originalStartDate"`
	OriginalEndDate   time.Time `json:"originalEndDate"`
	CurrentStartDate  time.Time `json:"currentStartDate"`
	CurrentEndDate    time.Time `json:"currentEndDate"`
	ActualStartDate   time.Time `json:"actualStartDate"`
	Source            string    `json:"source"`

	DailyRate      float64 `json:"dailyRate"`
	TotalDays      int     `json:"totalDays"`
	Subtotal       float64 `json:"subtotal"`
	OptionsTotal   float64 `json:"optionsTotal"`
	DiscountAmount float64 `json:"discountAmount"`
	DiscountReason *string `json:"discountReason,omitempty"`
	TaxRate        float64 `json:"taxRate"`
	TaxAmount      float64 `json:"taxAmount"`
	TotalAmount    float64 `json:"totalAmount"`

	DepositAmount     float64    `json:"depositAmount"`
	DepositMethod     string     `json:"depositMethod"`
	DepositStatus     string     `json:"depositStatus"`
	DepositCapturedAt *time.Time `json:"depositCapturedAt,omitempty"`

	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	PaidAmount    float64 `json:"paidAmount"`

	StartMileage   int     `json:"startMileage"`
	StartFuelLevel int     `json:"startFuelLevel"`
	PhotoFront     *string `json:"photoFront,omitempty"`
	PhotoLeft      *string `json:"photoLeft,omitempty"`
	PhotoRight     *string `json:"photoRight,omitempty"`
	PhotoRear      *string `json:"photoRear,omitempty"`
	PhotoCounter   *string `json:"photoCounter,omitempty"`

	DamageSchema       json.RawMessage `json:"damageSchema,omitempty"`
	EquipmentChecklist json.RawMessage `json:"equipmentChecklist,omitempty"`

	IDCardFrontURL  *string `json:"customerIdCardUrl,omitempty"`
	IDCardBackURL   *string `json:"customerIdCardVersoUrl,omitempty"`
	LicenseFrontURL *string `json:"customerLicenseUrl,omitempty"`
	LicenseBackURL  *string `json:"customerLicenseVersoUrl,omitempty"`

	CustomerSignedAt *time.Time `json:"customerSignedAt,omitempty"`
	TermsAcceptedAt  *time.Time `json:"termsAcceptedAt,omitempty"`
	TermsLanguage    *string    `json:"termsLanguage,omitempty"`

	Status string `json:"status"`

	CommissionRate   *float64 `json:"commissionRate,omitempty"`
	CommissionAmount *float64 `json:"commissionAmount,omitempty"`
	CommissionType   *string  `json:"commissionType,omitempty"`
	CommissionStatus *string  `json:"commissionStatus,omitempty"`

	Customer     *CustomerRef     `json:"customer,omitempty"`
	Agency       *AgencyRef       `json:"agency,omitempty"`
	FleetVehicle *FleetVehicleRef `json:"fleetVehicle,omitempty"`
	Booking      *BookingRef      `json:"booking,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ContractToResponse converts the entity without expanding references; the
// service fills Customer/Agency/FleetVehicle/Booking when it has them.
func ContractToResponse(c *entity.RentalContract) *ContractResponse {
	resp := &ContractResponse{
		ID:                c.ID.String(),
		ContractNumber:    c.ContractNumber,
		BookingID:         c.BookingID.String(),
		FleetVehicleID:    c.FleetVehicleID.String(),
		AgencyID:          c.AgencyID.String(),
		CustomerID:        c.CustomerID.String(),
		OriginalStartDate: c.OriginalStartDate,
		OriginalEndDate:   c.OriginalEndDate,
		CurrentStartDate:  c.CurrentStartDate,
		CurrentEndDate:    c.CurrentEndDate,
		ActualStartDate:   c.ActualStartDate,
		Source:            string(c.Source),
		DailyRate:         c.DailyRate,
		TotalDays:         c.TotalDays,
		Subtotal:          c.Subtotal,
		OptionsTotal:      c.OptionsTotal,
		DiscountAmount:    c.DiscountAmount,
		DiscountReason:    c.DiscountReason,
		TaxRate:           c.TaxRate,
		TaxAmount:         c.TaxAmount,
		TotalAmount:       c.TotalAmount,
		DepositAmount:     c.DepositAmount,
		DepositMethod:     string(c.DepositMethod),
		DepositStatus:     string(c.DepositStatus),
		DepositCapturedAt: c.DepositCapturedAt,
		PaymentMethod:     string(c.PaymentMethod),
		PaymentStatus:     string(c.PaymentStatus),
		PaidAmount:        c.PaidAmount,
		StartMileage:      c.StartMileage,
		StartFuelLevel:    c.StartFuelLevel,
		PhotoFront:        c.PhotoFront,
		PhotoLeft:         c.PhotoLeft,
		PhotoRight:        c.PhotoRight,
		PhotoRear:         c.PhotoRear,
		PhotoCounter:      c.PhotoCounter,
		IDCardFrontURL:    c.IDCardFrontURL,
		IDCardBackURL:     c.IDCardBackURL,
		LicenseFrontURL:   c.LicenseFrontURL,
		LicenseBackURL:    c.LicenseBackURL,
		CustomerSignedAt:  c.CustomerSignedAt,
		TermsAcceptedAt:   c.TermsAcceptedAt,
		TermsLanguage:     c.TermsLanguage,
		Status:            string(c.Status),
		CommissionRate:    c.CommissionRate,
		CommissionAmount:  c.CommissionAmount,
		CreatedAt:         c.CreatedAt,
	}

	if len(c.DamageSchema) > 0 {
		resp.DamageSchema = json.RawMessage(c.DamageSchema)
	}
	if len(c.EquipmentChecklist) > 0 {
		resp.EquipmentChecklist = json.RawMessage(c.EquipmentChecklist)
	}
	if c.CommissionType != nil {
		t := string(*c.CommissionType)
		resp.CommissionType = &t
	}
	if c.CommissionStatus != nil {
		s := string(*c.CommissionStatus)
		resp.CommissionStatus = &s
	}

	return resp
}

func AgencyToRef(a *entity.Agency) *AgencyRef {
	return &AgencyRef{
		ID:   a.ID.String(),
		Code: a.Code,
		Name: a.Name,
		Type: string(a.AgencyType),
	}
}

func CustomerToRef(c *entity.Customer) *CustomerRef {
	return &CustomerRef{
		ID:        c.ID.String(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func FleetVehicleToRef(fv *entity.FleetVehicle, vehicle *entity.Vehicle) *FleetVehicleRef {
	ref := &FleetVehicleRef{
		ID:                 fv.ID.String(),
		RegistrationNumber: fv.RegistrationNumber,
		CurrentMileage:     fv.CurrentMileage,
		Status:             string(fv.Status),
	}
	if vehicle != nil {
		ref.VehicleName = vehicle.Name
		ref.VehicleSKU = vehicle.SKU
	}

	return ref
}

func BookingToRef(b *entity.Booking) *BookingRef {
	return &BookingRef{
		ID:         b.ID.String(),
		Reference:  b.Reference,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Source:     string(b.Source),
		Status:     string(b.Status),
	}
}
