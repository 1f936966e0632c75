package usecase

import (
	"context"
	"fmt"
	"time"

	"voltride-booking/internal/data/entity"
	"voltride-booking/internal/dto/request"
	"voltride-booking/internal/dto/response"
	"voltride-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *contractService) Activate(ctx context.Context, bookingID string, req *request.CheckOutRequest) (*response.ContractResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-out validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// A malformed booking ID cannot reference an existing booking.
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	fleetVehicleUUID, err := uuid.Parse(req.FleetVehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFleetVehicleNotFound, req.FleetVehicleID)
	}

	fleetVehicle, err := s.repo.Fleet.FindByID(ctx, fleetVehicleUUID)
	if err != nil {
		return nil, fmt.Errorf("find fleet vehicle %s: %w", req.FleetVehicleID, err)
	}
	if fleetVehicle == nil {
		return nil, fmt.Errorf("%w: %s", ErrFleetVehicleNotFound, req.FleetVehicleID)
	}

	agency, err := s.repo.Agency.FindByID(ctx, booking.AgencyID)
	if err != nil || agency == nil {
		return nil, &ActivationError{Step: "load agency", Err: err}
	}

	// Catalog entry carries the deposit and the license requirement.
	vehicle, err := s.repo.Vehicle.FindByID(ctx, fleetVehicle.VehicleID)
	if err != nil {
		return nil, &ActivationError{Step: "load vehicle", Err: err}
	}

	// An existing contract keeps its number; a fresh one consumes the
	// agency sequence.
	existing, err := s.repo.Contract.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, &ActivationError{Step: "contract lookup", Err: err}
	}

	contractID := uuid.New()
	var contractNumber string
	if existing != nil {
		contractID = existing.ID
		contractNumber = existing.ContractNumber
	} else {
		contractNumber, err = s.repo.Agency.NextContractNumber(ctx, agency.ID)
		if err != nil {
			return nil, &ActivationError{Step: "contract number", Err: err}
		}
	}

	now := time.Now()
	totalDays := rentalDays(booking.StartDate, booking.EndDate)
	commission := commissionFor(agency, booking.TotalPrice)

	depositAmount := defaultDepositAmount
	if vehicle != nil && vehicle.Deposit != nil {
		depositAmount = *vehicle.Deposit
	}

	depositStatus := entity.DepositStatusPending
	if req.DepositStatus != nil {
		depositStatus = entity.DepositStatus(*req.DepositStatus)
	}
	var depositCapturedAt *time.Time
	if depositStatus == entity.DepositStatusCaptured {
		depositCapturedAt = &now
	}

	var customerSignedAt *time.Time
	if req.CustomerSignature != nil && *req.CustomerSignature != "" {
		customerSignedAt = &now
	}

	contract := &entity.RentalContract{
		Base: entity.Base{
			ID:        contractID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		ContractNumber: contractNumber,
		BookingID:      booking.ID,
		FleetVehicleID: fleetVehicle.ID,
		AgencyID:       booking.AgencyID,
		CustomerID:     booking.CustomerID,

		OriginalStartDate: booking.StartDate,
		OriginalEndDate:   booking.EndDate,
		CurrentStartDate:  booking.StartDate,
		CurrentEndDate:    booking.EndDate,
		ActualStartDate:   now,
		Source:            entity.ContractSourceFromBooking(booking.Source),

		DailyRate:      booking.TotalPrice / float64(totalDays),
		TotalDays:      totalDays,
		Subtotal:       booking.TotalPrice,
		OptionsTotal:   0,
		DiscountAmount: floatOrZero(req.DiscountAmount),
		DiscountReason: req.DiscountReason,
		TaxRate:        taxRatePercent,
		TaxAmount:      roundCents(booking.TotalPrice * taxRatePercent / 100),
		TotalAmount:    booking.TotalPrice,

		DepositAmount:     depositAmount,
		DepositMethod:     paymentMethodOrCard(req.DepositMethod),
		DepositStatus:     depositStatus,
		DepositCapturedAt: depositCapturedAt,

		PaymentMethod: paymentMethodOrCard(req.PaymentMethod),
		PaymentStatus: paymentStatusOrPending(req.PaymentStatus),
		// Online prepayment is reconciled by the payment subsystem, never
		// mirrored onto the contract.
		PaidAmount: 0,

		StartMileage:   req.StartMileage,
		StartFuelLevel: req.StartFuelLevel,
		PhotoFront:     req.PhotoFront,
		PhotoLeft:      req.PhotoLeft,
		PhotoRight:     req.PhotoRight,
		PhotoRear:      req.PhotoRear,
		PhotoCounter:   req.PhotoCounter,

		DamageSchema:       req.DamageSchema,
		EquipmentChecklist: req.EquipmentChecklist,

		IDCardFrontURL:  req.IDCardFrontURL,
		IDCardBackURL:   req.IDCardBackURL,
		LicenseFrontURL: req.LicenseFrontURL,
		LicenseBackURL:  req.LicenseBackURL,

		CustomerSignature: req.CustomerSignature,
		CustomerSignedAt:  customerSignedAt,
		TermsAcceptedAt:   req.TermsAcceptedAt,
		TermsLanguage:     req.TermsLanguage,

		Status: entity.ContractStatusActive,

		CommissionRate:   commission.Rate,
		CommissionAmount: commission.Amount,
		CommissionType:   commission.Type,
		CommissionStatus: commission.Status,
	}

	// The contract write is the source of truth for "did activation
	// happen"; side effects only run once it committed.
	if err := s.repo.Contract.Upsert(ctx, contract); err != nil {
		s.log.Error("Failed to upsert contract",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("contract_number", contractNumber),
		)
		return nil, &ActivationError{Step: "contract write", Err: err}
	}

	if err := s.applyCheckOutSideEffects(ctx, booking, fleetVehicle, contract, req, now); err != nil {
		return nil, err
	}

	s.log.Info("Contract activated",
		zap.String("contract_id", contract.ID.String()),
		zap.String("contract_number", contract.ContractNumber),
		zap.String("booking_id", bookingID),
		zap.String("fleet_vehicle_id", req.FleetVehicleID),
		zap.Int("total_days", totalDays),
		zap.Float64("total_amount", contract.TotalAmount),
		zap.Bool("updated_existing", existing != nil),
	)

	return s.buildContractResponse(ctx, contract), nil
}

// applyCheckOutSideEffects confirms the booking, rents out the vehicle and
// records the departure inspection. All three are idempotent per booking, so
// a crashed activation can be re-run safely.
func (s *contractService) applyCheckOutSideEffects(
	ctx context.Context,
	booking *entity.Booking,
	fleetVehicle *entity.FleetVehicle,
	contract *entity.RentalContract,
	req *request.CheckOutRequest,
	now time.Time,
) error {
	if booking.Status != entity.BookingStatusConfirmed &&
		!booking.Status.CanTransitionTo(entity.BookingStatusConfirmed) {
		return &ActivationError{Step: "booking update", Err: &entity.InvalidTransitionError{
			Entity: "booking",
			From:   string(booking.Status),
			To:     string(entity.BookingStatusConfirmed),
		}}
	}
	if err := s.repo.Booking.MarkAssigned(ctx, booking.ID, fleetVehicle.ID, now); err != nil {
		return &ActivationError{Step: "booking update", Err: err}
	}

	if fleetVehicle.Status != entity.FleetStatusRented &&
		!fleetVehicle.Status.CanTransitionTo(entity.FleetStatusRented) {
		return &ActivationError{Step: "fleet update", Err: &entity.InvalidTransitionError{
			Entity: "fleet vehicle",
			From:   string(fleetVehicle.Status),
			To:     string(entity.FleetStatusRented),
		}}
	}
	if err := s.repo.Fleet.UpdateStatusAndMileage(ctx, fleetVehicle.ID, entity.FleetStatusRented, req.StartMileage); err != nil {
		return &ActivationError{Step: "fleet update", Err: err}
	}

	var operatorID *uuid.UUID
	if req.OperatorID != nil {
		if id, err := uuid.Parse(*req.OperatorID); err == nil {
			operatorID = &id
		}
	}

	inspection := &entity.FleetInspection{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		FleetVehicleID:    fleetVehicle.ID,
		ContractID:        contract.ID,
		Type:              entity.InspectionTypeCheckOut,
		Mileage:           req.StartMileage,
		FuelLevel:         req.StartFuelLevel,
		OperatorID:        operatorID,
		CustomerSignature: req.CustomerSignature,
		CustomerSignedAt:  contract.CustomerSignedAt,
	}
	if err := s.repo.Inspection.Create(ctx, inspection); err != nil {
		return &ActivationError{Step: "inspection", Err: err}
	}

	return nil
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func paymentMethodOrCard(v *string) entity.PaymentMethod {
	if v == nil || *v == "" {
		return entity.PaymentMethodCard
	}
	return entity.PaymentMethod(*v)
}

func paymentStatusOrPending(v *string) entity.PaymentStatus {
	if v == nil || *v == "" {
		return entity.PaymentStatusPending
	}
	return entity.PaymentStatus(*v)
}
