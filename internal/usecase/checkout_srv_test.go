package usecase

import (
	"context"
	"testing"

	"voltride-booking/internal/data/entity"
	"voltride-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkOutRequest(fix *fixture) *request.CheckOutRequest {
	signature := "data:image/png;base64,abc"
	return &request.CheckOutRequest{
		FleetVehicleID:    fix.fleet.ID.String(),
		StartMileage:      1042,
		StartFuelLevel:    85,
		CustomerSignature: &signature,
	}
}

func TestActivateCreatesContract(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	ctx := context.Background()

	resp, err := env.service.Activate(ctx, fix.booking.ID.String(), checkOutRequest(fix))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "BCN-00001", resp.ContractNumber)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, 100.0, resp.DailyRate)
	assert.Equal(t, 300.0, resp.Subtotal)
	assert.Equal(t, 300.0, resp.TotalAmount)
	assert.Equal(t, 21.0, resp.TaxRate)
	assert.Equal(t, 63.0, resp.TaxAmount)

	// The booking's online prepayment stays in the payment subsystem.
	assert.Equal(t, 0.0, resp.PaidAmount)

	// Vehicle-specific deposit wins over the default.
	assert.Equal(t, 750.0, resp.DepositAmount)
	assert.Equal(t, "PENDING", resp.DepositStatus)
	assert.Nil(t, resp.DepositCapturedAt)

	// Partner agency at 10% of the booking total.
	require.NotNil(t, resp.CommissionRate)
	require.NotNil(t, resp.CommissionAmount)
	require.NotNil(t, resp.CommissionType)
	assert.Equal(t, 0.10, *resp.CommissionRate)
	assert.Equal(t, 30.0, *resp.CommissionAmount)
	assert.Equal(t, "REVERSAL", *resp.CommissionType)
	assert.Equal(t, "PENDING", *resp.CommissionStatus)

	assert.NotNil(t, resp.CustomerSignedAt)

	// Expanded references come along.
	require.NotNil(t, resp.Customer)
	assert.Equal(t, "Nora", resp.Customer.FirstName)
	require.NotNil(t, resp.Agency)
	assert.Equal(t, "BCN", resp.Agency.Code)
	require.NotNil(t, resp.FleetVehicle)
	assert.Equal(t, "City Scooter 125", resp.FleetVehicle.VehicleName)
}

func TestActivateAppliesSideEffects(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	ctx := context.Background()

	_, err := env.service.Activate(ctx, fix.booking.ID.String(), checkOutRequest(fix))
	require.NoError(t, err)

	booking := env.bookings.bookings[fix.booking.ID]
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.FleetVehicleID)
	assert.Equal(t, fix.fleet.ID, *booking.FleetVehicleID)
	assert.NotNil(t, booking.AssignedAt)

	fleetVehicle := env.fleet.vehicles[fix.fleet.ID]
	assert.Equal(t, entity.FleetStatusRented, fleetVehicle.Status)
	assert.Equal(t, 1042, fleetVehicle.CurrentMileage)

	require.Len(t, env.inspection.inspections, 1)
	inspection := env.inspection.inspections[0]
	assert.Equal(t, entity.InspectionTypeCheckOut, inspection.Type)
	assert.Equal(t, fix.fleet.ID, inspection.FleetVehicleID)
	assert.Equal(t, 1042, inspection.Mileage)
	assert.Equal(t, 85, inspection.FuelLevel)
}

func TestActivateIsIdempotent(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	ctx := context.Background()

	first, err := env.service.Activate(ctx, fix.booking.ID.String(), checkOutRequest(fix))
	require.NoError(t, err)

	req := checkOutRequest(fix)
	req.StartMileage = 1050
	second, err := env.service.Activate(ctx, fix.booking.ID.String(), req)
	require.NoError(t, err)

	// Same contract, same number; the retry overwrites rather than
	// duplicating or burning another sequence value.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ContractNumber, second.ContractNumber)
	assert.Len(t, env.contracts.contracts, 1)
	assert.Equal(t, int64(1), env.agencies.agencies[fix.agency.ID].ContractSeq)

	assert.Equal(t, 1050, second.StartMileage)
	assert.Equal(t, 1050, env.fleet.vehicles[fix.fleet.ID].CurrentMileage)
}

func TestActivateFallsBackToDefaultDeposit(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.vehicle.Deposit = nil
	ctx := context.Background()

	resp, err := env.service.Activate(ctx, fix.booking.ID.String(), checkOutRequest(fix))
	require.NoError(t, err)

	assert.Equal(t, 500.0, resp.DepositAmount)
}

func TestActivateCapturedDeposit(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	ctx := context.Background()

	captured := "CAPTURED"
	req := checkOutRequest(fix)
	req.DepositStatus = &captured

	resp, err := env.service.Activate(ctx, fix.booking.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, "CAPTURED", resp.DepositStatus)
	assert.NotNil(t, resp.DepositCapturedAt)
}

func TestActivateDirectAgencyNoCommission(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.agency.AgencyType = entity.AgencyTypeDirect
	ctx := context.Background()

	resp, err := env.service.Activate(ctx, fix.booking.ID.String(), checkOutRequest(fix))
	require.NoError(t, err)

	assert.Nil(t, resp.CommissionRate)
	assert.Nil(t, resp.CommissionAmount)
	assert.Nil(t, resp.CommissionType)
	assert.Nil(t, resp.CommissionStatus)
}

func TestActivateBookingNotFound(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	ctx := context.Background()

	_, err := env.service.Activate(ctx, uuid.NewString(), checkOutRequest(fix))
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = env.service.Activate(ctx, "not-a-uuid", checkOutRequest(fix))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestActivateFleetVehicleNotFound(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	ctx := context.Background()

	req := checkOutRequest(fix)
	req.FleetVehicleID = uuid.NewString()

	_, err := env.service.Activate(ctx, fix.booking.ID.String(), req)
	assert.ErrorIs(t, err, ErrFleetVehicleNotFound)

	// No contract and no side effects when the reference check fails.
	assert.Empty(t, env.contracts.contracts)
	assert.Equal(t, entity.BookingStatusPending, env.bookings.bookings[fix.booking.ID].Status)
}

func TestActivateRejectsInvalidRequest(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	ctx := context.Background()

	req := checkOutRequest(fix)
	req.FleetVehicleID = ""

	_, err := env.service.Activate(ctx, fix.booking.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestActivateVehicleInMaintenance(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.fleet.Status = entity.FleetStatusMaintenance
	ctx := context.Background()

	_, err := env.service.Activate(ctx, fix.booking.ID.String(), checkOutRequest(fix))
	require.Error(t, err)

	var transitionErr *entity.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "fleet vehicle", transitionErr.Entity)
	assert.Equal(t, "MAINTENANCE", transitionErr.From)

	// The vehicle stays in maintenance.
	assert.Equal(t, entity.FleetStatusMaintenance, env.fleet.vehicles[fix.fleet.ID].Status)
}

func TestActivateCancelledBooking(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.booking.Status = entity.BookingStatusCancelled
	ctx := context.Background()

	_, err := env.service.Activate(ctx, fix.booking.ID.String(), checkOutRequest(fix))
	require.Error(t, err)

	var activationErr *ActivationError
	require.ErrorAs(t, err, &activationErr)
	assert.Equal(t, "booking update", activationErr.Step)

	var transitionErr *entity.InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}
