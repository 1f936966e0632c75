package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"voltride-booking/internal/data/entity"
	"voltride-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. The pgx repositories are thin SQL wrappers, so
// the service tests exercise the workflow logic against these instead of a
// live database.

type fakeAgencyRepo struct {
	agencies map[uuid.UUID]*entity.Agency
}

func (f *fakeAgencyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Agency, error) {
	return f.agencies[id], nil
}

func (f *fakeAgencyRepo) NextContractNumber(_ context.Context, agencyID uuid.UUID) (string, error) {
	agency, ok := f.agencies[agencyID]
	if !ok {
		return "", fmt.Errorf("agency %s not found", agencyID)
	}
	agency.ContractSeq++
	return fmt.Sprintf("%s-%05d", agency.Code, agency.ContractSeq), nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return f.vehicles[id], nil
}

type fakeFleetRepo struct {
	vehicles map[uuid.UUID]*entity.FleetVehicle
}

func (f *fakeFleetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FleetVehicle, error) {
	return f.vehicles[id], nil
}

func (f *fakeFleetRepo) UpdateStatusAndMileage(_ context.Context, id uuid.UUID, status entity.FleetStatus, mileage int) error {
	fv, ok := f.vehicles[id]
	if !ok {
		return fmt.Errorf("fleet vehicle %s not found", id)
	}
	fv.Status = status
	fv.CurrentMileage = mileage
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) MarkAssigned(_ context.Context, id uuid.UUID, fleetVehicleID uuid.UUID, assignedAt time.Time) error {
	booking, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	booking.Status = entity.BookingStatusConfirmed
	booking.FleetVehicleID = &fleetVehicleID
	booking.AssignedAt = &assignedAt
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	booking.Status = status
	return nil
}

type fakeContractRepo struct {
	contracts map[uuid.UUID]*entity.RentalContract
}

func (f *fakeContractRepo) Upsert(_ context.Context, contract *entity.RentalContract) error {
	for _, existing := range f.contracts {
		if existing.BookingID == contract.BookingID {
			contract.ID = existing.ID
			contract.ContractNumber = existing.ContractNumber
			contract.CreatedAt = existing.CreatedAt
			break
		}
	}
	clone := *contract
	f.contracts[contract.ID] = &clone
	return nil
}

func (f *fakeContractRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RentalContract, error) {
	return f.contracts[id], nil
}

func (f *fakeContractRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.RentalContract, error) {
	for _, c := range f.contracts {
		if c.BookingID == bookingID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeContractRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.RentalContract, error) {
	all := make([]*entity.RentalContract, 0, len(f.contracts))
	for _, c := range f.contracts {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeContractRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.contracts)), nil
}

func (f *fakeContractRepo) UpdateDocumentURL(_ context.Context, id uuid.UUID, kind entity.DocumentKind, url string) error {
	c, ok := f.contracts[id]
	if !ok {
		return fmt.Errorf("contract %s not found", id)
	}
	c.SetDocumentURL(kind, url)
	return nil
}

func (f *fakeContractRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ContractStatus) error {
	c, ok := f.contracts[id]
	if !ok {
		return fmt.Errorf("contract %s not found", id)
	}
	c.Status = status
	return nil
}

func (f *fakeContractRepo) UpdateDepositStatus(_ context.Context, id uuid.UUID, status entity.DepositStatus) error {
	c, ok := f.contracts[id]
	if !ok {
		return fmt.Errorf("contract %s not found", id)
	}
	c.DepositStatus = status
	return nil
}

type fakeInspectionRepo struct {
	inspections []*entity.FleetInspection
}

func (f *fakeInspectionRepo) Create(_ context.Context, inspection *entity.FleetInspection) error {
	f.inspections = append(f.inspections, inspection)
	return nil
}

func (f *fakeInspectionRepo) FindByContractID(_ context.Context, contractID uuid.UUID) ([]*entity.FleetInspection, error) {
	var out []*entity.FleetInspection
	for _, i := range f.inspections {
		if i.ContractID == contractID {
			out = append(out, i)
		}
	}
	return out, nil
}

// testEnv bundles the fakes with a wired service so tests can both call
// operations and inspect the resulting state.
type testEnv struct {
	repo       *repository.Repository
	agencies   *fakeAgencyRepo
	customers  *fakeCustomerRepo
	vehicles   *fakeVehicleRepo
	fleet      *fakeFleetRepo
	bookings   *fakeBookingRepo
	contracts  *fakeContractRepo
	inspection *fakeInspectionRepo
	service    ContractService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		agencies:   &fakeAgencyRepo{agencies: map[uuid.UUID]*entity.Agency{}},
		customers:  &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{}},
		vehicles:   &fakeVehicleRepo{vehicles: map[uuid.UUID]*entity.Vehicle{}},
		fleet:      &fakeFleetRepo{vehicles: map[uuid.UUID]*entity.FleetVehicle{}},
		bookings:   &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}},
		contracts:  &fakeContractRepo{contracts: map[uuid.UUID]*entity.RentalContract{}},
		inspection: &fakeInspectionRepo{},
	}
	env.repo = &repository.Repository{
		Agency:     env.agencies,
		Customer:   env.customers,
		Vehicle:    env.vehicles,
		Fleet:      env.fleet,
		Booking:    env.bookings,
		Contract:   env.contracts,
		Inspection: env.inspection,
	}
	env.service = NewContractService(env.repo, zap.NewNop())
	return env
}

// fixture is a ready-to-check-out booking: a partner agency at 10%
// commission, a plated vehicle with a 750 deposit and a 3-day booking
// totalling 300.
type fixture struct {
	agency  *entity.Agency
	vehicle *entity.Vehicle
	fleet   *entity.FleetVehicle
	booking *entity.Booking
}

func seedFixture(env *testEnv) *fixture {
	rate := 0.10
	deposit := 750.0
	reg := "1234-XYZ"
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	agency := &entity.Agency{
		Base:           entity.Base{ID: uuid.New()},
		Code:           "BCN",
		Name:           "Barcelona Center",
		AgencyType:     entity.AgencyTypePartner,
		CommissionRate: &rate,
	}
	customer := &entity.Customer{
		Base:      entity.Base{ID: uuid.New()},
		FirstName: "Nora",
		LastName:  "Vidal",
		Email:     "nora@example.com",
		Phone:     "+34600000001",
	}
	vehicle := &entity.Vehicle{
		Base:     entity.Base{ID: uuid.New()},
		SKU:      "SCOOT-125",
		Name:     "City Scooter 125",
		Deposit:  &deposit,
		HasPlate: true,
	}
	fleetVehicle := &entity.FleetVehicle{
		Base:               entity.Base{ID: uuid.New()},
		VehicleID:          vehicle.ID,
		AgencyID:           agency.ID,
		RegistrationNumber: &reg,
		CurrentMileage:     1000,
		Status:             entity.FleetStatusAvailable,
	}
	booking := &entity.Booking{
		Base:       entity.Base{ID: uuid.New()},
		Reference:  "BK-2026-0001",
		AgencyID:   agency.ID,
		CustomerID: customer.ID,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 3),
		TotalPrice: 300,
		PaidAmount: 90,
		Source:     entity.BookingSourceWidget,
		Status:     entity.BookingStatusPending,
	}

	env.agencies.agencies[agency.ID] = agency
	env.customers.customers[customer.ID] = customer
	env.vehicles.vehicles[vehicle.ID] = vehicle
	env.fleet.vehicles[fleetVehicle.ID] = fleetVehicle
	env.bookings.bookings[booking.ID] = booking

	return &fixture{
		agency:  agency,
		vehicle: vehicle,
		fleet:   fleetVehicle,
		booking: booking,
	}
}
