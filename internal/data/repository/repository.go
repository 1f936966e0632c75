package repository

import (
	"voltride-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Agency     AgencyRepository
	Customer   CustomerRepository
	Vehicle    VehicleRepository
	Fleet      FleetRepository
	Booking    BookingRepository
	Contract   ContractRepository
	Inspection InspectionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Agency:     NewAgencyRepository(db, log),
		Customer:   NewCustomerRepository(db, log),
		Vehicle:    NewVehicleRepository(db, log),
		Fleet:      NewFleetRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Contract:   NewContractRepository(db, log),
		Inspection: NewInspectionRepository(db, log),
	}
}
