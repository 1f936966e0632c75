package usecase

import (
	"context"
	"fmt"

	"voltride-booking/internal/data/entity"
	"voltride-booking/internal/data/repository"
	"voltride-booking/internal/dto/request"
	"voltride-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContractService interface {
	// Activate runs the check-out workflow: upserts the rental contract for
	// the booking, then confirms the booking, rents out the fleet vehicle
	// and records the departure inspection. Safe to retry; one contract per
	// booking no matter how often it is called.
	Activate(ctx context.Context, bookingID string, req *request.CheckOutRequest) (*response.ContractResponse, error)

	ListContracts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContractResponse], error)
	GetContractByID(ctx context.Context, contractID string) (*response.ContractResponse, error)

	// Closure document gate.
	MissingDocuments(ctx context.Context, contractID string) (*response.MissingDocumentsResponse, error)
	AttachDocument(ctx context.Context, contractID string, req *request.AttachDocumentRequest) (*response.MissingDocumentsResponse, error)
	Finalize(ctx context.Context, contractID string) (*response.ContractResponse, error)
}

type contractService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContractService(repo *repository.Repository, log *zap.Logger) ContractService {
	return &contractService{
		repo: repo,
		log:  log.With(zap.String("service", "contract")),
	}
}

func (s *contractService) ListContracts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContractResponse], error) {
	contracts, err := s.repo.Contract.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list contracts", zap.Error(err))
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	total, err := s.repo.Contract.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count contracts", zap.Error(err))
		return nil, fmt.Errorf("count contracts: %w", err)
	}

	contractResponses := make([]response.ContractResponse, len(contracts))
	for i, contract := range contracts {
		contractResponses[i] = *s.buildContractResponse(ctx, contract)
	}

	s.log.Info("Contracts listed",
		zap.Int("count", len(contracts)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(contractResponses, req.Page, req.PerPage, total), nil
}

func (s *contractService) GetContractByID(ctx context.Context, contractID string) (*response.ContractResponse, error) {
	contract, err := s.findContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	return s.buildContractResponse(ctx, contract), nil
}

// findContract resolves a contract by path parameter. A malformed ID cannot
// reference anything, so it reports not-found rather than a parse error.
func (s *contractService) findContract(ctx context.Context, contractID string) (*entity.RentalContract, error) {
	id, err := uuid.Parse(contractID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, contractID)
	}

	contract, err := s.repo.Contract.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find contract %s: %w", contractID, err)
	}
	if contract == nil {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, contractID)
	}

	return contract, nil
}

// buildContractResponse expands the customer/agency/vehicle/booking
// references. Expansion failures are tolerated; the bare contract still
// serves.
func (s *contractService) buildContractResponse(ctx context.Context, contract *entity.RentalContract) *response.ContractResponse {
	resp := response.ContractToResponse(contract)

	customer, _ := s.repo.Customer.FindByID(ctx, contract.CustomerID)
	if customer != nil {
		resp.Customer = response.CustomerToRef(customer)
	}

	agency, _ := s.repo.Agency.FindByID(ctx, contract.AgencyID)
	if agency != nil {
		resp.Agency = response.AgencyToRef(agency)
	}

	fleetVehicle, _ := s.repo.Fleet.FindByID(ctx, contract.FleetVehicleID)
	if fleetVehicle != nil {
		vehicle, _ := s.repo.Vehicle.FindByID(ctx, fleetVehicle.VehicleID)
		resp.FleetVehicle = response.FleetVehicleToRef(fleetVehicle, vehicle)
	}

	booking, _ := s.repo.Booking.FindByID(ctx, contract.BookingID)
	if booking != nil {
		resp.Booking = response.BookingToRef(booking)
	}

	return resp
}
