package usecase

import (
	"context"
	"fmt"

	"voltride-booking/internal/data/entity"
	"voltride-booking/internal/dto/request"
	"voltride-booking/internal/dto/response"
	"voltride-booking/pkg/utils"

	"go.uber.org/zap"
)

func (s *contractService) MissingDocuments(ctx context.Context, contractID string) (*response.MissingDocumentsResponse, error) {
	contract, err := s.findContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	requiresLicense, err := s.vehicleRequiresLicense(ctx, contract)
	if err != nil {
		return nil, err
	}

	missing := missingDocuments(contract, requiresLicense)
	return response.NewMissingDocumentsResponse(contractID, missing), nil
}

func (s *contractService) AttachDocument(ctx context.Context, contractID string, req *request.AttachDocumentRequest) (*response.MissingDocumentsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Attach document validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	contract, err := s.findContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	requiresLicense, err := s.vehicleRequiresLicense(ctx, contract)
	if err != nil {
		return nil, err
	}

	kind := entity.DocumentKind(req.Kind)

	// Already captured: nothing to write, the missing set is unchanged.
	if url := contract.DocumentURL(kind); url != nil && *url != "" {
		missing := missingDocuments(contract, requiresLicense)
		return response.NewMissingDocumentsResponse(contractID, missing), nil
	}

	if err := s.repo.Contract.UpdateDocumentURL(ctx, contract.ID, kind, req.URL); err != nil {
		return nil, fmt.Errorf("attach document %s to contract %s: %w", req.Kind, contractID, err)
	}
	contract.SetDocumentURL(kind, req.URL)

	missing := missingDocuments(contract, requiresLicense)

	s.log.Info("Document attached",
		zap.String("contract_id", contractID),
		zap.String("kind", req.Kind),
		zap.Int("still_missing", len(missing)),
	)

	return response.NewMissingDocumentsResponse(contractID, missing), nil
}

func (s *contractService) Finalize(ctx context.Context, contractID string) (*response.ContractResponse, error) {
	contract, err := s.findContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	requiresLicense, err := s.vehicleRequiresLicense(ctx, contract)
	if err != nil {
		return nil, err
	}

	// The gate: refuse while captures are missing, reporting exactly which
	// ones so the operator can prompt for them. Contract state is untouched.
	if missing := missingDocuments(contract, requiresLicense); len(missing) > 0 {
		s.log.Warn("Finalize refused, documents missing",
			zap.String("contract_id", contractID),
			zap.Int("missing", len(missing)),
		)
		return nil, &MissingDocumentsError{Missing: missing}
	}

	if !contract.Status.CanTransitionTo(entity.ContractStatusCompleted) {
		return nil, &entity.InvalidTransitionError{
			Entity: "contract",
			From:   string(contract.Status),
			To:     string(entity.ContractStatusCompleted),
		}
	}

	if err := s.repo.Contract.UpdateStatus(ctx, contract.ID, entity.ContractStatusCompleted); err != nil {
		return nil, fmt.Errorf("finalize contract %s: %w", contractID, err)
	}
	contract.Status = entity.ContractStatusCompleted

	// Documents are complete, so a captured deposit can be handed back.
	if contract.DepositStatus == entity.DepositStatusCaptured {
		if err := s.repo.Contract.UpdateDepositStatus(ctx, contract.ID, entity.DepositStatusReleased); err != nil {
			return nil, fmt.Errorf("release deposit for contract %s: %w", contractID, err)
		}
		contract.DepositStatus = entity.DepositStatusReleased
	}

	s.log.Info("Contract finalized",
		zap.String("contract_id", contractID),
		zap.String("contract_number", contract.ContractNumber),
		zap.String("deposit_status", string(contract.DepositStatus)),
	)

	return s.buildContractResponse(ctx, contract), nil
}

// vehicleRequiresLicense follows fleet vehicle -> catalog entry. Missing
// references default to not requiring a license, matching unplated vehicles.
func (s *contractService) vehicleRequiresLicense(ctx context.Context, contract *entity.RentalContract) (bool, error) {
	fleetVehicle, err := s.repo.Fleet.FindByID(ctx, contract.FleetVehicleID)
	if err != nil {
		return false, fmt.Errorf("load fleet vehicle for contract %s: %w", contract.ID.String(), err)
	}
	if fleetVehicle == nil {
		return false, nil
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, fleetVehicle.VehicleID)
	if err != nil {
		return false, fmt.Errorf("load vehicle for contract %s: %w", contract.ID.String(), err)
	}
	if vehicle == nil {
		return false, nil
	}

	return vehicle.HasPlate, nil
}
