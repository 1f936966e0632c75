package repository

import (
	"context"
	"fmt"

	"voltride-booking/internal/data/entity"
	"voltride-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InspectionRepository interface {
	Create(ctx context.Context, inspection *entity.FleetInspection) error
	FindByContractID(ctx context.Context, contractID uuid.UUID) ([]*entity.FleetInspection, error)
}

type inspectionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInspectionRepository(db database.PgxIface, log *zap.Logger) InspectionRepository {
	return &inspectionRepository{
		db:  db,
		log: log.With(zap.String("repository", "inspection")),
	}
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *entity.FleetInspection) error {
	query := `
		INSERT INTO fleet_inspections (id, fleet_vehicle_id, contract_id, type, mileage, fuel_level,
		                               condition_rating, operator_id, customer_signature, customer_signed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		inspection.ID,
		inspection.FleetVehicleID,
		inspection.ContractID,
		inspection.Type,
		inspection.Mileage,
		inspection.FuelLevel,
		inspection.ConditionRating,
		inspection.OperatorID,
		inspection.CustomerSignature,
		inspection.CustomerSignedAt,
		inspection.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create inspection",
			zap.Error(err),
			zap.String("contract_id", inspection.ContractID.String()),
			zap.String("type", string(inspection.Type)),
		)
		return fmt.Errorf("create %s inspection for contract %s: %w",
			string(inspection.Type), inspection.ContractID.String(), err)
	}

	return nil
}

func (r *inspectionRepository) FindByContractID(ctx context.Context, contractID uuid.UUID) ([]*entity.FleetInspection, error) {
	query := `
		SELECT id, fleet_vehicle_id, contract_id, type, mileage, fuel_level,
		       condition_rating, operator_id, customer_signature, customer_signed_at, created_at
		FROM fleet_inspections
		WHERE contract_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, contractID)
	if err != nil {
		r.log.Error("Failed to find inspections by contract ID",
			zap.Error(err),
			zap.String("contract_id", contractID.String()),
		)
		return nil, fmt.Errorf("find inspections by contract ID %s: %w", contractID.String(), err)
	}
	defer rows.Close()

	var inspections []*entity.FleetInspection
	for rows.Next() {
		var ins entity.FleetInspection
		err := rows.Scan(
			&ins.ID,
			&ins.FleetVehicleID,
			&ins.ContractID,
			&ins.Type,
			&ins.Mileage,
			&ins.FuelLevel,
			&ins.ConditionRating,
			&ins.OperatorID,
			&ins.CustomerSignature,
			&ins.CustomerSignedAt,
			&ins.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan inspection row", zap.Error(err))
			return nil, fmt.Errorf("scan inspection row: %w", err)
		}
		inspections = append(inspections, &ins)
	}

	return inspections, nil
}
