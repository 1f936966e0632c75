package repository

import (
	"context"
	"fmt"

	"voltride-booking/internal/data/entity"
	"voltride-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FleetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FleetVehicle, error)
	UpdateStatusAndMileage(ctx context.Context, id uuid.UUID, status entity.FleetStatus, mileage int) error
}

type fleetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFleetRepository(db database.PgxIface, log *zap.Logger) FleetRepository {
	return &fleetRepository{
		db:  db,
		log: log.With(zap.String("repository", "fleet")),
	}
}

func (r *fleetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FleetVehicle, error) {
	query := `
		SELECT id, vehicle_id, agency_id, registration_number, current_mileage, status, created_at, updated_at
		FROM fleet_vehicles
		WHERE id = $1
	`

	var fv entity.FleetVehicle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&fv.ID,
		&fv.VehicleID,
		&fv.AgencyID,
		&fv.RegistrationNumber,
		&fv.CurrentMileage,
		&fv.Status,
		&fv.CreatedAt,
		&fv.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find fleet vehicle by ID",
			zap.Error(err),
			zap.String("fleet_vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find fleet vehicle by ID %s: %w", id.String(), err)
	}

	return &fv, nil
}

func (r *fleetRepository) UpdateStatusAndMileage(ctx context.Context, id uuid.UUID, status entity.FleetStatus, mileage int) error {
	query := `
		UPDATE fleet_vehicles
		SET status = $2, current_mileage = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status, mileage)
	if err != nil {
		r.log.Error("Failed to update fleet vehicle",
			zap.Error(err),
			zap.String("fleet_vehicle_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update fleet vehicle %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("fleet vehicle %s not found", id.String())
	}

	return nil
}
