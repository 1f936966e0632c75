package repository

import (
	"context"
	"fmt"
	"time"

	"voltride-booking/internal/data/entity"
	"voltride-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// MarkAssigned confirms the booking and records the fleet vehicle
	// assignment. Called at check-out after the contract write succeeds.
	MarkAssigned(ctx context.Context, id uuid.UUID, fleetVehicleID uuid.UUID, assignedAt time.Time) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, reference, agency_id, customer_id, start_date, end_date,
		       total_price, paid_amount, source, status, fleet_vehicle_id, assigned_at,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.AgencyID,
		&booking.CustomerID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalPrice,
		&booking.PaidAmount,
		&booking.Source,
		&booking.Status,
		&booking.FleetVehicleID,
		&booking.AssignedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) MarkAssigned(ctx context.Context, id uuid.UUID, fleetVehicleID uuid.UUID, assignedAt time.Time) error {
	query := `
		UPDATE bookings
		SET status = $2, fleet_vehicle_id = $3, assigned_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, entity.BookingStatusConfirmed, fleetVehicleID, assignedAt)
	if err != nil {
		r.log.Error("Failed to mark booking assigned",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("fleet_vehicle_id", fleetVehicleID.String()),
		)
		return fmt.Errorf("mark booking %s assigned: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}
