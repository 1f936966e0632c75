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

type AgencyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error)

	// NextContractNumber atomically increments the agency contract sequence
	// and returns the formatted number. Safe across concurrent callers and
	// server instances because the increment happens in a single UPDATE.
	NextContractNumber(ctx context.Context, agencyID uuid.UUID) (string, error)
}

type agencyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAgencyRepository(db database.PgxIface, log *zap.Logger) AgencyRepository {
	return &agencyRepository{
		db:  db,
		log: log.With(zap.String("repository", "agency")),
	}
}

func (r *agencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error) {
	query := `
		SELECT id, code, name, agency_type, commission_rate, contract_seq, created_at, updated_at
		FROM agencies
		WHERE id = $1
	`

	var agency entity.Agency
	err := r.db.QueryRow(ctx, query, id).Scan(
		&agency.ID,
		&agency.Code,
		&agency.Name,
		&agency.AgencyType,
		&agency.CommissionRate,
		&agency.ContractSeq,
		&agency.CreatedAt,
		&agency.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find agency by ID",
			zap.Error(err),
			zap.String("agency_id", id.String()),
		)
		return nil, fmt.Errorf("find agency by ID %s: %w", id.String(), err)
	}

	return &agency, nil
}

func (r *agencyRepository) NextContractNumber(ctx context.Context, agencyID uuid.UUID) (string, error) {
	query := `
		UPDATE agencies
		SET contract_seq = contract_seq + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING code, contract_seq
	`

	var code string
	var seq int64
	err := r.db.QueryRow(ctx, query, agencyID).Scan(&code, &seq)
	if err == pgx.ErrNoRows {
		return "", fmt.Errorf("agency %s not found", agencyID.String())
	}
	if err != nil {
		r.log.Error("Failed to generate contract number",
			zap.Error(err),
			zap.String("agency_id", agencyID.String()),
		)
		return "", fmt.Errorf("next contract number for agency %s: %w", agencyID.String(), err)
	}

	return fmt.Sprintf("%s-%05d", code, seq), nil
}
