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

type ContractRepository interface {
	// Upsert inserts the contract or, when a contract already exists for the
	// same booking, overwrites its mutable fields in place. The existence
	// check and the write are one statement, so two concurrent check-outs
	// for the same booking collapse into a single row. The entity's ID,
	// ContractNumber and CreatedAt are rewritten with the persisted values.
	Upsert(ctx context.Context, contract *entity.RentalContract) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalContract, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.RentalContract, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.RentalContract, error)
	Count(ctx context.Context) (int64, error)

	UpdateDocumentURL(ctx context.Context, id uuid.UUID, kind entity.DocumentKind, url string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContractStatus) error
	UpdateDepositStatus(ctx context.Context, id uuid.UUID, status entity.DepositStatus) error
}

type contractRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContractRepository(db database.PgxIface, log *zap.Logger) ContractRepository {
	return &contractRepository{
		db:  db,
		log: log.With(zap.String("repository", "contract")),
	}
}

const contractColumns = `
	id, contract_number, booking_id, fleet_vehicle_id, agency_id, customer_id,
	original_start_date, original_end_date, current_start_date, current_end_date,
	actual_start_date, source,
	daily_rate, total_days, subtotal, options_total, discount_amount, discount_reason,
	tax_rate, tax_amount, total_amount,
	deposit_amount, deposit_method, deposit_status, deposit_captured_at,
	payment_method, payment_status, paid_amount,
	start_mileage, start_fuel_level,
	photo_front, photo_left, photo_right, photo_rear, photo_counter,
	damage_schema, equipment_checklist,
	id_card_front_url, id_card_back_url, license_front_url, license_back_url,
	customer_signature, customer_signed_at, terms_accepted_at, terms_language,
	status,
	commission_rate, commission_amount, commission_type, commission_status,
	created_at, updated_at`

func (r *contractRepository) Upsert(ctx context.Context, c *entity.RentalContract) error {
	// On conflict the identity of the contract is preserved: id,
	// contract_number, booking/agency/customer refs, the original period
	// bounds and created_at stay as first written.
	query := `
		INSERT INTO rental_contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		        $31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43, $44,
		        $45, $46, $47, $48, $49, $50, $51, $52)
		ON CONFLICT (booking_id) DO UPDATE SET
			fleet_vehicle_id = EXCLUDED.fleet_vehicle_id,
			current_start_date = EXCLUDED.current_start_date,
			current_end_date = EXCLUDED.current_end_date,
			actual_start_date = EXCLUDED.actual_start_date,
			source = EXCLUDED.source,
			daily_rate = EXCLUDED.daily_rate,
			total_days = EXCLUDED.total_days,
			subtotal = EXCLUDED.subtotal,
			options_total = EXCLUDED.options_total,
			discount_amount = EXCLUDED.discount_amount,
			discount_reason = EXCLUDED.discount_reason,
			tax_rate = EXCLUDED.tax_rate,
			tax_amount = EXCLUDED.tax_amount,
			total_amount = EXCLUDED.total_amount,
			deposit_amount = EXCLUDED.deposit_amount,
			deposit_method = EXCLUDED.deposit_method,
			deposit_status = EXCLUDED.deposit_status,
			deposit_captured_at = EXCLUDED.deposit_captured_at,
			payment_method = EXCLUDED.payment_method,
			payment_status = EXCLUDED.payment_status,
			paid_amount = EXCLUDED.paid_amount,
			start_mileage = EXCLUDED.start_mileage,
			start_fuel_level = EXCLUDED.start_fuel_level,
			photo_front = EXCLUDED.photo_front,
			photo_left = EXCLUDED.photo_left,
			photo_right = EXCLUDED.photo_right,
			photo_rear = EXCLUDED.photo_rear,
			photo_counter = EXCLUDED.photo_counter,
			damage_schema = EXCLUDED.damage_schema,
			equipment_checklist = EXCLUDED.equipment_checklist,
			id_card_front_url = EXCLUDED.id_card_front_url,
			id_card_back_url = EXCLUDED.id_card_back_url,
			license_front_url = EXCLUDED.license_front_url,
			license_back_url = EXCLUDED.license_back_url,
			customer_signature = EXCLUDED.customer_signature,
			customer_signed_at = EXCLUDED.customer_signed_at,
			terms_accepted_at = EXCLUDED.terms_accepted_at,
			terms_language = EXCLUDED.terms_language,
			status = EXCLUDED.status,
			commission_rate = EXCLUDED.commission_rate,
			commission_amount = EXCLUDED.commission_amount,
			commission_type = EXCLUDED.commission_type,
			commission_status = EXCLUDED.commission_status,
			updated_at = EXCLUDED.updated_at
		RETURNING id, contract_number, created_at
	`

	err := r.db.QueryRow(ctx, query,
		c.ID,
		c.ContractNumber,
		c.BookingID,
		c.FleetVehicleID,
		c.AgencyID,
		c.CustomerID,
		c.OriginalStartDate,
		c.OriginalEndDate,
		c.CurrentStartDate,
		c.CurrentEndDate,
		c.ActualStartDate,
		c.Source,
		c.DailyRate,
		c.TotalDays,
		c.Subtotal,
		c.OptionsTotal,
		c.DiscountAmount,
		c.DiscountReason,
		c.TaxRate,
		c.TaxAmount,
		c.TotalAmount,
		c.DepositAmount,
		c.DepositMethod,
		c.DepositStatus,
		c.DepositCapturedAt,
		c.PaymentMethod,
		c.PaymentStatus,
		c.PaidAmount,
		c.StartMileage,
		c.StartFuelLevel,
		c.PhotoFront,
		c.PhotoLeft,
		c.PhotoRight,
		c.PhotoRear,
		c.PhotoCounter,
		c.DamageSchema,
		c.EquipmentChecklist,
		c.IDCardFrontURL,
		c.IDCardBackURL,
		c.LicenseFrontURL,
		c.LicenseBackURL,
		c.CustomerSignature,
		c.CustomerSignedAt,
		c.TermsAcceptedAt,
		c.TermsLanguage,
		c.Status,
		c.CommissionRate,
		c.CommissionAmount,
		c.CommissionType,
		c.CommissionStatus,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&c.ID, &c.ContractNumber, &c.CreatedAt)

	if err != nil {
		r.log.Error("Failed to upsert contract",
			zap.Error(err),
			zap.String("booking_id", c.BookingID.String()),
			zap.String("contract_number", c.ContractNumber),
		)
		return fmt.Errorf("upsert contract for booking %s: %w", c.BookingID.String(), err)
	}

	return nil
}

func (r *contractRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	contract, err := scanContract(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contract by ID",
			zap.Error(err),
			zap.String("contract_id", id.String()),
		)
		return nil, fmt.Errorf("find contract by ID %s: %w", id.String(), err)
	}

	return contract, nil
}

func (r *contractRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE booking_id = $1`

	row := r.db.QueryRow(ctx, query, bookingID)
	contract, err := scanContract(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contract by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find contract by booking ID %s: %w", bookingID.String(), err)
	}

	return contract, nil
}

func (r *contractRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.RentalContract, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM rental_contracts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list contracts",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*entity.RentalContract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			r.log.Error("Failed to scan contract row", zap.Error(err))
			return nil, fmt.Errorf("scan contract row: %w", err)
		}
		contracts = append(contracts, contract)
	}

	return contracts, nil
}

func (r *contractRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rental_contracts`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count contracts", zap.Error(err))
		return 0, fmt.Errorf("count contracts: %w", err)
	}

	return count, nil
}

// documentColumn maps a document kind to its contract column. Kinds are
// validated upstream; an unknown kind is a programming error.
func documentColumn(kind entity.DocumentKind) (string, error) {
	switch kind {
	case entity.DocumentIDCardFront:
		return "id_card_front_url", nil
	case entity.DocumentIDCardBack:
		return "id_card_back_url", nil
	case entity.DocumentLicenseFront:
		return "license_front_url", nil
	case entity.DocumentLicenseBack:
		return "license_back_url", nil
	default:
		return "", fmt.Errorf("unknown document kind %q", string(kind))
	}
}

func (r *contractRepository) UpdateDocumentURL(ctx context.Context, id uuid.UUID, kind entity.DocumentKind, url string) error {
	column, err := documentColumn(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE rental_contracts SET %s = $2, updated_at = NOW() WHERE id = $1`, column)

	result, err := r.db.Exec(ctx, query, id, url)
	if err != nil {
		r.log.Error("Failed to update contract document",
			zap.Error(err),
			zap.String("contract_id", id.String()),
			zap.String("kind", string(kind)),
		)
		return fmt.Errorf("update contract %s document %s: %w", id.String(), string(kind), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contract %s not found", id.String())
	}

	return nil
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContractStatus) error {
	query := `UPDATE rental_contracts SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update contract status",
			zap.Error(err),
			zap.String("contract_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update contract %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contract %s not found", id.String())
	}

	return nil
}

func (r *contractRepository) UpdateDepositStatus(ctx context.Context, id uuid.UUID, status entity.DepositStatus) error {
	query := `UPDATE rental_contracts SET deposit_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update contract deposit status",
			zap.Error(err),
			zap.String("contract_id", id.String()),
			zap.String("deposit_status", string(status)),
		)
		return fmt.Errorf("update contract %s deposit status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contract %s not found", id.String())
	}

	return nil
}

func scanContract(row pgx.Row) (*entity.RentalContract, error) {
	var c entity.RentalContract
	err := row.Scan(
		&c.ID,
		&c.ContractNumber,
		&c.BookingID,
		&c.FleetVehicleID,
		&c.AgencyID,
		&c.CustomerID,
		&c.OriginalStartDate,
		&c.OriginalEndDate,
		&c.CurrentStartDate,
		&c.CurrentEndDate,
		&c.ActualStartDate,
		&c.Source,
		&c.DailyRate,
		&c.TotalDays,
		&c.Subtotal,
		&c.OptionsTotal,
		&c.DiscountAmount,
		&c.DiscountReason,
		&c.TaxRate,
		&c.TaxAmount,
		&c.TotalAmount,
		&c.DepositAmount,
		&c.DepositMethod,
		&c.DepositStatus,
		&c.DepositCapturedAt,
		&c.PaymentMethod,
		&c.PaymentStatus,
		&c.PaidAmount,
		&c.StartMileage,
		&c.StartFuelLevel,
		&c.PhotoFront,
		&c.PhotoLeft,
		&c.PhotoRight,
		&c.PhotoRear,
		&c.PhotoCounter,
		&c.DamageSchema,
		&c.EquipmentChecklist,
		&c.IDCardFrontURL,
		&c.IDCardBackURL,
		&c.LicenseFrontURL,
		&c.LicenseBackURL,
		&c.CustomerSignature,
		&c.CustomerSignedAt,
		&c.TermsAcceptedAt,
		&c.TermsLanguage,
		&c.Status,
		&c.CommissionRate,
		&c.CommissionAmount,
		&c.CommissionType,
		&c.CommissionStatus,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
