package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	// IsUnitAvailable runs the half-open overlap test against active
	// reservations. This read is advisory; the authoritative check happens
	// inside CreateIfAvailable.
	IsUnitAvailable(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	// CreateIfAvailable re-checks availability and inserts in one
	// serializable transaction so two racing overlapping inserts cannot
	// both commit. Returns ErrUnitOccupied when the range is taken and
	// ErrDuplicateReservationNumber on a number collision.
	CreateIfAvailable(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByNumber(ctx context.Context, number string) (*entity.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID, paymentStatus entity.PaymentStatus, cancelledAt time.Time, reason *string) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `
	id, reservation_number, unit_id, customer_id, check_in, check_out, guests,
	base_amount, cleaning_fee, tax_amount, discount_amount, total_amount, amount_paid,
	status, payment_status, approval_status, notes, cancelled_at, cancel_reason,
	created_at, updated_at`

// overlapQuery is the standard half-open interval test:
// existing occupies [check_in, check_out) and overlaps [A, B) iff
// check_in < B AND check_out > A. Only active statuses block the calendar.
const overlapQuery = `
	SELECT COUNT(*)
	FROM reservations
	WHERE unit_id = $1
	  AND status IN ('pending', 'confirmed', 'checked_in')
	  AND check_in < $3
	  AND check_out > $2
`

func (r *reservationRepository) IsUnitAvailable(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx, overlapQuery, unitID, checkIn, checkOut).Scan(&count)
	if err != nil {
		r.log.Error("Failed to check unit availability",
			zap.Error(err),
			zap.String("unit_id", unitID.String()),
		)
		return false, fmt.Errorf("check unit availability %s: %w", unitID.String(), err)
	}

	return count == 0, nil
}

func (r *reservationRepository) CreateIfAvailable(ctx context.Context, reservation *entity.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin reservation transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	err = tx.QueryRow(ctx, overlapQuery, reservation.UnitID, reservation.CheckIn, reservation.CheckOut).Scan(&count)
	if err != nil {
		return fmt.Errorf("availability check in transaction: %w", err)
	}
	if count > 0 {
		return ErrUnitOccupied
	}

	insertQuery := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err = tx.Exec(ctx, insertQuery,
		reservation.ID,
		reservation.ReservationNumber,
		reservation.UnitID,
		reservation.CustomerID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.Guests,
		reservation.BaseAmount,
		reservation.CleaningFee,
		reservation.TaxAmount,
		reservation.DiscountAmount,
		reservation.TotalAmount,
		reservation.AmountPaid,
		reservation.Status,
		reservation.PaymentStatus,
		reservation.ApprovalStatus,
		reservation.Notes,
		reservation.CancelledAt,
		reservation.CancelReason,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)
	if err != nil {
		if translated := translateInsertError(err); translated != nil {
			return translated
		}
		r.log.Error("Failed to insert reservation",
			zap.Error(err),
			zap.String("reservation_number", reservation.ReservationNumber),
		)
		return fmt.Errorf("insert reservation %s: %w", reservation.ReservationNumber, err)
	}

	if err := tx.Commit(ctx); err != nil {
		if translated := translateInsertError(err); translated != nil {
			return translated
		}
		return fmt.Errorf("commit reservation %s: %w", reservation.ReservationNumber, err)
	}

	return nil
}

// translateInsertError maps store-enforced constraint failures to sentinel
// errors. The range exclusion constraint (23P01) and serialization failures
// (40001) both mean the second of two racing inserts lost.
func translateInsertError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case "23P01", "40001":
		return ErrUnitOccupied
	case "23505":
		if pgErr.ConstraintName == "reservations_reservation_number_key" {
			return ErrDuplicateReservationNumber
		}
	}
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByNumber(ctx context.Context, number string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_number = $1`

	reservation, err := r.scanOne(r.db.QueryRow(ctx, query, number))
	if err != nil {
		r.log.Error("Failed to find reservation by number",
			zap.Error(err),
			zap.String("reservation_number", number),
		)
		return nil, fmt.Errorf("find reservation by number %s: %w", number, err)
	}

	return reservation, nil
}

func (r *reservationRepository) scanOne(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.ReservationNumber,
		&reservation.UnitID,
		&reservation.CustomerID,
		&reservation.CheckIn,
		&reservation.CheckOut,
		&reservation.Guests,
		&reservation.BaseAmount,
		&reservation.CleaningFee,
		&reservation.TaxAmount,
		&reservation.DiscountAmount,
		&reservation.TotalAmount,
		&reservation.AmountPaid,
		&reservation.Status,
		&reservation.PaymentStatus,
		&reservation.ApprovalStatus,
		&reservation.Notes,
		&reservation.CancelledAt,
		&reservation.CancelReason,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (r *reservationRepository) Cancel(ctx context.Context, id uuid.UUID, paymentStatus entity.PaymentStatus, cancelledAt time.Time, reason *string) error {
	query := `
		UPDATE reservations
		SET status = $2, payment_status = $3, cancelled_at = $4, cancel_reason = $5, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, entity.ReservationStatusCancelled, paymentStatus, cancelledAt, reason)
	if err != nil {
		r.log.Error("Failed to cancel reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("cancel reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}
