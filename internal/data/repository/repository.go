package repository

import (
	"errors"

	"stay-booking/pkg/database"

	"go.uber.org/zap"
)

// Sentinel errors surfaced by repositories; the store enforces the
// corresponding constraints, repositories only translate them.
var (
	// ErrUnitOccupied: insert lost to an overlapping active reservation,
	// either the in-transaction check or the range exclusion constraint.
	ErrUnitOccupied = errors.New("unit occupied for requested range")
	// ErrDuplicateEmail: customer insert hit the unique lower(email) index.
	ErrDuplicateEmail = errors.New("customer email already exists")
	// ErrDuplicateReservationNumber: generated number collided, caller
	// regenerates and retries.
	ErrDuplicateReservationNumber = errors.New("reservation number already exists")
)

type Repository struct {
	Unit        UnitRepository
	Customer    CustomerRepository
	Reservation ReservationRepository
	Audit       AuditRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Unit:        NewUnitRepository(db, log),
		Customer:    NewCustomerRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Audit:       NewAuditRepository(db, log),
	}
}
