package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

// ActiveStatuses are statuses that occupy the unit's calendar. Only these
// count in the overlap check; cancelled/checked_out ranges are free again.
var ActiveStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCheckedIn,
}

// IsTerminal reports whether no further transition is permitted.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCheckedOut || s == ReservationStatusCancelled
}

// CanCancel reports whether the reservation may still transition to cancelled.
func (s ReservationStatus) CanCancel() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Reservation holds a committed booking. Dates are half-open:
// [check_in, check_out), the checkout day itself is not occupied.
// All amounts in minor units; the stored breakdown always satisfies
// total = base + cleaning + tax - discount.
type Reservation struct {
	BaseNoDelete
	ReservationNumber string            `db:"reservation_number"`
	UnitID            uuid.UUID         `db:"unit_id"`
	CustomerID        uuid.UUID         `db:"customer_id"`
	CheckIn           time.Time         `db:"check_in"`
	CheckOut          time.Time         `db:"check_out"`
	Guests            int               `db:"guests"`
	BaseAmount        int64             `db:"base_amount"`
	CleaningFee       int64             `db:"cleaning_fee"`
	TaxAmount         int64             `db:"tax_amount"`
	DiscountAmount    int64             `db:"discount_amount"`
	TotalAmount       int64             `db:"total_amount"`
	AmountPaid        int64             `db:"amount_paid"`
	Status            ReservationStatus `db:"status"`
	PaymentStatus     PaymentStatus     `db:"payment_status"`
	ApprovalStatus    ApprovalStatus    `db:"approval_status"`
	Notes             *string           `db:"notes"`
	CancelledAt       *time.Time        `db:"cancelled_at"`
	CancelReason      *string           `db:"cancel_reason"`
}
