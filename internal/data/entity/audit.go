package entity

import (
	"github.com/google/uuid"
)

// Audit actions recorded by the engine.
const (
	AuditActionReservationCreated   = "reservation_created"
	AuditActionReservationCancelled = "reservation_cancelled"
	AuditActionPricingMismatch      = "pricing_mismatch"
)

// AuditLog is append-only; rows are never updated or read back by the engine.
type AuditLog struct {
	BaseSimple
	Action     string     `db:"action"`
	ActorID    *uuid.UUID `db:"actor_id"`
	ActorEmail *string    `db:"actor_email"`
	Detail     string     `db:"detail"`
}
