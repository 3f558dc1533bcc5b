package repository

import (
	"context"
	"fmt"

	"stay-booking/internal/data/entity"
	"stay-booking/pkg/database"

	"go.uber.org/zap"
)

// AuditRepository appends audit rows. The engine never updates or reads
// them back.
type AuditRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
}

type auditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditRepository(db database.PgxIface, log *zap.Logger) AuditRepository {
	return &auditRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit")),
	}
}

func (r *auditRepository) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, action, actor_id, actor_email, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		auditLog.ID,
		auditLog.Action,
		auditLog.ActorID,
		auditLog.ActorEmail,
		auditLog.Detail,
		auditLog.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create audit log",
			zap.Error(err),
			zap.String("action", auditLog.Action),
		)
		return fmt.Errorf("create audit log %s: %w", auditLog.Action, err)
	}

	return nil
}
