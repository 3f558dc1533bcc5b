package usecase

import (
	"context"
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/data/repository"
	"stay-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const auditWriteTimeout = 3 * time.Second

// AuditWriter records sensitive events best-effort. A failed write is
// logged and swallowed; it never alters the outcome of the caller's
// primary operation.
type AuditWriter struct {
	repo  repository.AuditRepository
	clock utils.Clock
	log   *zap.Logger
}

func NewAuditWriter(repo repository.AuditRepository, clock utils.Clock, log *zap.Logger) *AuditWriter {
	return &AuditWriter{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "audit")),
	}
}

func (a *AuditWriter) Write(ctx context.Context, action string, actorID *uuid.UUID, actorEmail *string, detail string) {
	// Detach from the request context so a client disconnect cannot cancel
	// the write, but keep a bounded timeout.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	entry := &entity.AuditLog{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: a.clock.Now(),
		},
		Action:     action,
		ActorID:    actorID,
		ActorEmail: actorEmail,
		Detail:     detail,
	}

	if err := a.repo.Create(writeCtx, entry); err != nil {
		a.log.Warn("Audit write failed",
			zap.Error(err),
			zap.String("action", action),
		)
	}
}
