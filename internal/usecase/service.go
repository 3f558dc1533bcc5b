package usecase

import (
	"stay-booking/internal/data/repository"
	"stay-booking/pkg/events"
	"stay-booking/pkg/mailer"
	"stay-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles the use cases behind the HTTP layer.
type Service struct {
	Reservation ReservationService
	Unit        UnitService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	clock utils.Clock,
	mail mailer.Service,
	bus events.Publisher,
	log *zap.Logger,
) *Service {
	audit := NewAuditWriter(repo.Audit, clock, log)
	refund := NewRefundPolicy(config.Refund)

	return &Service{
		Reservation: NewReservationService(repo, refund, clock, audit, mail, bus, log),
		Unit:        NewUnitService(repo, log),
	}
}
