package usecase

import (
	"context"
	"fmt"

	"stay-booking/internal/data/repository"
	"stay-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UnitService interface {
	ListUnits(ctx context.Context) ([]response.UnitResponse, error)
	CheckAvailability(ctx context.Context, unitID, checkIn, checkOut string) (*response.AvailabilityResponse, error)
}

type unitService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUnitService(repo *repository.Repository, log *zap.Logger) UnitService {
	return &unitService{
		repo: repo,
		log:  log.With(zap.String("service", "unit")),
	}
}

func (s *unitService) ListUnits(ctx context.Context) ([]response.UnitResponse, error) {
	units, err := s.repo.Unit.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	result := make([]response.UnitResponse, 0, len(units))
	for _, unit := range units {
		result = append(result, response.UnitToResponse(unit))
	}
	return result, nil
}

func (s *unitService) CheckAvailability(ctx context.Context, unitID, checkInStr, checkOutStr string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(unitID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid unit ID format", ErrValidation)
	}

	checkIn, checkOut, err := parseDateRange(checkInStr, checkOutStr)
	if err != nil {
		return nil, err
	}

	unit, err := s.repo.Unit.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load unit: %w", err)
	}
	if unit == nil || !unit.IsActive {
		return nil, fmt.Errorf("%w: unit", ErrNotFound)
	}

	available, err := s.repo.Reservation.IsUnitAvailable(ctx, id, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	return &response.AvailabilityResponse{
		UnitID:    id.String(),
		CheckIn:   checkIn.Format(dateLayout),
		CheckOut:  checkOut.Format(dateLayout),
		Available: available,
	}, nil
}
