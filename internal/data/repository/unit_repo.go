package repository

import (
	"context"
	"fmt"

	"stay-booking/internal/data/entity"
	"stay-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UnitRepository reads the unit catalog. The engine never mutates units;
// catalog management lives outside this service.
type UnitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)
	FindAllActive(ctx context.Context) ([]*entity.Unit, error)
}

type unitRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUnitRepository(db database.PgxIface, log *zap.Logger) UnitRepository {
	return &unitRepository{
		db:  db,
		log: log.With(zap.String("repository", "unit")),
	}
}

func (r *unitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	query := `
		SELECT id, name, description, base_price_per_night, cleaning_fee, max_occupancy, is_active, created_at, updated_at
		FROM units
		WHERE id = $1
	`

	var unit entity.Unit
	err := r.db.QueryRow(ctx, query, id).Scan(
		&unit.ID,
		&unit.Name,
		&unit.Description,
		&unit.BasePricePerNight,
		&unit.CleaningFee,
		&unit.MaxOccupancy,
		&unit.IsActive,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find unit by ID",
			zap.Error(err),
			zap.String("unit_id", id.String()),
		)
		return nil, fmt.Errorf("find unit by ID %s: %w", id.String(), err)
	}

	return &unit, nil
}

func (r *unitRepository) FindAllActive(ctx context.Context) ([]*entity.Unit, error) {
	query := `
		SELECT id, name, description, base_price_per_night, cleaning_fee, max_occupancy, is_active, created_at, updated_at
		FROM units
		WHERE is_active = true
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active units", zap.Error(err))
		return nil, fmt.Errorf("find active units: %w", err)
	}
	defer rows.Close()

	var units []*entity.Unit
	for rows.Next() {
		var unit entity.Unit
		err := rows.Scan(
			&unit.ID,
			&unit.Name,
			&unit.Description,
			&unit.BasePricePerNight,
			&unit.CleaningFee,
			&unit.MaxOccupancy,
			&unit.IsActive,
			&unit.CreatedAt,
			&unit.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan unit row", zap.Error(err))
			return nil, fmt.Errorf("scan unit row: %w", err)
		}
		units = append(units, &unit)
	}

	return units, nil
}
