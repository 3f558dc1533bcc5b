package usecase

import (
	"errors"
	"testing"
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUnit(nightly, cleaning int64, maxOccupancy int) *entity.Unit {
	return &entity.Unit{
		Name:              "Seaside Cabin",
		BasePricePerNight: nightly,
		CleaningFee:       cleaning,
		MaxOccupancy:      maxOccupancy,
		IsActive:          true,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculatePrice(t *testing.T) {
	t.Parallel()

	t.Run("three nights with cleaning fee", func(t *testing.T) {
		// 3 nights * 50000 + 10000 cleaning = 160000
		// tax = round(160000 * 0.075) = 12000, total = 172000
		unit := testUnit(50000, 10000, 4)

		breakdown, err := CalculatePrice(unit, date(2026, 9, 10), date(2026, 9, 13), 2, 0)
		require.NoError(t, err)

		assert.Equal(t, 3, breakdown.Nights)
		assert.Equal(t, int64(150000), breakdown.BaseAmount)
		assert.Equal(t, int64(10000), breakdown.CleaningFee)
		assert.Equal(t, int64(12000), breakdown.TaxAmount)
		assert.Equal(t, int64(172000), breakdown.TotalAmount)
	})

	t.Run("total identity holds with discount", func(t *testing.T) {
		unit := testUnit(33333, 7500, 6)

		breakdown, err := CalculatePrice(unit, date(2026, 3, 1), date(2026, 3, 6), 4, 9999)
		require.NoError(t, err)

		sum := breakdown.BaseAmount + breakdown.CleaningFee + breakdown.TaxAmount - breakdown.DiscountAmount
		assert.Equal(t, breakdown.TotalAmount, sum)
	})

	t.Run("single night", func(t *testing.T) {
		unit := testUnit(80000, 0, 2)

		breakdown, err := CalculatePrice(unit, date(2026, 5, 1), date(2026, 5, 2), 1, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, breakdown.Nights)
		assert.Equal(t, int64(80000), breakdown.BaseAmount)
		assert.Equal(t, int64(6000), breakdown.TaxAmount)
	})

	t.Run("rejects zero nights", func(t *testing.T) {
		unit := testUnit(50000, 0, 4)

		_, err := CalculatePrice(unit, date(2026, 9, 10), date(2026, 9, 10), 2, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		unit := testUnit(50000, 0, 4)

		_, err := CalculatePrice(unit, date(2026, 9, 13), date(2026, 9, 10), 2, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("rejects guests over max occupancy", func(t *testing.T) {
		unit := testUnit(50000, 0, 4)

		_, err := CalculatePrice(unit, date(2026, 9, 10), date(2026, 9, 13), 5, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		unit := testUnit(50000, 0, 4)

		_, err := CalculatePrice(unit, date(2026, 9, 10), date(2026, 9, 13), 2, -1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestVerifyPricing(t *testing.T) {
	t.Parallel()

	computed := &PriceBreakdown{
		Nights:      3,
		BaseAmount:  150000,
		CleaningFee: 10000,
		TaxAmount:   12000,
		TotalAmount: 172000,
	}

	submittedFrom := func(c *PriceBreakdown) request.PricingBreakdown {
		return request.PricingBreakdown{
			BaseAmount:  c.BaseAmount,
			CleaningFee: c.CleaningFee,
			TaxAmount:   c.TaxAmount,
			TotalAmount: c.TotalAmount,
		}
	}

	t.Run("exact match passes", func(t *testing.T) {
		assert.True(t, VerifyPricing(submittedFrom(computed), computed))
	})

	t.Run("off by one within tolerance passes", func(t *testing.T) {
		submitted := submittedFrom(computed)
		submitted.TaxAmount--
		submitted.TotalAmount++
		assert.True(t, VerifyPricing(submitted, computed))
	})

	t.Run("off by two fails", func(t *testing.T) {
		submitted := submittedFrom(computed)
		submitted.TotalAmount += 2
		assert.False(t, VerifyPricing(submitted, computed))
	})

	t.Run("understated total fails", func(t *testing.T) {
		submitted := submittedFrom(computed)
		submitted.TotalAmount = 100
		assert.False(t, VerifyPricing(submitted, computed))
	})

	t.Run("wrong base fails even when total matches", func(t *testing.T) {
		submitted := submittedFrom(computed)
		submitted.BaseAmount = 140000
		assert.False(t, VerifyPricing(submitted, computed))
	})
}
