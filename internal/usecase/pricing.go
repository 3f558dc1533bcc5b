package usecase

import (
	"fmt"
	"math"
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/dto/request"
)

// TaxRate is a fixed system constant applied to the discounted subtotal.
const TaxRate = 0.075

// PriceTolerance is the maximum absolute difference, per field, between a
// caller-submitted amount and the server-computed one. It absorbs
// independent rounding, nothing more.
const PriceTolerance int64 = 1

// PriceBreakdown is the authoritative server-side price. All amounts in
// minor units. No other component may derive a chargeable amount.
type PriceBreakdown struct {
	Nights         int
	BaseAmount     int64
	CleaningFee    int64
	TaxAmount      int64
	DiscountAmount int64
	TotalAmount    int64
}

// CalculatePrice computes the only trustworthy price for a unit, date range
// and guest count.
//
//	base     = nightly * nights
//	subtotal = base + cleaning - discount   (cleaning fee is flat)
//	tax      = round(subtotal * TaxRate)
//	total    = subtotal + tax
func CalculatePrice(unit *entity.Unit, checkIn, checkOut time.Time, guests int, discount int64) (*PriceBreakdown, error) {
	nights := int(checkOut.Sub(checkIn) / (24 * time.Hour))
	if nights <= 0 {
		return nil, fmt.Errorf("%w: check_out must be after check_in", ErrValidation)
	}
	if guests > unit.MaxOccupancy {
		return nil, fmt.Errorf("%w: guest count %d exceeds unit max occupancy %d", ErrValidation, guests, unit.MaxOccupancy)
	}
	if discount < 0 {
		return nil, fmt.Errorf("%w: discount must not be negative", ErrValidation)
	}

	baseAmount := unit.BasePricePerNight * int64(nights)
	subtotal := baseAmount + unit.CleaningFee - discount
	taxAmount := int64(math.Round(float64(subtotal) * TaxRate))

	return &PriceBreakdown{
		Nights:         nights,
		BaseAmount:     baseAmount,
		CleaningFee:    unit.CleaningFee,
		TaxAmount:      taxAmount,
		DiscountAmount: discount,
		TotalAmount:    subtotal + taxAmount,
	}, nil
}

// VerifyPricing compares every caller-submitted field against the computed
// breakdown. Any field outside tolerance fails the whole comparison.
func VerifyPricing(submitted request.PricingBreakdown, computed *PriceBreakdown) bool {
	return withinTolerance(submitted.BaseAmount, computed.BaseAmount) &&
		withinTolerance(submitted.CleaningFee, computed.CleaningFee) &&
		withinTolerance(submitted.TaxAmount, computed.TaxAmount) &&
		withinTolerance(submitted.TotalAmount, computed.TotalAmount)
}

func withinTolerance(a, b int64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= PriceTolerance
}
