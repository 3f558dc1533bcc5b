package usecase

import (
	"time"

	"stay-booking/pkg/utils"
)

// RefundPolicy computes refunds for cancellations based on calendar days
// remaining before check-in. The check-in day itself counts toward the
// partial window, so cancelling on the day of check-in refunds nothing.
type RefundPolicy struct {
	FullRefundDays       int
	PartialRefundDays    int
	PartialRefundPercent int
}

func NewRefundPolicy(config utils.RefundPolicyConfig) RefundPolicy {
	return RefundPolicy{
		FullRefundDays:       config.FullRefundDays,
		PartialRefundDays:    config.PartialRefundDays,
		PartialRefundPercent: config.PartialRefundPercent,
	}
}

// RefundFor returns the refund percent and amount for a cancellation at
// `now` against a reservation paid `amountPaid` with the given check-in.
func (p RefundPolicy) RefundFor(amountPaid int64, now, checkIn time.Time) (int, int64) {
	daysUntil := calendarDaysBetween(now, checkIn)

	percent := 0
	switch {
	case daysUntil < 0:
		// already past check-in
	case daysUntil >= p.FullRefundDays:
		percent = 100
	case daysUntil+1 >= p.PartialRefundDays:
		percent = p.PartialRefundPercent
	}

	return percent, amountPaid * int64(percent) / 100
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring the
// time of day on either side.
func calendarDaysBetween(a, b time.Time) int {
	aDate := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDate := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDate.Sub(aDate) / (24 * time.Hour))
}
