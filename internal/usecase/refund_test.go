package usecase

import (
	"testing"
	"time"

	"stay-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestRefundPolicy_RefundFor(t *testing.T) {
	t.Parallel()

	policy := NewRefundPolicy(utils.RefundPolicyConfig{
		FullRefundDays:       7,
		PartialRefundDays:    3,
		PartialRefundPercent: 50,
	})

	checkIn := date(2026, 9, 20)

	tests := []struct {
		name        string
		now         time.Time
		amountPaid  int64
		wantPercent int
		wantAmount  int64
	}{
		{
			name:        "ten days out refunds everything",
			now:         date(2026, 9, 10),
			amountPaid:  172000,
			wantPercent: 100,
			wantAmount:  172000,
		},
		{
			name:        "exactly at full refund boundary",
			now:         date(2026, 9, 13),
			amountPaid:  100000,
			wantPercent: 100,
			wantAmount:  100000,
		},
		{
			name:        "two days out refunds half",
			now:         date(2026, 9, 18),
			amountPaid:  172000,
			wantPercent: 50,
			wantAmount:  86000,
		},
		{
			name:        "six days out still in partial window",
			now:         date(2026, 9, 14),
			amountPaid:  100000,
			wantPercent: 50,
			wantAmount:  50000,
		},
		{
			name:        "day of check-in refunds nothing",
			now:         date(2026, 9, 20),
			amountPaid:  172000,
			wantPercent: 0,
			wantAmount:  0,
		},
		{
			name:        "after check-in refunds nothing",
			now:         date(2026, 9, 22),
			amountPaid:  172000,
			wantPercent: 0,
			wantAmount:  0,
		},
		{
			name:        "nothing paid refunds zero",
			now:         date(2026, 9, 10),
			amountPaid:  0,
			wantPercent: 100,
			wantAmount:  0,
		},
		{
			name:        "time of day does not change the day count",
			now:         time.Date(2026, 9, 10, 23, 59, 0, 0, time.UTC),
			amountPaid:  100000,
			wantPercent: 100,
			wantAmount:  100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, amount := policy.RefundFor(tt.amountPaid, tt.now, checkIn)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Equal(t, tt.wantAmount, amount)
		})
	}
}

func TestRefundPolicy_RoundsDown(t *testing.T) {
	t.Parallel()

	policy := NewRefundPolicy(utils.RefundPolicyConfig{
		FullRefundDays:       7,
		PartialRefundDays:    3,
		PartialRefundPercent: 50,
	})

	// 50% of 101 rounds down to 50
	_, amount := policy.RefundFor(101, date(2026, 9, 18), date(2026, 9, 20))
	assert.Equal(t, int64(50), amount)
}
