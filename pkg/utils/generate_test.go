package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReservationNumber(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^RSV-\d{8}-\d{6}-\d{4}$`)

	for i := 0; i < 20; i++ {
		number := GenerateReservationNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dina@example.com", NormalizeEmail("  DINA@Example.COM "))
	assert.Equal(t, "a@b.co", NormalizeEmail("a@b.co"))
}
