package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReservationNumber creates a human-readable reservation number.
// Uniqueness is ultimately enforced by the database unique index; callers
// regenerate on a collision. Numbers are never reused once issued.
func GenerateReservationNumber() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: RSV-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RSV-%s-%s-%s", datePart, timePart, randomPart)
}
