package usecase

import "errors"

// Failure taxonomy for the booking pipeline. Handlers map these to HTTP
// statuses with errors.Is; any step failing aborts the whole operation.
var (
	// ErrValidation: malformed input, rejected before any state change.
	// Wrapped messages are field-level and safe to show.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound covers both genuinely missing records and lookups where
	// the supplied email does not match, so reservation numbers cannot be
	// enumerated.
	ErrNotFound = errors.New("not found")
	// ErrUnitNotAvailable: the requested range overlaps an active
	// reservation. Safe to reveal.
	ErrUnitNotAvailable = errors.New("unit is not available for the selected dates")
	// ErrPricingMismatch: caller-submitted pricing disagrees with the
	// server computation. The message stays generic; the expected values
	// are never echoed back.
	ErrPricingMismatch = errors.New("pricing verification failed")
	// ErrTerminalState: the reservation can no longer transition.
	ErrTerminalState = errors.New("reservation is in a terminal state")
)
