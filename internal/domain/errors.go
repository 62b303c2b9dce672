package domain

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrSignupNotFound = errors.New("signup not found")
)

var (
	ErrAlreadyRegistered = errors.New("user already has a signup for this event")
	ErrCapacityFull      = errors.New("event is full")
	ErrQuotaFull         = errors.New("volunteer quota reached")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
)

// OutcomeError maps a rejected outcome to the error the HTTP layer reports.
func OutcomeError(o ToggleOutcome) error {
	switch o {
	case OutcomeCapacityFull:
		return ErrCapacityFull
	case OutcomeQuotaFull:
		return ErrQuotaFull
	case OutcomeAlreadyRegistered:
		return ErrAlreadyRegistered
	}
	return nil
}
