package domain

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	// ErrBookingCancelled marks a payment that arrived after the expiry
	// sweeper released the reservation; the rows keep status cancelled but
	// are flagged paid so the money has a durable trace.
	ErrBookingCancelled = errors.New("booking already cancelled")
)

var (
	ErrNoCapacity    = errors.New("not enough capacity for the requested dates")
	ErrAlreadyBooked = errors.New("user already has an active booking for this day")
)

var (
	// ErrEventAlreadyProcessed signals a retried provider delivery; callers
	// must acknowledge it as success without reapplying side effects.
	ErrEventAlreadyProcessed = errors.New("webhook event already processed")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
)

var (
	ErrAgentNotVerified = errors.New("agent is not verified")
	ErrUsernameTaken    = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
