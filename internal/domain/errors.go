package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgActivityInactive    = "activity is not active"
	ErrMsgActivityNotFound    = "activity not found"
	ErrMsgChanceAlreadyUsed   = "chance already used"
	ErrMsgChanceNotFound      = "chance not found"
	ErrMsgAwardNotFound       = "award not found"
	ErrMsgPoolNotFound        = "pool not found"
	ErrMsgInvalidPrize        = "invalid prize"
	ErrMsgConcurrencyConflict = "concurrent modification detected"
	ErrMsgInvalidInput        = "invalid input"

	// ErrMsgTxClosed matches pgx's error string for double rollback
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// ErrActivityInactive: the activity gate failed, retryable once the
	// window opens again
	ErrActivityInactive = errors.New(ErrMsgActivityInactive)

	ErrActivityNotFound = errors.New(ErrMsgActivityNotFound)

	// ErrChanceAlreadyUsed: a state-machine violation, the chance has a
	// different, final outcome
	ErrChanceAlreadyUsed = errors.New(ErrMsgChanceAlreadyUsed)

	ErrChanceNotFound = errors.New(ErrMsgChanceNotFound)
	ErrAwardNotFound  = errors.New(ErrMsgAwardNotFound)
	ErrPoolNotFound   = errors.New(ErrMsgPoolNotFound)

	// ErrInvalidPrize: a winning chance references a missing or disabled
	// award at claim time
	ErrInvalidPrize = errors.New(ErrMsgInvalidPrize)

	// ErrConcurrencyConflict: an optimistic-lock version mismatch on save
	ErrConcurrencyConflict = errors.New(ErrMsgConcurrencyConflict)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
