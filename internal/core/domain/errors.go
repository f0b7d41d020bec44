package domain

import "errors"

// Domain-level sentinel errors. Services map them onto apperror codes.
var (
	ErrInvalidTransition      = errors.New("advance status does not allow this transition")
	ErrExceedsOutstanding     = errors.New("amount exceeds outstanding balance")
	ErrInsufficientFunds      = errors.New("insufficient available balance")
	ErrReleaseExceedsHold     = errors.New("release exceeds held amount")
	ErrNonPositiveAmount      = errors.New("amount must be greater than zero")
	ErrAmountScale            = errors.New("amount has more than 4 decimal places")
	ErrUnknownTransactionType = errors.New("unknown wallet transaction type")
	ErrReasonRequired         = errors.New("rejection reason is required")
	ErrNotOverdue             = errors.New("advance is not past its due date")

	// ErrDuplicateIdempotencyKey is returned by the store when another
	// request committed the same idempotency key first.
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already recorded")
)
