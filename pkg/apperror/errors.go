package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails attaches client-visible structured details.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// ---- Wallet (WAL) ----

func ErrNotEligible() *AppError {
	return New("WAL_001", "Seller is not assigned to a team and cannot hold a wallet", http.StatusUnprocessableEntity)
}

func ErrInsufficientFunds(available string) *AppError {
	return New("WAL_002", fmt.Sprintf("Insufficient available balance: %s", available), http.StatusPaymentRequired).
		WithDetails(map[string]any{"available_balance": available})
}

func ErrReleaseExceedsHold(held string) *AppError {
	return New("WAL_003", fmt.Sprintf("Release amount exceeds held amount %s", held), http.StatusUnprocessableEntity).
		WithDetails(map[string]any{"hold_amount": held})
}

// ---- Advances (ADV) ----

func ErrCreditLimitExceeded(limit, outstanding, available, requested string) *AppError {
	msg := fmt.Sprintf("Advance of %s exceeds available credit %s (limit %s, outstanding %s)",
		requested, available, limit, outstanding)
	return New("ADV_001", msg, http.StatusUnprocessableEntity).WithDetails(map[string]any{
		"advance_limit":     limit,
		"outstanding_total": outstanding,
		"available_credit":  available,
		"requested_amount":  requested,
	})
}

func ErrInvalidState(operation, status string) *AppError {
	return New("ADV_002", fmt.Sprintf("Cannot %s an advance in status %s", operation, status), http.StatusConflict).
		WithDetails(map[string]any{"operation": operation, "status": status})
}

func ErrExceedsOutstanding(remaining string) *AppError {
	return New("ADV_003", fmt.Sprintf("Repayment exceeds outstanding balance of %s", remaining), http.StatusUnprocessableEntity).
		WithDetails(map[string]any{"outstanding_amount": remaining})
}

func ErrAdvanceNumberExhausted(err error) *AppError {
	return Wrap("ADV_004", "Could not allocate a unique advance number", http.StatusServiceUnavailable, err)
}

// ---- Authorization (AUTH) ----

func ErrUnauthenticated() *AppError {
	return New("AUTH_001", "Invalid or missing credentials", http.StatusUnauthorized)
}

func ErrPermissionDenied() *AppError {
	return New("AUTH_002", "Permission denied", http.StatusForbidden)
}

// ---- Request (REQ) ----

func ErrNotFound(entity string) *AppError {
	return New("REQ_404", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
