package dto

import (
	"time"

	"pod-seller-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// RequestAdvanceRequest is the request body for a seller's advance request.
// Amount accepts a JSON string or number.
type RequestAdvanceRequest struct {
	Type    string          `json:"type" binding:"required,advance_type"`
	Amount  decimal.Decimal `json:"amount" binding:"decimal_gt0"`
	Reason  string          `json:"reason" binding:"max=500"`
	DueDate *time.Time      `json:"due_date,omitempty"`
}

// ApproveAdvanceRequest is the optional request body for approval.
type ApproveAdvanceRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// RejectAdvanceRequest is the request body for rejection.
type RejectAdvanceRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// RepayRequest is the request body for a repayment.
type RepayRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"decimal_gt0"`
	Method  string          `json:"method" binding:"required,repayment_method"`
	OrderID *string         `json:"order_id,omitempty" binding:"omitempty,max=100,safe_id"`
	Note    string          `json:"note" binding:"max=500"`
}

// PostTransactionRequest is the request body for a manual wallet posting.
type PostTransactionRequest struct {
	Type        string          `json:"type" binding:"required,txn_type"`
	Amount      decimal.Decimal `json:"amount" binding:"decimal_gt0"`
	Description string          `json:"description" binding:"max=500"`
}

// WalletResponse is the wallet plus its credit position.
type WalletResponse struct {
	Wallet *domain.Wallet        `json:"wallet"`
	Credit *domain.CreditSummary `json:"credit"`
}

// ListResponse wraps a paginated list.
type ListResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewListResponse fills in TotalPages. A nil items slice renders as [].
func NewListResponse[T any](items []T, total int64, page, pageSize int) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return ListResponse[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
