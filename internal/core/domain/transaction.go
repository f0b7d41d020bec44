package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of wallet ledger entry.
type TransactionType string

const (
	TransactionTypeCredit      TransactionType = "CREDIT"
	TransactionTypeDebit       TransactionType = "DEBIT"
	TransactionTypeAdvance     TransactionType = "ADVANCE"
	TransactionTypeRepayment   TransactionType = "REPAYMENT"
	TransactionTypeProfitShare TransactionType = "PROFIT_SHARE"
	TransactionTypeHold        TransactionType = "HOLD"
	TransactionTypeRelease     TransactionType = "RELEASE"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeCredit, TransactionTypeDebit, TransactionTypeAdvance,
		TransactionTypeRepayment, TransactionTypeProfitShare,
		TransactionTypeHold, TransactionTypeRelease:
		return true
	}
	return false
}

// ReferenceType names the entity a wallet transaction points back to.
type ReferenceType string

const (
	ReferenceTypeAdvance   ReferenceType = "ADVANCE"
	ReferenceTypeRepayment ReferenceType = "REPAYMENT"
	ReferenceTypeManual    ReferenceType = "MANUAL"
)

// WalletTransaction is an immutable ledger entry. BalanceAfter equals
// BalanceBefore adjusted by Amount per the type's sign.
type WalletTransaction struct {
	ID            uuid.UUID       `json:"id"`
	WalletID      uuid.UUID       `json:"wallet_id"`
	SellerID      uuid.UUID       `json:"seller_id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	ReferenceType ReferenceType   `json:"reference_type"`
	ReferenceID   *uuid.UUID      `json:"reference_id,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}
