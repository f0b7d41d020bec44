package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepaymentMethod records how a repayment was settled.
type RepaymentMethod string

const (
	RepaymentMethodWalletDeduction RepaymentMethod = "WALLET_DEDUCTION"
	RepaymentMethodOrderProfit     RepaymentMethod = "ORDER_PROFIT"
	RepaymentMethodBankTransfer    RepaymentMethod = "BANK_TRANSFER"
	RepaymentMethodManual          RepaymentMethod = "MANUAL"
)

// IsValid reports whether m is a known method.
func (m RepaymentMethod) IsValid() bool {
	switch m {
	case RepaymentMethodWalletDeduction, RepaymentMethodOrderProfit,
		RepaymentMethodBankTransfer, RepaymentMethodManual:
		return true
	}
	return false
}

// AdvanceRepayment is an append-only record of one repayment event.
type AdvanceRepayment struct {
	ID        uuid.UUID       `json:"id"`
	AdvanceID uuid.UUID       `json:"advance_id"`
	SellerID  uuid.UUID       `json:"seller_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    RepaymentMethod `json:"method"`
	OrderID   *string         `json:"order_id,omitempty"`
	Note      string          `json:"note,omitempty"`
	CreatedBy uuid.UUID       `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}
