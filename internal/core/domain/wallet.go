package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is a seller's running ledger of balance, holds and credit exposure.
// AvailableBalance always equals Balance minus HoldAmount.
type Wallet struct {
	ID               uuid.UUID       `json:"id"`
	SellerID         uuid.UUID       `json:"seller_id"`
	TeamID           *uuid.UUID      `json:"team_id,omitempty"`
	Currency         string          `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	HoldAmount       decimal.Decimal `json:"hold_amount"`
	AdvanceLimit     decimal.Decimal `json:"advance_limit"`
	TotalAdvances    decimal.Decimal `json:"total_advances"`
	TotalRepayments  decimal.Decimal `json:"total_repayments"`
	TotalProfitShare decimal.Decimal `json:"total_profit_share"`
	LastActivityAt   *time.Time      `json:"last_activity_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewWallet returns an empty wallet for the seller with the given limit.
func NewWallet(seller *Seller, currency string, limit decimal.Decimal, now time.Time) *Wallet {
	return &Wallet{
		ID:               uuid.New(),
		SellerID:         seller.ID,
		TeamID:           seller.TeamID,
		Currency:         currency,
		Balance:          decimal.Zero,
		AvailableBalance: decimal.Zero,
		HoldAmount:       decimal.Zero,
		AdvanceLimit:     limit,
		TotalAdvances:    decimal.Zero,
		TotalRepayments:  decimal.Zero,
		TotalProfitShare: decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Apply mutates the wallet for one transaction of type t and returns the
// balance before and after. Balance and hold deltas follow the sign table:
//
//	CREDIT, PROFIT_SHARE  balance +amount
//	DEBIT, REPAYMENT      balance -amount
//	ADVANCE               no balance change (exposure lives on the advance)
//	HOLD                  hold +amount
//	RELEASE               hold -amount
//
// DEBIT and HOLD require enough available balance; RELEASE cannot exceed the
// current hold. On error the wallet is left unchanged.
func (w *Wallet) Apply(t TransactionType, amount decimal.Decimal, now time.Time) (before, after decimal.Decimal, err error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	balance, hold := w.Balance, w.HoldAmount
	switch t {
	case TransactionTypeCredit, TransactionTypeProfitShare:
		balance = balance.Add(amount)
	case TransactionTypeDebit:
		if w.AvailableBalance.LessThan(amount) {
			return decimal.Zero, decimal.Zero, ErrInsufficientFunds
		}
		balance = balance.Sub(amount)
	case TransactionTypeRepayment:
		// Not gated: a negative balance is settlement owed against future earnings.
		balance = balance.Sub(amount)
	case TransactionTypeAdvance:
	case TransactionTypeHold:
		if w.AvailableBalance.LessThan(amount) {
			return decimal.Zero, decimal.Zero, ErrInsufficientFunds
		}
		hold = hold.Add(amount)
	case TransactionTypeRelease:
		if amount.GreaterThan(hold) {
			return decimal.Zero, decimal.Zero, ErrReleaseExceedsHold
		}
		hold = hold.Sub(amount)
	default:
		return decimal.Zero, decimal.Zero, ErrUnknownTransactionType
	}

	before = w.Balance
	w.Balance = balance
	w.HoldAmount = hold
	w.AvailableBalance = balance.Sub(hold)

	switch t {
	case TransactionTypeAdvance:
		w.TotalAdvances = w.TotalAdvances.Add(amount)
	case TransactionTypeRepayment:
		w.TotalRepayments = w.TotalRepayments.Add(amount)
	case TransactionTypeProfitShare:
		w.TotalProfitShare = w.TotalProfitShare.Add(amount)
	}

	w.LastActivityAt = &now
	w.UpdatedAt = now
	return before, w.Balance, nil
}

// IsConsistent reports whether the available-balance identity holds.
func (w *Wallet) IsConsistent() bool {
	return w.AvailableBalance.Equal(w.Balance.Sub(w.HoldAmount))
}

// CreditSummary is the advance exposure view of a wallet.
type CreditSummary struct {
	SellerID    uuid.UUID       `json:"seller_id"`
	Limit       decimal.Decimal `json:"advance_limit"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Available   decimal.Decimal `json:"available_credit"`
}

// NewCreditSummary computes available credit as limit minus outstanding.
func NewCreditSummary(sellerID uuid.UUID, limit, outstanding decimal.Decimal) CreditSummary {
	return CreditSummary{
		SellerID:    sellerID,
		Limit:       limit,
		Outstanding: outstanding,
		Available:   limit.Sub(outstanding),
	}
}
