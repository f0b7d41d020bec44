package domain

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places every money column stores.
const AmountScale = 4

// ValidateAmount rejects amounts that are not positive or that carry more
// precision than the ledger stores. Trailing zeros beyond the scale are fine.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return ErrAmountScale
	}
	return nil
}
