// Package aggregator derives account balances and monthly budget
// allocations from raw records.
//
// All computations are pure functions over in-memory collections. They
// never query the database themselves; the single side effect of budget
// resolution, seeding a new month from the previous one, is injected as
// a callback by the caller.
package aggregator

import (
	"fmt"
	"math"

	"github.com/findash/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AmountFromFloat converts a float to an exact decimal amount.
// Non-finite values are rejected with ErrInvalidAmount.
func AmountFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %f", ErrInvalidAmount, f)
	}

	return decimal.NewFromFloat(f), nil
}

// Balance computes the current balance of an account from its initial
// balance and the full transaction history.
//
// Transactions owned by the account add their amount for income,
// subtract it for expense and transfer. Transfers towards the account
// add their amount. Transactions affecting neither side are ignored, so
// the full unfiltered transaction list can be passed in.
//
// The result is a pure sum: processing order does not matter.
// Accumulation is exact, only the returned value is rounded to two
// decimal places.
func Balance(account models.Account, transactions []models.Transaction) decimal.Decimal {
	balance := account.InitialBalance

	for _, t := range transactions {
		switch {
		case t.AccountID == account.ID:
			switch t.Type {
			case models.TransactionIncome:
				balance = balance.Add(t.Amount)
			case models.TransactionExpense, models.TransactionTransfer:
				balance = balance.Sub(t.Amount)
			}

		case t.Type == models.TransactionTransfer && t.RelatedAccountID != nil && *t.RelatedAccountID == account.ID:
			balance = balance.Add(t.Amount)
		}
	}

	return balance.Round(2)
}

// Convert converts an amount from its native currency into the
// reference currency using the supplied rate table. Rates are expressed
// relative to the reference currency, so conversion divides by the rate.
//
// An amount already denominated in the reference currency is returned
// unchanged apart from rounding. A missing or non-positive rate returns
// ErrRateUnavailable; callers decide how to display that.
func Convert(amount decimal.Decimal, code, reference string, rates map[string]decimal.Decimal) (decimal.Decimal, error) {
	if code == reference {
		return amount.Round(2), nil
	}

	rate, ok := rates[code]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrRateUnavailable, code)
	}

	return amount.DivRound(rate, 2), nil
}
