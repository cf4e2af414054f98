// Package v1 implements the v1 API of the findash backend.
package v1

import (
	"github.com/findash/backend/internal/rates"
)

// Rates is the exchange rate provider used for converted balances.
// When nil, converted balances are not reported.
var Rates rates.Provider

// ReferenceCurrency is the currency converted balances are reported in.
var ReferenceCurrency = "EUR"

// Configure sets the collaborators the controllers use.
func Configure(provider rates.Provider, referenceCurrency string) {
	Rates = provider

	if referenceCurrency != "" {
		ReferenceCurrency = referenceCurrency
	}
}
