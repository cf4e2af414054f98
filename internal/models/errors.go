package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrAccountNameNotUnique             = errors.New("the account name must be unique")
	ErrTransactionCategoryNameNotUnique = errors.New("the transaction category name must be unique")
	ErrBudgetCategoryNameNotUnique      = errors.New("the budget category name must be unique")
	ErrCurrencyCodeNotUnique            = errors.New("the currency code must be unique")
	ErrAllocationRuleNotUnique          = errors.New("you can not create multiple allocation rules for the same category and month")
	ErrTransferAccountsEqual            = errors.New("source and destination accounts of a transfer must be different")
)
