package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Currency is a currency accounts can be denominated in.
type Currency struct {
	DefaultModel
	Code   string `gorm:"uniqueIndex"` // ISO 4217 code, e.g. "EUR"
	Symbol string
}

var ErrCurrencyCodeInvalid = errors.New("the currency code must be a valid ISO 4217 code")

// BeforeSave normalizes and validates the currency code.
func (c *Currency) BeforeSave(_ *gorm.DB) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.Symbol = strings.TrimSpace(c.Symbol)

	unit, err := currency.ParseISO(c.Code)
	if err != nil {
		return fmt.Errorf("%w, got %q", ErrCurrencyCodeInvalid, c.Code)
	}
	c.Code = unit.String()

	return nil
}
