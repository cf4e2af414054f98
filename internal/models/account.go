package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountKind describes what kind of money container an account is.
type AccountKind string

const (
	AccountKindChecking   AccountKind = "checking"
	AccountKindSavings    AccountKind = "savings"
	AccountKindInvestment AccountKind = "investment"
	AccountKindCrypto     AccountKind = "crypto"
)

// Account represents a user defined money container, e.g. a bank account.
//
// The initial balance is set at creation and never mutated afterwards. The
// current balance is always derived from the initial balance and the
// transaction history, it is never stored.
type Account struct {
	DefaultModel
	Name           string          `gorm:"uniqueIndex"`
	Kind           AccountKind     // The kind is open to extension, unknown values are kept as-is
	InitialBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrencyCode   string
	LogoPath       string
	Archived       bool
}

// BeforeSave trims whitespace and defaults the account kind.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.LogoPath = strings.TrimSpace(a.LogoPath)
	a.CurrencyCode = strings.ToUpper(strings.TrimSpace(a.CurrencyCode))

	if a.Kind == "" {
		a.Kind = AccountKindChecking
	}

	return nil
}

// Transactions returns all transactions that affect this account,
// either as the owning account or as the destination of a transfer.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(Transaction{AccountID: a.ID}).
		Or("related_account_id = ?", a.ID).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
