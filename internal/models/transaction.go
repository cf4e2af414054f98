package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType describes the effect a transaction has on an account.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// TransferType is a purely descriptive label for transfers.
// It does not change how the transfer affects account balances.
type TransferType string

const (
	TransferSaving    TransferType = "saving"
	TransferInvesting TransferType = "investing"
	TransferMoving    TransferType = "moving"
	TransferFunding   TransferType = "funding"
)

var (
	ErrTransactionTypeInvalid      = errors.New("the transaction type must be one of income, expense, transfer")
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrTransferFieldsMissing       = errors.New("transfers require a related account and a transfer type")
	ErrTransferFieldsForbidden     = errors.New("only transfers may set a related account or a transfer type")
	ErrTransferTypeInvalid         = errors.New("the transfer type must be one of saving, investing, moving, funding")
)

// Transaction represents a dated monetary event on an account.
//
// For transfers, the transaction moves the amount from the owning account
// to the related account. For income and expense, the related fields are
// always unset.
type Transaction struct {
	DefaultModel
	Type             TransactionType `gorm:"index"`
	Amount           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date             time.Time
	Note             string
	AccountID        uuid.UUID `gorm:"check:transfer_accounts_different,related_account_id IS NULL OR related_account_id != account_id"`
	Account          Account   `json:"-"`
	CategoryID       *uuid.UUID
	Category         TransactionCategory `json:"-"`
	RelatedAccountID *uuid.UUID
	RelatedAccount   Account `json:"-" gorm:"foreignKey:RelatedAccountID"`
	TransferType     *TransferType
}

// AfterFind updates the timestamps to use UTC as timezone.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - verifies the type specific invariants
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	// Ensure optional references are nil and not pointers to the nil UUID
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.RelatedAccountID != nil && *t.RelatedAccountID == uuid.Nil {
		t.RelatedAccountID = nil
	}

	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrTransactionAmountNotPositive, t.Amount)
	}

	switch t.Type {
	case TransactionIncome, TransactionExpense:
		if t.RelatedAccountID != nil || t.TransferType != nil {
			return ErrTransferFieldsForbidden
		}

	case TransactionTransfer:
		if t.RelatedAccountID == nil || t.TransferType == nil {
			return ErrTransferFieldsMissing
		}

		switch *t.TransferType {
		case TransferSaving, TransferInvesting, TransferMoving, TransferFunding:
		default:
			return fmt.Errorf("%w, got %q", ErrTransferTypeInvalid, *t.TransferType)
		}

	default:
		return fmt.Errorf("%w, got %q", ErrTransactionTypeInvalid, t.Type)
	}

	return nil
}
