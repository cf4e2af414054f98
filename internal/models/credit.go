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

// CreditPaymentStatus describes whether a credit payment has been made.
type CreditPaymentStatus string

const (
	CreditPaymentPaid    CreditPaymentStatus = "paid"
	CreditPaymentPending CreditPaymentStatus = "pending"
)

// Credit represents a loan that is repaid in monthly installments.
type Credit struct {
	DefaultModel
	Name            string
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The borrowed amount
	InterestRate    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Interest in percent over the full term
	Installments    uint
	NextPaymentDate *time.Time
	AccountID       *uuid.UUID
	Account         Account `json:"-"`
	CategoryID      *uuid.UUID
}

var (
	ErrCreditAmountNotPositive = errors.New("the credit amount must be positive")
	ErrCreditNoInstallments    = errors.New("a credit needs at least one installment")
)

func (c *Credit) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if !c.Amount.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrCreditAmountNotPositive, c.Amount)
	}

	if c.Installments == 0 {
		return ErrCreditNoInstallments
	}

	return nil
}

// TotalToRepay is the borrowed amount plus interest over the full term.
func (c Credit) TotalToRepay() decimal.Decimal {
	interest := c.Amount.Mul(c.InterestRate).Div(decimal.NewFromInt(100))
	return c.Amount.Add(interest)
}

// MonthlyPayment is the amount due per installment.
func (c Credit) MonthlyPayment() decimal.Decimal {
	return c.TotalToRepay().DivRound(decimal.NewFromInt(int64(c.Installments)), 2)
}

// RemainingBalance is the total to repay minus all paid payments.
func (c Credit) RemainingBalance(db *gorm.DB) (decimal.Decimal, error) {
	var paid decimal.NullDecimal

	err := db.Model(&CreditPayment{}).
		Where(&CreditPayment{CreditID: c.ID, Status: CreditPaymentPaid}).
		Select("SUM(amount)").
		Scan(&paid).Error
	if err != nil {
		return decimal.Zero, err
	}

	return c.TotalToRepay().Sub(paid.Decimal), nil
}

// CreditPayment is a single installment payment for a credit.
type CreditPayment struct {
	DefaultModel
	CreditID    uuid.UUID
	Credit      Credit          `json:"-"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaymentDate time.Time
	Status      CreditPaymentStatus
}

func (p *CreditPayment) BeforeSave(_ *gorm.DB) error {
	if p.Status == "" {
		p.Status = CreditPaymentPending
	}

	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now().In(time.UTC)
	} else {
		p.PaymentDate = p.PaymentDate.In(time.UTC)
	}

	return nil
}
