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

// RecurringKind describes what a recurring expense pays for.
type RecurringKind string

const (
	RecurringSubscription RecurringKind = "subscription"
	RecurringExpenseKind  RecurringKind = "expense"
)

// RecurringFrequency is how often a recurring expense is due.
type RecurringFrequency string

const (
	FrequencyMonthly RecurringFrequency = "monthly"
	FrequencyYearly  RecurringFrequency = "yearly"
)

// RecurringStatus describes whether a recurring expense is still booked.
type RecurringStatus string

const (
	RecurringActive RecurringStatus = "active"
	RecurringPaused RecurringStatus = "paused"
)

var ErrRecurringFrequencyInvalid = errors.New("the frequency must be monthly or yearly")

// RecurringExpense is an expense that is booked automatically on a
// monthly or yearly schedule, e.g. a subscription.
type RecurringExpense struct {
	DefaultModel
	Name            string
	Kind            RecurringKind
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Frequency       RecurringFrequency
	StartDate       time.Time
	NextPaymentDate time.Time
	LastPaymentDate *time.Time
	TotalSpent      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status          RecurringStatus
	AccountID       uuid.UUID
	Account         Account `json:"-"`
	CategoryID      *uuid.UUID
}

// BeforeSave validates the schedule and defaults the next payment date
// to one period after the start date.
func (e *RecurringExpense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)

	if e.Kind == "" {
		e.Kind = RecurringSubscription
	}

	if e.Status == "" {
		e.Status = RecurringActive
	}

	switch e.Frequency {
	case FrequencyMonthly, FrequencyYearly:
	default:
		return fmt.Errorf("%w, got %q", ErrRecurringFrequencyInvalid, e.Frequency)
	}

	if e.StartDate.IsZero() {
		e.StartDate = time.Now().In(time.UTC)
	}

	if e.NextPaymentDate.IsZero() {
		e.NextPaymentDate = e.advance(e.StartDate)
	}

	return nil
}

// Advance moves the next payment date one period forward.
func (e *RecurringExpense) Advance() {
	e.NextPaymentDate = e.advance(e.NextPaymentDate)
}

func (e RecurringExpense) advance(from time.Time) time.Time {
	if e.Frequency == FrequencyYearly {
		return from.AddDate(1, 0, 0)
	}

	return from.AddDate(0, 1, 0)
}
