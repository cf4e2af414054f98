package models_test

import (
	"time"

	"github.com/findash/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRecurringExpenseDefaults() {
	account := suite.createTestAccount(models.Account{})

	expense := models.RecurringExpense{
		Name:      "Music streaming",
		Amount:    decimal.NewFromFloat(9.99),
		Frequency: models.FrequencyMonthly,
		StartDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		AccountID: account.ID,
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().NoError(err)

	suite.Assert().Equal(models.RecurringSubscription, expense.Kind)
	suite.Assert().Equal(models.RecurringActive, expense.Status)
	suite.Assert().Equal(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), expense.NextPaymentDate)
}

func (suite *TestSuiteStandard) TestRecurringExpenseFrequencyInvalid() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.RecurringExpense{
		Name:      "Invalid",
		Amount:    decimal.NewFromInt(10),
		Frequency: "weekly",
		AccountID: account.ID,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrRecurringFrequencyInvalid)
}

func (suite *TestSuiteStandard) TestRecurringExpenseAdvance() {
	expense := models.RecurringExpense{
		Frequency:       models.FrequencyYearly,
		NextPaymentDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	expense.Advance()
	suite.Assert().Equal(time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), expense.NextPaymentDate)
}
