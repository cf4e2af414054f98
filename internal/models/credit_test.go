package models_test

import (
	"github.com/findash/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreditValidation() {
	err := models.DB.Create(&models.Credit{
		Name:         "No amount",
		Installments: 12,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCreditAmountNotPositive)

	err = models.DB.Create(&models.Credit{
		Name:   "No installments",
		Amount: decimal.NewFromInt(1000),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCreditNoInstallments)
}

func (suite *TestSuiteStandard) TestCreditRepaymentMath() {
	credit := models.Credit{
		Name:         "Car loan",
		Amount:       decimal.NewFromInt(12000),
		InterestRate: decimal.NewFromFloat(4.5),
		Installments: 48,
	}

	err := models.DB.Create(&credit).Error
	suite.Assert().NoError(err)

	suite.Assert().True(credit.TotalToRepay().Equal(decimal.NewFromInt(12540)), "total to repay is %s", credit.TotalToRepay())
	suite.Assert().True(credit.MonthlyPayment().Equal(decimal.NewFromFloat(261.25)), "monthly payment is %s", credit.MonthlyPayment())
}

func (suite *TestSuiteStandard) TestCreditRemainingBalance() {
	credit := models.Credit{
		Name:         "Phone",
		Amount:       decimal.NewFromInt(1200),
		Installments: 12,
	}
	err := models.DB.Create(&credit).Error
	suite.Assert().NoError(err)

	err = models.DB.Create(&models.CreditPayment{
		CreditID: credit.ID,
		Amount:   decimal.NewFromInt(100),
		Status:   models.CreditPaymentPaid,
	}).Error
	suite.Assert().NoError(err)

	// Pending payments do not reduce the balance
	err = models.DB.Create(&models.CreditPayment{
		CreditID: credit.ID,
		Amount:   decimal.NewFromInt(100),
		Status:   models.CreditPaymentPending,
	}).Error
	suite.Assert().NoError(err)

	remaining, err := credit.RemainingBalance(models.DB)
	suite.Assert().NoError(err)
	suite.Assert().True(remaining.Equal(decimal.NewFromInt(1100)), "remaining balance is %s", remaining)
}

func (suite *TestSuiteStandard) TestCreditPaymentDefaults() {
	credit := models.Credit{
		Name:         "Couch",
		Amount:       decimal.NewFromInt(600),
		Installments: 6,
	}
	err := models.DB.Create(&credit).Error
	suite.Assert().NoError(err)

	payment := models.CreditPayment{
		CreditID: credit.ID,
		Amount:   decimal.NewFromInt(100),
	}
	err = models.DB.Create(&payment).Error
	suite.Assert().NoError(err)

	suite.Assert().Equal(models.CreditPaymentPending, payment.Status)
	suite.Assert().False(payment.PaymentDate.IsZero())
}
