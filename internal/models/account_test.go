package models_test

import (
	"github.com/findash/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountBeforeSave() {
	account := suite.createTestAccount(models.Account{
		Name:         " Main account ",
		CurrencyCode: "eur",
	})

	suite.Assert().Equal("Main account", account.Name)
	suite.Assert().Equal("EUR", account.CurrencyCode)
	suite.Assert().Equal(models.AccountKindChecking, account.Kind)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "Unique account"})

	err := models.DB.Create(&models.Account{Name: "Unique account"}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestAccountTransactions() {
	account := suite.createTestAccount(models.Account{})
	other := suite.createTestAccount(models.Account{})
	uninvolved := suite.createTestAccount(models.Account{})

	_ = suite.createTestTransaction(models.Transaction{
		Type:      models.TransactionIncome,
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(100),
	})

	transferType := models.TransferSaving
	_ = suite.createTestTransaction(models.Transaction{
		Type:             models.TransactionTransfer,
		AccountID:        other.ID,
		RelatedAccountID: &account.ID,
		TransferType:     &transferType,
		Amount:           decimal.NewFromInt(25),
	})

	_ = suite.createTestTransaction(models.Transaction{
		Type:      models.TransactionExpense,
		AccountID: uninvolved.ID,
		Amount:    decimal.NewFromInt(5),
	})

	transactions, err := account.Transactions(models.DB)
	suite.Assert().NoError(err)

	// The transfer into the account counts as well
	suite.Assert().Len(transactions, 2)
}

func (suite *TestSuiteStandard) TestAccountGeneralError() {
	suite.CloseDB()

	err := models.DB.Create(&models.Account{Name: "No database"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
