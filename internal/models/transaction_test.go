package models_test

import (
	"time"

	"github.com/findash/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionAmountMustBePositive() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.Transaction{
		Type:      models.TransactionExpense,
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(-10),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.Transaction{
		Type:      "donation",
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(10),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransferFieldsRequired() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.Transaction{
		Type:      models.TransactionTransfer,
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(10),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransferFieldsMissing)
}

func (suite *TestSuiteStandard) TestTransferFieldsForbiddenForExpense() {
	account := suite.createTestAccount(models.Account{})
	other := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.Transaction{
		Type:             models.TransactionExpense,
		AccountID:        account.ID,
		RelatedAccountID: &other.ID,
		Amount:           decimal.NewFromInt(10),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransferFieldsForbidden)
}

func (suite *TestSuiteStandard) TestTransferTypeInvalid() {
	account := suite.createTestAccount(models.Account{})
	other := suite.createTestAccount(models.Account{})

	transferType := models.TransferType("gifting")
	err := models.DB.Create(&models.Transaction{
		Type:             models.TransactionTransfer,
		AccountID:        account.ID,
		RelatedAccountID: &other.ID,
		TransferType:     &transferType,
		Amount:           decimal.NewFromInt(10),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransferTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransferSameAccountRejected() {
	account := suite.createTestAccount(models.Account{})

	transferType := models.TransferMoving
	err := models.DB.Create(&models.Transaction{
		Type:             models.TransactionTransfer,
		AccountID:        account.ID,
		RelatedAccountID: &account.ID,
		TransferType:     &transferType,
		Amount:           decimal.NewFromInt(10),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransferAccountsEqual)
}

func (suite *TestSuiteStandard) TestTransactionNilUUIDNormalized() {
	account := suite.createTestAccount(models.Account{})

	nilID := uuid.Nil
	transaction := suite.createTestTransaction(models.Transaction{
		Type:       models.TransactionExpense,
		AccountID:  account.ID,
		CategoryID: &nilID,
		Amount:     decimal.NewFromInt(10),
	})

	suite.Assert().Nil(transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	account := suite.createTestAccount(models.Account{})

	transaction := suite.createTestTransaction(models.Transaction{
		Type:      models.TransactionExpense,
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(10),
	})

	suite.Assert().False(transaction.Date.IsZero())
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionNotFoundError() {
	var transaction models.Transaction
	err := models.DB.First(&transaction, uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
