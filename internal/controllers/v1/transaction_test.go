package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionMatchRuleCategorization() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})
	groceries := suite.createTestTransactionCategory(v1.TransactionCategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", []v1.MatchRuleEditable{{
		Priority:   1,
		Match:      "REWE*",
		CategoryID: groceries.ID,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Type:      "expense",
		Amount:    decimal.NewFromFloat(23.42),
		Note:      "REWE City",
		AccountID: account.ID,
	})

	suite.Require().NotNil(transaction.CategoryID)
	suite.Assert().Equal(groceries.ID, *transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionExplicitCategoryWins() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})
	groceries := suite.createTestTransactionCategory(v1.TransactionCategoryEditable{Name: "Groceries"})
	eatingOut := suite.createTestTransactionCategory(v1.TransactionCategoryEditable{Name: "Eating out"})

	r := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", []v1.MatchRuleEditable{{
		Priority:   1,
		Match:      "REWE*",
		CategoryID: groceries.ID,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Type:       "expense",
		Amount:     decimal.NewFromFloat(12.80),
		Note:       "REWE To Go",
		AccountID:  account.ID,
		CategoryID: &eatingOut.ID,
	})

	suite.Require().NotNil(transaction.CategoryID)
	suite.Assert().Equal(eatingOut.ID, *transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionMonthFilter() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type:      "expense",
		Amount:    decimal.NewFromInt(10),
		Date:      time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		AccountID: account.ID,
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type:      "expense",
		Amount:    decimal.NewFromInt(20),
		Date:      time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
		AccountID: account.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2026-08", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestTransactionAccountFilterIncludesTransfers() {
	source := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})
	destination := suite.createTestAccount(v1.AccountEditable{Name: "Savings"})

	transferType := models.TransferSaving
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type:             models.TransactionTransfer,
		Amount:           decimal.NewFromInt(50),
		AccountID:        source.ID,
		RelatedAccountID: &destination.ID,
		TransferType:     &transferType,
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/transactions?account="+destination.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestTransactionInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/transactions", `{ invalid json `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionNegativeAmountRejected() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})

	r := test.Request(suite.T(), http.MethodPost, "/v1/transactions", []v1.TransactionEditable{{
		Type:      "expense",
		Amount:    decimal.NewFromInt(-5),
		AccountID: account.ID,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
