package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestRecurringExpense(editable v1.RecurringExpenseEditable) v1.RecurringExpense {
	r := test.Request(suite.T(), http.MethodPost, "/v1/recurring-expenses", []v1.RecurringExpenseEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.RecurringExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().Nil(response.Data[0].Error)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestRecurringExpenseProcess() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})

	expense := suite.createTestRecurringExpense(v1.RecurringExpenseEditable{
		Name:            "Music streaming",
		Amount:          decimal.NewFromFloat(9.99),
		Frequency:       "monthly",
		NextPaymentDate: time.Now().In(time.UTC).AddDate(0, 0, -1),
		AccountID:       account.ID,
	})

	r := test.Request(suite.T(), http.MethodPost, "/v1/recurring-expenses/process", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.RecurringProcessResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(expense.Name, response.Data[0].Note)

	// The booking shows up in the transaction list
	r = test.Request(suite.T(), http.MethodGet, "/v1/transactions", nil)
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Assert().Len(transactions.Data, 1)
}

func (suite *TestSuiteStandard) TestRecurringExpenseUnknownAccountRejected() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/recurring-expenses", []v1.RecurringExpenseEditable{{
		Name:      "Orphan",
		Amount:    decimal.NewFromInt(10),
		Frequency: "monthly",
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRecurringExpenseStatusFilter() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})

	_ = suite.createTestRecurringExpense(v1.RecurringExpenseEditable{
		Name:      "Active",
		Amount:    decimal.NewFromInt(10),
		Frequency: "monthly",
		AccountID: account.ID,
	})
	_ = suite.createTestRecurringExpense(v1.RecurringExpenseEditable{
		Name:      "Paused",
		Amount:    decimal.NewFromInt(10),
		Frequency: "monthly",
		Status:    "paused",
		AccountID: account.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/recurring-expenses?status=active", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Active", response.Data[0].Name)
}
