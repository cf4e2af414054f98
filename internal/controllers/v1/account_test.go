package v1_test

import (
	"net/http"

	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountsEmptyList() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestAccountBalanceDerived() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:           "Main",
		InitialBalance: decimal.NewFromInt(100),
		CurrencyCode:   "EUR",
	})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type:      "income",
		Amount:    decimal.NewFromInt(50),
		AccountID: account.ID,
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type:      "expense",
		Amount:    decimal.NewFromInt(30),
		AccountID: account.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, account.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(120)), "balance is %s", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestAccountTransferBalances() {
	source := suite.createTestAccount(v1.AccountEditable{Name: "Checking", InitialBalance: decimal.NewFromInt(500)})
	destination := suite.createTestAccount(v1.AccountEditable{Name: "Savings"})

	transferType := models.TransferSaving
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type:             models.TransactionTransfer,
		Amount:           decimal.NewFromInt(200),
		AccountID:        source.ID,
		RelatedAccountID: &destination.ID,
		TransferType:     &transferType,
	})

	r := test.Request(suite.T(), http.MethodGet, source.Links.Self, nil)
	var sourceResponse v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &sourceResponse)
	suite.Assert().True(sourceResponse.Data.Balance.Equal(decimal.NewFromInt(300)), "source balance is %s", sourceResponse.Data.Balance)

	r = test.Request(suite.T(), http.MethodGet, destination.Links.Self, nil)
	var destinationResponse v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &destinationResponse)
	suite.Assert().True(destinationResponse.Data.Balance.Equal(decimal.NewFromInt(200)), "destination balance is %s", destinationResponse.Data.Balance)
}

func (suite *TestSuiteStandard) TestAccountInitialBalanceImmutable() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:           "Immutable",
		InitialBalance: decimal.NewFromInt(100),
	})

	r := test.Request(suite.T(), http.MethodPatch, account.Links.Self, map[string]any{
		"name":           "Renamed",
		"initialBalance": 9999,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Renamed", response.Data.Name)
	suite.Assert().True(response.Data.InitialBalance.Equal(decimal.NewFromInt(100)), "initial balance is %s", response.Data.InitialBalance)
}

func (suite *TestSuiteStandard) TestAccountNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/accounts/bb9c9ed1-e90e-4b12-a2c7-1b0b91871071", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountInvalidUUID() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/accounts/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Doomed"})

	r := test.Request(suite.T(), http.MethodDelete, account.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, account.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountDuplicateName() {
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Twice"})

	r := test.Request(suite.T(), http.MethodPost, "/v1/accounts", []v1.AccountEditable{{Name: "Twice"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
