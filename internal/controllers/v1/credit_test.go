package v1_test

import (
	"net/http"

	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestCredit(editable v1.CreditEditable) v1.Credit {
	r := test.Request(suite.T(), http.MethodPost, "/v1/credits", []v1.CreditEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CreditCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().Nil(response.Data[0].Error)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestCreditDerivedFields() {
	credit := suite.createTestCredit(v1.CreditEditable{
		Name:         "Car loan",
		Amount:       decimal.NewFromInt(12000),
		InterestRate: decimal.NewFromFloat(4.5),
		Installments: 48,
	})

	suite.Assert().True(credit.TotalToRepay.Equal(decimal.NewFromInt(12540)), "total to repay is %s", credit.TotalToRepay)
	suite.Assert().True(credit.MonthlyPayment.Equal(decimal.NewFromFloat(261.25)), "monthly payment is %s", credit.MonthlyPayment)
	suite.Assert().True(credit.RemainingBalance.Equal(decimal.NewFromInt(12540)), "remaining balance is %s", credit.RemainingBalance)
}

func (suite *TestSuiteStandard) TestCreditPaymentsReduceBalance() {
	credit := suite.createTestCredit(v1.CreditEditable{
		Name:         "Phone",
		Amount:       decimal.NewFromInt(1200),
		Installments: 12,
	})

	r := test.Request(suite.T(), http.MethodPost, credit.Links.Payments, []v1.CreditPaymentEditable{{
		Amount: decimal.NewFromInt(100),
		Status: "paid",
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, credit.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.RemainingBalance.Equal(decimal.NewFromInt(1100)), "remaining balance is %s", response.Data.RemainingBalance)
}

func (suite *TestSuiteStandard) TestCreditDeleteRemovesPayments() {
	credit := suite.createTestCredit(v1.CreditEditable{
		Name:         "Doomed",
		Amount:       decimal.NewFromInt(500),
		Installments: 5,
	})

	r := test.Request(suite.T(), http.MethodPost, credit.Links.Payments, []v1.CreditPaymentEditable{{
		Amount: decimal.NewFromInt(100),
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodDelete, credit.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, credit.Links.Payments, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreditValidationErrors() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/credits", []v1.CreditEditable{{
		Name:         "Invalid",
		Installments: 10,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
