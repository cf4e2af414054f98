package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/internal/types"
	"github.com/findash/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetRequiresMonth() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the month query parameter must be set", *response.Error)
}

func (suite *TestSuiteStandard) TestBudgetInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/budget?month=2026-13", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetAllocations() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Salary account"})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type:      "income",
		Amount:    decimal.NewFromInt(1000),
		Date:      time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		AccountID: account.ID,
	})

	// Income outside the month is ignored
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type:      "income",
		Amount:    decimal.NewFromInt(500),
		Date:      time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
		AccountID: account.ID,
	})

	essentials := suite.createTestBudgetCategory(v1.BudgetCategoryEditable{Name: "Essentials"})
	savings := suite.createTestBudgetCategory(v1.BudgetCategoryEditable{Name: "Savings"})

	august := types.NewMonth(2026, time.August)
	_ = suite.createTestAllocationRule(v1.AllocationRuleEditable{BudgetCategoryID: essentials.ID, Month: august, Percentage: decimal.NewFromInt(60)})
	_ = suite.createTestAllocationRule(v1.AllocationRuleEditable{BudgetCategoryID: savings.ID, Month: august, Percentage: decimal.NewFromInt(40)})

	r := test.Request(suite.T(), http.MethodGet, "/v1/budget?month=2026-08", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(1000)), "income is %s", response.Data.Income)
	suite.Assert().True(response.Data.Balanced)
	suite.Require().Len(response.Data.Allocations, 2)

	for _, allocation := range response.Data.Allocations {
		switch allocation.Name {
		case "Essentials":
			suite.Assert().True(allocation.Amount.Equal(decimal.NewFromInt(600)), "allocation is %s", allocation.Amount)
		case "Savings":
			suite.Assert().True(allocation.Amount.Equal(decimal.NewFromInt(400)), "allocation is %s", allocation.Amount)
		default:
			suite.Assert().Fail("unexpected allocation", allocation.Name)
		}
	}
}

func (suite *TestSuiteStandard) TestBudgetSeedsPreviousMonth() {
	category := suite.createTestBudgetCategory(v1.BudgetCategoryEditable{Name: "Everything"})

	july := types.NewMonth(2026, time.July)
	_ = suite.createTestAllocationRule(v1.AllocationRuleEditable{BudgetCategoryID: category.ID, Month: july, Percentage: decimal.NewFromInt(100)})

	// August has no rules, the July rules are carried over
	r := test.Request(suite.T(), http.MethodGet, "/v1/budget?month=2026-08", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.Allocations, 1)

	// The carry-over is persisted exactly once
	for i := 0; i < 3; i++ {
		r = test.Request(suite.T(), http.MethodGet, "/v1/budget?month=2026-08", nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	rules := test.Request(suite.T(), http.MethodGet, "/v1/allocation-rules?month=2026-08", nil)
	var ruleResponse v1.AllocationRuleListResponse
	test.DecodeResponse(suite.T(), &rules, &ruleResponse)
	suite.Assert().Len(ruleResponse.Data, 1)
}

func (suite *TestSuiteStandard) TestBudgetEmptyPreviousMonth() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/budget?month=2026-08", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Empty(response.Data.Allocations)
	suite.Assert().False(response.Data.Balanced)
}

func (suite *TestSuiteStandard) TestBudgetCategoryDeleteRemovesRules() {
	category := suite.createTestBudgetCategory(v1.BudgetCategoryEditable{Name: "Short lived"})

	august := types.NewMonth(2026, time.August)
	rule := suite.createTestAllocationRule(v1.AllocationRuleEditable{BudgetCategoryID: category.ID, Month: august, Percentage: decimal.NewFromInt(50)})

	r := test.Request(suite.T(), http.MethodDelete, suite.detailURL("budget-categories", category.ID.String()), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetNegativeIncomeMonth() {
	// A month can have zero income, allocations are then zero
	category := suite.createTestBudgetCategory(v1.BudgetCategoryEditable{Name: "Zero"})

	august := types.NewMonth(2026, time.August)
	_ = suite.createTestAllocationRule(v1.AllocationRuleEditable{BudgetCategoryID: category.ID, Month: august, Percentage: decimal.NewFromInt(50)})

	r := test.Request(suite.T(), http.MethodGet, "/v1/budget?month=2026-08", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data.Allocations, 1)
	suite.Assert().True(response.Data.Allocations[0].Amount.IsZero())
}
