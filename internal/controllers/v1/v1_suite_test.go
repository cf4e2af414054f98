package v1_test

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"

	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/test"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
}

// Pseudo-Test run by go test that runs the test suite.
func TestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	os.Setenv("LOG_FORMAT", "human")
	os.Setenv("GIN_MODE", "debug")
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	err := models.Connect(test.TmpFile(suite.T()))
	if err != nil {
		log.Fatalf("Database connection failed with: %#v", err)
	}
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	sqlDB, _ := models.DB.DB()
	sqlDB.Close()
}

func (suite *TestSuiteStandard) createTestAccount(editable v1.AccountEditable) v1.Account {
	r := test.Request(suite.T(), http.MethodPost, "/v1/accounts", []v1.AccountEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().Nil(response.Data[0].Error)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) createTestTransaction(editable v1.TransactionEditable) v1.Transaction {
	r := test.Request(suite.T(), http.MethodPost, "/v1/transactions", []v1.TransactionEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().Nil(response.Data[0].Error)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) createTestTransactionCategory(editable v1.TransactionCategoryEditable) v1.TransactionCategory {
	r := test.Request(suite.T(), http.MethodPost, "/v1/transaction-categories", []v1.TransactionCategoryEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionCategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().Nil(response.Data[0].Error)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) createTestBudgetCategory(editable v1.BudgetCategoryEditable) v1.BudgetCategory {
	r := test.Request(suite.T(), http.MethodPost, "/v1/budget-categories", []v1.BudgetCategoryEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BudgetCategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().Nil(response.Data[0].Error)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) createTestAllocationRule(editable v1.AllocationRuleEditable) v1.AllocationRule {
	r := test.Request(suite.T(), http.MethodPost, "/v1/allocation-rules", []v1.AllocationRuleEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.AllocationRuleCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().Nil(response.Data[0].Error)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) detailURL(resource, id string) string {
	return fmt.Sprintf("/v1/%s/%s", resource, id)
}
