package models_test

import (
	"time"

	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAllocationRulePercentageRange() {
	category := suite.createTestBudgetCategory(models.BudgetCategory{})

	err := models.DB.Create(&models.BudgetAllocationRule{
		BudgetCategoryID: category.ID,
		Month:            types.NewMonth(2026, time.March),
		Percentage:       decimal.NewFromInt(101),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrPercentageOutOfRange)

	err = models.DB.Create(&models.BudgetAllocationRule{
		BudgetCategoryID: category.ID,
		Month:            types.NewMonth(2026, time.March),
		Percentage:       decimal.NewFromInt(-1),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrPercentageOutOfRange)
}

func (suite *TestSuiteStandard) TestAllocationRuleUnique() {
	category := suite.createTestBudgetCategory(models.BudgetCategory{})
	month := types.NewMonth(2026, time.March)

	_ = suite.createTestAllocationRule(models.BudgetAllocationRule{
		BudgetCategoryID: category.ID,
		Month:            month,
		Percentage:       decimal.NewFromInt(50),
	})

	err := models.DB.Create(&models.BudgetAllocationRule{
		BudgetCategoryID: category.ID,
		Month:            month,
		Percentage:       decimal.NewFromInt(30),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrAllocationRuleNotUnique)
}

func (suite *TestSuiteStandard) TestAllocationRulesForMonth() {
	first := suite.createTestBudgetCategory(models.BudgetCategory{})
	second := suite.createTestBudgetCategory(models.BudgetCategory{})

	february := types.NewMonth(2026, time.February)
	march := types.NewMonth(2026, time.March)

	_ = suite.createTestAllocationRule(models.BudgetAllocationRule{BudgetCategoryID: first.ID, Month: february, Percentage: decimal.NewFromInt(60)})
	_ = suite.createTestAllocationRule(models.BudgetAllocationRule{BudgetCategoryID: second.ID, Month: february, Percentage: decimal.NewFromInt(40)})
	_ = suite.createTestAllocationRule(models.BudgetAllocationRule{BudgetCategoryID: first.ID, Month: march, Percentage: decimal.NewFromInt(100)})

	rules, err := models.AllocationRulesForMonth(models.DB, february)
	suite.Assert().NoError(err)
	suite.Assert().Len(rules, 2)
}

func (suite *TestSuiteStandard) TestSeedAllocationRules() {
	first := suite.createTestBudgetCategory(models.BudgetCategory{})
	second := suite.createTestBudgetCategory(models.BudgetCategory{})

	february := types.NewMonth(2026, time.February)
	march := types.NewMonth(2026, time.March)

	_ = suite.createTestAllocationRule(models.BudgetAllocationRule{BudgetCategoryID: first.ID, Month: february, Percentage: decimal.NewFromInt(60)})
	_ = suite.createTestAllocationRule(models.BudgetAllocationRule{BudgetCategoryID: second.ID, Month: february, Percentage: decimal.NewFromInt(40)})

	seeded, err := models.SeedAllocationRules(models.DB, february, march)
	suite.Assert().NoError(err)
	suite.Assert().Len(seeded, 2)

	// Editing March must not touch February
	err = models.DB.Model(&seeded[0]).Update("percentage", decimal.NewFromInt(10)).Error
	suite.Assert().NoError(err)

	februaryRules, err := models.AllocationRulesForMonth(models.DB, february)
	suite.Assert().NoError(err)
	for _, rule := range februaryRules {
		suite.Assert().True(rule.Percentage.GreaterThanOrEqual(decimal.NewFromInt(40)))
	}
}

func (suite *TestSuiteStandard) TestSeedAllocationRulesIdempotent() {
	category := suite.createTestBudgetCategory(models.BudgetCategory{})

	february := types.NewMonth(2026, time.February)
	march := types.NewMonth(2026, time.March)

	_ = suite.createTestAllocationRule(models.BudgetAllocationRule{BudgetCategoryID: category.ID, Month: february, Percentage: decimal.NewFromInt(100)})

	first, err := models.SeedAllocationRules(models.DB, february, march)
	suite.Assert().NoError(err)
	suite.Assert().Len(first, 1)

	second, err := models.SeedAllocationRules(models.DB, february, march)
	suite.Assert().NoError(err)
	suite.Assert().Len(second, 1)
	suite.Assert().Equal(first[0].ID, second[0].ID)
}

func (suite *TestSuiteStandard) TestSeedAllocationRulesEmptySource() {
	seeded, err := models.SeedAllocationRules(models.DB, types.NewMonth(2026, time.January), types.NewMonth(2026, time.February))
	suite.Assert().NoError(err)
	suite.Assert().Empty(seeded)
}
