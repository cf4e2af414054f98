package models_test

import (
	"github.com/findash/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCategoryForNote() {
	groceries := suite.createTestTransactionCategory(models.TransactionCategory{Name: "Groceries"})
	shopping := suite.createTestTransactionCategory(models.TransactionCategory{Name: "Shopping"})

	err := models.DB.Create(&models.MatchRule{
		Priority:   1,
		Match:      "REWE*",
		CategoryID: groceries.ID,
	}).Error
	suite.Assert().NoError(err)

	err = models.DB.Create(&models.MatchRule{
		Priority:   2,
		Match:      "*",
		CategoryID: shopping.ID,
	}).Error
	suite.Assert().NoError(err)

	categoryID, matched, err := models.CategoryForNote(models.DB, "REWE Grocery Run")
	suite.Assert().NoError(err)
	suite.Assert().True(matched)
	suite.Assert().Equal(groceries.ID, categoryID)

	// Lower priority catch-all matches everything else
	categoryID, matched, err = models.CategoryForNote(models.DB, "New shoes")
	suite.Assert().NoError(err)
	suite.Assert().True(matched)
	suite.Assert().Equal(shopping.ID, categoryID)
}

func (suite *TestSuiteStandard) TestCategoryForNoteNoMatch() {
	category := suite.createTestTransactionCategory(models.TransactionCategory{})

	err := models.DB.Create(&models.MatchRule{
		Priority:   1,
		Match:      "EDEKA*",
		CategoryID: category.ID,
	}).Error
	suite.Assert().NoError(err)

	categoryID, matched, err := models.CategoryForNote(models.DB, "Unrelated")
	suite.Assert().NoError(err)
	suite.Assert().False(matched)
	suite.Assert().Equal(uuid.Nil, categoryID)
}
