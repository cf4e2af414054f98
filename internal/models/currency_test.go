package models_test

import (
	"github.com/findash/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCurrencyCodeNormalized() {
	currency := models.Currency{Code: " usd ", Symbol: "$"}

	err := models.DB.Create(&currency).Error
	suite.Assert().NoError(err)
	suite.Assert().Equal("USD", currency.Code)
}

func (suite *TestSuiteStandard) TestCurrencyCodeInvalid() {
	err := models.DB.Create(&models.Currency{Code: "EURO"}).Error
	suite.Assert().ErrorIs(err, models.ErrCurrencyCodeInvalid)
}

func (suite *TestSuiteStandard) TestCurrencyCodeUnique() {
	err := models.DB.Create(&models.Currency{Code: "EUR", Symbol: "€"}).Error
	suite.Assert().NoError(err)

	err = models.DB.Create(&models.Currency{Code: "EUR"}).Error
	suite.Assert().ErrorIs(err, models.ErrCurrencyCodeNotUnique)
}
