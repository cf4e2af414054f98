package v1

import (
	"fmt"

	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CurrencyEditable represents all user configurable parameters of a currency
type CurrencyEditable struct {
	Code   string `json:"code" example:"EUR" default:""`  // ISO 4217 code
	Symbol string `json:"symbol" example:"€" default:""` // Symbol used for display
}

func (editable CurrencyEditable) model() models.Currency {
	return models.Currency{
		Code:   editable.Code,
		Symbol: editable.Symbol,
	}
}

type CurrencyLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/currencies/5b95b58c-71b9-446c-8d6d-d611a698257c"` // The currency itself
}

// Currency is the API representation of a currency.
type Currency struct {
	models.DefaultModel
	CurrencyEditable
	Links CurrencyLinks `json:"links"`
}

func newCurrency(c *gin.Context, model models.Currency) Currency {
	url := c.GetString(string(models.DBContextURL))

	return Currency{
		DefaultModel: model.DefaultModel,
		CurrencyEditable: CurrencyEditable{
			Code:   model.Code,
			Symbol: model.Symbol,
		},
		Links: CurrencyLinks{
			Self: fmt.Sprintf("%s/v1/currencies/%s", url, model.ID),
		},
	}
}

type CurrencyListResponse struct {
	Data  []Currency `json:"data"`                                                          // List of currencies
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CurrencyCreateResponse struct {
	Data  []CurrencyResponse `json:"data"`                                                          // List of the created currencies or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CurrencyCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CurrencyResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CurrencyResponse struct {
	Data  *Currency `json:"data"`                                                          // Data for the currency
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
