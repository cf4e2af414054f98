package v1

import (
	"fmt"

	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// TransactionCategoryEditable represents all user configurable parameters of a transaction category
type TransactionCategoryEditable struct {
	Name  string `json:"name" example:"Groceries" default:""` // Name of the category
	Color string `json:"color" example:"#4CAF50" default:""`  // Display color
}

func (editable TransactionCategoryEditable) model() models.TransactionCategory {
	return models.TransactionCategory{
		Name:  editable.Name,
		Color: editable.Color,
	}
}

type TransactionCategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/transaction-categories/dd10c77a-d08e-4912-917e-3eff98b3a534"` // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=dd10c77a-d08e-4912-917e"`       // Transactions in this category
}

// TransactionCategory is the API representation of a transaction category.
type TransactionCategory struct {
	models.DefaultModel
	TransactionCategoryEditable
	Links TransactionCategoryLinks `json:"links"`
}

func newTransactionCategory(c *gin.Context, model models.TransactionCategory) TransactionCategory {
	url := c.GetString(string(models.DBContextURL))

	return TransactionCategory{
		DefaultModel: model.DefaultModel,
		TransactionCategoryEditable: TransactionCategoryEditable{
			Name:  model.Name,
			Color: model.Color,
		},
		Links: TransactionCategoryLinks{
			Self:         fmt.Sprintf("%s/v1/transaction-categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type TransactionCategoryListResponse struct {
	Data  []TransactionCategory `json:"data"`                                                          // List of transaction categories
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCategoryCreateResponse struct {
	Data  []TransactionCategoryResponse `json:"data"`                                                          // List of the created categories or their respective error
	Error *string                       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *TransactionCategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionCategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionCategoryResponse struct {
	Data  *TransactionCategory `json:"data"`                                                          // Data for the category
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCategoryQueryFilter struct {
	Name string `form:"name"` // By name, fuzzy
}
