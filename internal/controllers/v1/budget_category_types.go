package v1

import (
	"fmt"

	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// BudgetCategoryEditable represents all user configurable parameters of a budget category
type BudgetCategoryEditable struct {
	Name  string `json:"name" example:"Savings" default:""`  // Name of the category
	Color string `json:"color" example:"#2196F3" default:""` // Display color
}

func (editable BudgetCategoryEditable) model() models.BudgetCategory {
	return models.BudgetCategory{
		Name:  editable.Name,
		Color: editable.Color,
	}
}

type BudgetCategoryLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/budget-categories/a6c127a9-82b8-4b33-9f8c-9b3bba57c4c5"`        // The category itself
	AllocationRules string `json:"allocationRules" example:"https://example.com/api/v1/allocation-rules?category=a6c127a9-82b8-4b33-9f8c"` // Allocation rules for this category
}

// BudgetCategory is the API representation of a budget category.
type BudgetCategory struct {
	models.DefaultModel
	BudgetCategoryEditable
	Links BudgetCategoryLinks `json:"links"`
}

func newBudgetCategory(c *gin.Context, model models.BudgetCategory) BudgetCategory {
	url := c.GetString(string(models.DBContextURL))

	return BudgetCategory{
		DefaultModel: model.DefaultModel,
		BudgetCategoryEditable: BudgetCategoryEditable{
			Name:  model.Name,
			Color: model.Color,
		},
		Links: BudgetCategoryLinks{
			Self:            fmt.Sprintf("%s/v1/budget-categories/%s", url, model.ID),
			AllocationRules: fmt.Sprintf("%s/v1/allocation-rules?category=%s", url, model.ID),
		},
	}
}

type BudgetCategoryListResponse struct {
	Data  []BudgetCategory `json:"data"`                                                          // List of budget categories
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCategoryCreateResponse struct {
	Data  []BudgetCategoryResponse `json:"data"`                                                          // List of the created categories or their respective error
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BudgetCategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetCategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetCategoryResponse struct {
	Data  *BudgetCategory `json:"data"`                                                          // Data for the category
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCategoryQueryFilter struct {
	Name string `form:"name"` // By name, fuzzy
}
