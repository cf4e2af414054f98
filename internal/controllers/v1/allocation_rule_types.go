package v1

import (
	"fmt"
	"time"

	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/types"
	findash_uuid "github.com/findash/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationRuleEditable represents all user configurable parameters of an allocation rule
type AllocationRuleEditable struct {
	BudgetCategoryID uuid.UUID       `json:"budgetCategoryId" example:"a6c127a9-82b8-4b33-9f8c-9b3bba57c4c5"` // ID of the budget category the percentage is allocated to
	Month            types.Month     `json:"month" example:"2026-08-01T00:00:00Z"`                            // The month the rule applies to
	Percentage       decimal.Decimal `json:"percentage" example:"25" minimum:"0" maximum:"100"`               // Percentage of the monthly income
}

func (editable AllocationRuleEditable) model() models.BudgetAllocationRule {
	return models.BudgetAllocationRule{
		BudgetCategoryID: editable.BudgetCategoryID,
		Month:            editable.Month,
		Percentage:       editable.Percentage,
	}
}

type AllocationRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/allocation-rules/8d4d0bdf-3b6d-4532-b906-4c6b03b77f17"` // The allocation rule itself
}

// AllocationRule is the API representation of an allocation rule.
type AllocationRule struct {
	models.DefaultModel
	AllocationRuleEditable
	Links AllocationRuleLinks `json:"links"`
}

func newAllocationRule(c *gin.Context, model models.BudgetAllocationRule) AllocationRule {
	url := c.GetString(string(models.DBContextURL))

	return AllocationRule{
		DefaultModel: model.DefaultModel,
		AllocationRuleEditable: AllocationRuleEditable{
			BudgetCategoryID: model.BudgetCategoryID,
			Month:            model.Month,
			Percentage:       model.Percentage,
		},
		Links: AllocationRuleLinks{
			Self: fmt.Sprintf("%s/v1/allocation-rules/%s", url, model.ID),
		},
	}
}

type AllocationRuleListResponse struct {
	Data  []AllocationRule `json:"data"`                                                          // List of allocation rules
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationRuleCreateResponse struct {
	Data  []AllocationRuleResponse `json:"data"`                                                          // List of the created rules or their respective error
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *AllocationRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, AllocationRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationRuleResponse struct {
	Data  *AllocationRule `json:"data"`                                                          // Data for the allocation rule
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationRuleQueryFilter struct {
	Category findash_uuid.UUID `form:"category"`                                 // Filter by budget category
	Month    time.Time         `form:"month" time_format:"2006-01" time_utc:"1"` // Only rules for this month, YYYY-MM
}
