package v1

import (
	"net/http"

	"github.com/findash/backend/internal/aggregator"
	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for the monthly budget with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", GetBudget)
}

// Budget is the derived budget for one month.
type Budget struct {
	Month         types.Month             `json:"month" example:"2026-08-01T00:00:00Z"` // The month the budget was computed for
	Income        decimal.Decimal         `json:"income" example:"2317.34"`             // Total income of the month
	Allocations   []aggregator.Allocation `json:"allocations"`                          // Allocated amounts per budget category
	PercentageSum decimal.Decimal         `json:"percentageSum" example:"100"`          // Sum of all allocation percentages
	Balanced      bool                    `json:"balanced" example:"true"`              // True when the percentages sum to exactly 100
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                              // The computed budget
	Error *string `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget
// @Description	Computes the budget allocations for a month. When no allocation rules exist for the month, the rules of the previous month are carried over once.
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
// @Param			month	query	string	true	"The month to compute the budget for. Format: YYYY-MM"
func GetBudget(c *gin.Context) {
	var query QueryMonth

	err := c.Bind(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	if query.Month.IsZero() {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(query.Month)

	// Only income transactions of the month contribute to the budget
	var transactions []models.Transaction
	err = models.DB.
		Where(&models.Transaction{Type: models.TransactionIncome}).
		Where("date >= ? AND date < ?", query.Month, query.Month.AddDate(0, 1, 0)).
		Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	income, err := aggregator.MonthlyIncome(transactions, int(month.Month()), month.Year())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	rules, err := models.AllocationRulesForMonth(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var categories []models.BudgetCategory
	err = models.DB.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	seed := func(from, to types.Month) ([]models.BudgetAllocationRule, error) {
		return models.SeedAllocationRules(models.DB, from, to)
	}

	allocations, err := aggregator.ResolveAllocations(int(month.Month()), month.Year(), income, rules, categories, seed)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	percentageSum := aggregator.PercentageSum(allocations)

	c.JSON(http.StatusOK, BudgetResponse{
		Data: &Budget{
			Month:         month,
			Income:        income,
			Allocations:   allocations,
			PercentageSum: percentageSum,
			Balanced:      percentageSum.Equal(decimal.NewFromInt(100)),
		},
	})
}
