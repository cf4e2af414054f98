package aggregator

import (
	"fmt"
	"time"

	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownCategoryName is used for allocations whose budget category no
// longer exists. The rule is kept instead of being dropped.
const UnknownCategoryName = "Unknown"

// unknownCategoryColor is the display color for unresolved categories.
const unknownCategoryColor = "#9E9E9E"

// Allocation is the derived amount for one budget category in a month.
// It is only valid for the income and month it was computed for.
type Allocation struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the budget category
	Name       string          `json:"name" example:"Essentials"`                                 // Name of the budget category
	Color      string          `json:"color" example:"#4CAF50"`                                   // Display color of the budget category
	Percentage decimal.Decimal `json:"percentage" example:"50"`                                   // Percentage of the income allocated
	Amount     decimal.Decimal `json:"amount" example:"1200.50"`                                  // The allocated amount
}

// SeedFunc duplicates the allocation rules of one month into another and
// returns the rules of the target month. Implementations must be
// idempotent: a second call for the same target month must not create
// additional rules.
type SeedFunc func(from, to types.Month) ([]models.BudgetAllocationRule, error)

// period validates a (month, year) pair.
func period(month, year int) (types.Month, error) {
	if month < 1 || month > 12 {
		return types.Month{}, fmt.Errorf("%w, got %d", ErrInvalidPeriod, month)
	}

	return types.NewMonth(year, time.Month(month)), nil
}

// MonthlyIncome sums all income transactions dated within the month.
func MonthlyIncome(transactions []models.Transaction, month, year int) (decimal.Decimal, error) {
	target, err := period(month, year)
	if err != nil {
		return decimal.Zero, err
	}

	income := decimal.Zero
	for _, t := range transactions {
		if t.Type == models.TransactionIncome && target.Contains(t.Date) {
			income = income.Add(t.Amount)
		}
	}

	return income, nil
}

// ResolveAllocations derives the budget allocations for a month.
//
// When no rules exist for the month yet, seed is called with the
// previous month to materialize its rules as the starting point; if the
// previous month has no rules either, the result is empty. Rules whose
// category is missing from the catalog are kept with a sentinel name.
//
// Negative income is allowed and produces negative allocations. The
// percentages are not required to sum to 100, callers surface the
// deviation.
func ResolveAllocations(month, year int, income decimal.Decimal, rules []models.BudgetAllocationRule, categories []models.BudgetCategory, seed SeedFunc) ([]Allocation, error) {
	target, err := period(month, year)
	if err != nil {
		return nil, err
	}

	current := make([]models.BudgetAllocationRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Month.Equal(target) {
			current = append(current, rule)
		}
	}

	if len(current) == 0 && seed != nil {
		current, err = seed(target.Previous(), target)
		if err != nil {
			return nil, err
		}
	}

	catalog := make(map[uuid.UUID]models.BudgetCategory, len(categories))
	for _, category := range categories {
		catalog[category.ID] = category
	}

	allocations := make([]Allocation, 0, len(current))
	for _, rule := range current {
		allocation := Allocation{
			CategoryID: rule.BudgetCategoryID,
			Name:       UnknownCategoryName,
			Color:      unknownCategoryColor,
			Percentage: rule.Percentage,
			Amount:     income.Mul(rule.Percentage).DivRound(decimal.NewFromInt(100), 2),
		}

		if category, ok := catalog[rule.BudgetCategoryID]; ok {
			allocation.Name = category.Name
			allocation.Color = category.Color
		}

		allocations = append(allocations, allocation)
	}

	return allocations, nil
}

// PercentageSum returns the sum of all allocation percentages. Callers
// compare it against 100 to warn about unbalanced budgets.
func PercentageSum(allocations []Allocation) decimal.Decimal {
	sum := decimal.Zero
	for _, allocation := range allocations {
		sum = sum.Add(allocation.Percentage)
	}

	return sum
}
