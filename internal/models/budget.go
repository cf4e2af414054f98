package models

import (
	"errors"
	"fmt"

	"github.com/findash/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetAllocationRule assigns a percentage of the monthly income to a
// budget category for a specific month.
//
// The percentages for a month are not required to sum to 100. Callers
// surface the deviation, the backend does not reject it.
type BudgetAllocationRule struct {
	DefaultModel
	BudgetCategoryID uuid.UUID       `gorm:"uniqueIndex:rule_category_month"`
	BudgetCategory   BudgetCategory  `json:"-"`
	Month            types.Month     `gorm:"uniqueIndex:rule_category_month"`
	Percentage       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var ErrPercentageOutOfRange = errors.New("the percentage must be between 0 and 100")

func (r *BudgetAllocationRule) BeforeSave(_ *gorm.DB) error {
	if r.Percentage.IsNegative() || r.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w, got %s", ErrPercentageOutOfRange, r.Percentage)
	}

	return nil
}

// AllocationRulesForMonth returns all allocation rules for a month.
func AllocationRulesForMonth(db *gorm.DB, month types.Month) ([]BudgetAllocationRule, error) {
	var rules []BudgetAllocationRule

	err := db.Where(&BudgetAllocationRule{Month: month}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// SeedAllocationRules copies all allocation rules from one month into
// another and returns the rules of the target month afterwards.
//
// Seeding is a one-time materialization: inserting skips rules whose
// (category, month) pair already exists, so calling this twice for the
// same months does not create duplicate rows. Edits to the target month
// never affect the source month.
func SeedAllocationRules(db *gorm.DB, from, to types.Month) ([]BudgetAllocationRule, error) {
	source, err := AllocationRulesForMonth(db, from)
	if err != nil {
		return nil, err
	}

	for _, rule := range source {
		seeded := BudgetAllocationRule{
			BudgetCategoryID: rule.BudgetCategoryID,
			Month:            to,
			Percentage:       rule.Percentage,
		}

		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seeded).Error
		if err != nil {
			return nil, err
		}
	}

	return AllocationRulesForMonth(db, to)
}
