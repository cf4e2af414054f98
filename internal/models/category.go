package models

import (
	"strings"

	"gorm.io/gorm"
)

// TransactionCategory is a named bucket that transactions can be sorted into.
type TransactionCategory struct {
	DefaultModel
	Name  string `gorm:"uniqueIndex"`
	Color string
}

func (c *TransactionCategory) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	return nil
}

// BudgetCategory is a named, colored bucket that a portion of the monthly
// income is allocated to.
type BudgetCategory struct {
	DefaultModel
	Name  string `gorm:"uniqueIndex"`
	Color string
}

func (c *BudgetCategory) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	return nil
}
