package v1

import (
	"fmt"
	"time"

	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringExpenseEditable represents all user configurable parameters of a recurring expense
type RecurringExpenseEditable struct {
	Name            string                    `json:"name" example:"Music streaming" default:""`                 // Name of the recurring expense
	Kind            models.RecurringKind      `json:"kind" example:"subscription" default:"subscription"`        // Kind: subscription or expense
	Amount          decimal.Decimal           `json:"amount" example:"9.99" default:"0"`                         // The amount booked per period
	Frequency       models.RecurringFrequency `json:"frequency" example:"monthly" default:""`                    // Frequency: monthly or yearly
	StartDate       time.Time                 `json:"startDate" example:"2026-01-15T00:00:00Z"`                  // When the schedule started
	NextPaymentDate time.Time                 `json:"nextPaymentDate" example:"2026-09-15T00:00:00Z"`            // When the next booking is due
	Status          models.RecurringStatus    `json:"status" example:"active" default:"active"`                  // Status: active or paused
	AccountID       uuid.UUID                 `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // The account the expense is booked on
	CategoryID      *uuid.UUID                `json:"categoryId" example:"dd10c77a-d08e-4912-917e-3eff98b3a534"` // The transaction category for bookings, optional
}

func (editable RecurringExpenseEditable) model() models.RecurringExpense {
	return models.RecurringExpense{
		Name:            editable.Name,
		Kind:            editable.Kind,
		Amount:          editable.Amount,
		Frequency:       editable.Frequency,
		StartDate:       editable.StartDate,
		NextPaymentDate: editable.NextPaymentDate,
		Status:          editable.Status,
		AccountID:       editable.AccountID,
		CategoryID:      editable.CategoryID,
	}
}

type RecurringExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/recurring-expenses/c3e59427-6c02-4981-bd9b-ca7b0f6eb177"` // The recurring expense itself
}

// RecurringExpense is the API representation of a recurring expense.
type RecurringExpense struct {
	models.DefaultModel
	RecurringExpenseEditable
	Links RecurringExpenseLinks `json:"links"`

	// These fields are computed
	LastPaymentDate *time.Time      `json:"lastPaymentDate" example:"2026-08-15T00:00:00Z"` // When the expense was last booked
	TotalSpent      decimal.Decimal `json:"totalSpent" example:"79.92"`                     // Sum of all bookings so far
}

func newRecurringExpense(c *gin.Context, model models.RecurringExpense) RecurringExpense {
	url := c.GetString(string(models.DBContextURL))

	return RecurringExpense{
		DefaultModel: model.DefaultModel,
		RecurringExpenseEditable: RecurringExpenseEditable{
			Name:            model.Name,
			Kind:            model.Kind,
			Amount:          model.Amount,
			Frequency:       model.Frequency,
			StartDate:       model.StartDate,
			NextPaymentDate: model.NextPaymentDate,
			Status:          model.Status,
			AccountID:       model.AccountID,
			CategoryID:      model.CategoryID,
		},
		Links: RecurringExpenseLinks{
			Self: fmt.Sprintf("%s/v1/recurring-expenses/%s", url, model.ID),
		},
		LastPaymentDate: model.LastPaymentDate,
		TotalSpent:      model.TotalSpent,
	}
}

type RecurringExpenseListResponse struct {
	Data  []RecurringExpense `json:"data"`                                                          // List of recurring expenses
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecurringExpenseCreateResponse struct {
	Data  []RecurringExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *RecurringExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecurringExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecurringExpenseResponse struct {
	Data  *RecurringExpense `json:"data"`                                                          // Data for the recurring expense
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RecurringProcessResponse reports the transactions booked by a processing run.
type RecurringProcessResponse struct {
	Data  []Transaction `json:"data"`                                                          // Transactions booked by this run
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
