package v1

import (
	"fmt"
	"time"

	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditEditable represents all user configurable parameters of a credit
type CreditEditable struct {
	Name            string          `json:"name" example:"Car loan" default:""`                        // Name of the credit
	Amount          decimal.Decimal `json:"amount" example:"12000" default:"0"`                        // The borrowed amount
	InterestRate    decimal.Decimal `json:"interestRate" example:"4.5" default:"0"`                    // Interest in percent over the full term
	Installments    uint            `json:"installments" example:"48" default:"0"`                     // Number of monthly installments
	NextPaymentDate *time.Time      `json:"nextPaymentDate" example:"2026-09-01T00:00:00Z"`            // When the next installment is due
	AccountID       *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // The account installments are paid from, optional
	CategoryID      *uuid.UUID      `json:"categoryId" example:"dd10c77a-d08e-4912-917e-3eff98b3a534"` // The transaction category for installments, optional
}

func (editable CreditEditable) model() models.Credit {
	return models.Credit{
		Name:            editable.Name,
		Amount:          editable.Amount,
		InterestRate:    editable.InterestRate,
		Installments:    editable.Installments,
		NextPaymentDate: editable.NextPaymentDate,
		AccountID:       editable.AccountID,
		CategoryID:      editable.CategoryID,
	}
}

type CreditLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/credits/12b2403a-4863-4d88-9a11-d6423b4e7a12"`          // The credit itself
	Payments string `json:"payments" example:"https://example.com/api/v1/credits/12b2403a-4863-4d88-9a11-d6423b4e7a12/payments"` // Payments for this credit
}

// Credit is the API representation of a credit.
type Credit struct {
	models.DefaultModel
	CreditEditable
	Links CreditLinks `json:"links"`

	// These fields are computed
	TotalToRepay     decimal.Decimal `json:"totalToRepay" example:"12540.00"`    // Borrowed amount plus interest
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment" example:"261.25"`    // Amount due per installment
	RemainingBalance decimal.Decimal `json:"remainingBalance" example:"8430.17"` // Total to repay minus all paid payments
}

func newCredit(c *gin.Context, db *gorm.DB, model models.Credit) (Credit, error) {
	url := c.GetString(string(models.DBContextURL))

	credit := Credit{
		DefaultModel: model.DefaultModel,
		CreditEditable: CreditEditable{
			Name:            model.Name,
			Amount:          model.Amount,
			InterestRate:    model.InterestRate,
			Installments:    model.Installments,
			NextPaymentDate: model.NextPaymentDate,
			AccountID:       model.AccountID,
			CategoryID:      model.CategoryID,
		},
		Links: CreditLinks{
			Self:     fmt.Sprintf("%s/v1/credits/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/credits/%s/payments", url, model.ID),
		},
		TotalToRepay:   model.TotalToRepay(),
		MonthlyPayment: model.MonthlyPayment(),
	}

	remaining, err := model.RemainingBalance(db)
	if err != nil {
		return Credit{}, err
	}
	credit.RemainingBalance = remaining

	return credit, nil
}

type CreditListResponse struct {
	Data  []Credit `json:"data"`                                                          // List of credits
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CreditCreateResponse struct {
	Data  []CreditResponse `json:"data"`                                                          // List of the created credits or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CreditCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CreditResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CreditResponse struct {
	Data  *Credit `json:"data"`                                                          // Data for the credit
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// CreditPaymentEditable represents all user configurable parameters of a credit payment
type CreditPaymentEditable struct {
	Amount      decimal.Decimal            `json:"amount" example:"261.25" default:"0"`     // The amount paid
	PaymentDate time.Time                  `json:"paymentDate" example:"2026-08-01T00:00:00Z"` // When the payment was or will be made
	Status      models.CreditPaymentStatus `json:"status" example:"paid" default:"pending"` // Status: paid or pending
}

func (editable CreditPaymentEditable) model(creditID uuid.UUID) models.CreditPayment {
	return models.CreditPayment{
		CreditID:    creditID,
		Amount:      editable.Amount,
		PaymentDate: editable.PaymentDate,
		Status:      editable.Status,
	}
}

// CreditPayment is the API representation of a credit payment.
type CreditPayment struct {
	models.DefaultModel
	CreditPaymentEditable
	CreditID uuid.UUID `json:"creditId" example:"12b2403a-4863-4d88-9a11-d6423b4e7a12"` // The credit the payment belongs to
}

func newCreditPayment(model models.CreditPayment) CreditPayment {
	return CreditPayment{
		DefaultModel: model.DefaultModel,
		CreditPaymentEditable: CreditPaymentEditable{
			Amount:      model.Amount,
			PaymentDate: model.PaymentDate,
			Status:      model.Status,
		},
		CreditID: model.CreditID,
	}
}

type CreditPaymentListResponse struct {
	Data  []CreditPayment `json:"data"`                                                          // List of payments
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CreditPaymentResponse struct {
	Data  *CreditPayment `json:"data"`                                                          // Data for the payment
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
