package v1

import (
	"fmt"
	"time"

	"github.com/findash/backend/internal/models"
	findash_uuid "github.com/findash/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of a transaction
type TransactionEditable struct {
	Type             models.TransactionType `json:"type" example:"expense" default:""`                            // Type of the transaction: income, expense or transfer
	Amount           decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.00000001" default:"0"`      // The amount, always positive
	Date             time.Time              `json:"date" example:"2026-02-14T00:00:00Z"`                          // Date of the transaction
	Note             string                 `json:"note" example:"Groceries" default:""`                          // A note
	AccountID        uuid.UUID              `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`     // ID of the account the transaction belongs to
	CategoryID       *uuid.UUID             `json:"categoryId" example:"dd10c77a-d08e-4912-917e-3eff98b3a534"`    // ID of the transaction category, optional
	RelatedAccountID *uuid.UUID             `json:"relatedAccountId" example:"8e16b456-a719-48ce-9dd0-cba49d4c"`  // Destination account, transfers only
	TransferType     *models.TransferType   `json:"transferType" example:"saving"`                                // Label for transfers: saving, investing, moving or funding
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:             editable.Type,
		Amount:           editable.Amount,
		Date:             editable.Date,
		Note:             editable.Note,
		AccountID:        editable.AccountID,
		CategoryID:       editable.CategoryID,
		RelatedAccountID: editable.RelatedAccountID,
		TransferType:     editable.TransferType,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:             model.Type,
			Amount:           model.Amount,
			Date:             model.Date,
			Note:             model.Note,
			AccountID:        model.AccountID,
			CategoryID:       model.CategoryID,
			RelatedAccountID: model.RelatedAccountID,
			TransferType:     model.TransferType,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Account  findash_uuid.UUID `form:"account" filterField:"false"`                  // Filter by the account, includes transfers into it
	Category findash_uuid.UUID `form:"category"`                                     // Filter by the transaction category
	Type     string            `form:"type"`                                         // Filter by type
	Month    time.Time         `form:"month" time_format:"2006-01" time_utc:"1"`     // Only transactions in this month, YYYY-MM
	Note     string            `form:"note" filterField:"false"`                     // Filter by note, fuzzy
	Offset   uint              `form:"offset" filterField:"false"`                   // The offset of the first transaction returned. Defaults to 0.
	Limit    int               `form:"limit" filterField:"false"`                    // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	var categoryID *uuid.UUID
	if f.Category != findash_uuid.Nil {
		categoryID = &f.Category.UUID
	}

	return models.Transaction{
		Type:       models.TransactionType(f.Type),
		CategoryID: categoryID,
	}
}
