package v1

import (
	"context"
	"fmt"

	"github.com/findash/backend/internal/aggregator"
	"github.com/findash/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountEditable represents all user configurable parameters of an account
type AccountEditable struct {
	Name           string             `json:"name" example:"Main account" default:""`                     // Name of the account
	Kind           models.AccountKind `json:"kind" example:"checking" default:"checking"`                 // Kind of the account
	InitialBalance decimal.Decimal    `json:"initialBalance" example:"173.12" default:"0"`                // Balance the account started with
	CurrencyCode   string             `json:"currencyCode" example:"EUR" default:""`                      // ISO 4217 code of the account currency
	LogoPath       string             `json:"logoPath" example:"logos/bank.png" default:""`               // Path to a logo image, managed outside the backend
	Archived       bool               `json:"archived" example:"true" default:"false"`                    // Is the account archived?
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:           editable.Name,
		Kind:           editable.Kind,
		InitialBalance: editable.InitialBalance,
		CurrencyCode:   editable.CurrencyCode,
		LogoPath:       editable.LogoPath,
		Archived:       editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`          // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc"`   // Transactions for this account
}

// Account is the API representation of an account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`

	// These fields are computed
	Balance          decimal.Decimal  `json:"balance" example:"2735.17"`                   // Current balance, derived from the transaction history
	ReferenceBalance *decimal.Decimal `json:"referenceBalance" example:"2952.80"`          // Balance converted to the reference currency, null when no rate is available
}

// newAccount computes the derived balances for the API representation.
func newAccount(c *gin.Context, db *gorm.DB, model models.Account) (Account, error) {
	url := c.GetString(string(models.DBContextURL))

	account := Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:           model.Name,
			Kind:           model.Kind,
			InitialBalance: model.InitialBalance,
			CurrencyCode:   model.CurrencyCode,
			LogoPath:       model.LogoPath,
			Archived:       model.Archived,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}

	transactions, err := model.Transactions(db)
	if err != nil {
		return Account{}, err
	}

	account.Balance = aggregator.Balance(model, transactions)

	// A missing rate is not an error for the account representation,
	// the converted balance is simply not available
	if Rates != nil {
		table, err := Rates.Rates(context.Background())
		if err == nil {
			converted, err := aggregator.Convert(account.Balance, model.CurrencyCode, ReferenceCurrency, table)
			if err == nil {
				account.ReferenceBalance = &converted
			}
		}
	}

	return account, nil
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Data  []AccountResponse `json:"data"`                                                          // List of the created accounts or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	Name     string `form:"name"`     // By name
	Kind     string `form:"kind"`     // By kind
	Archived bool   `form:"archived"` // Is the account archived?
	Offset   uint   `form:"offset"`   // The offset of the first account returned. Defaults to 0.
	Limit    int    `form:"limit"`    // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Kind:     models.AccountKind(f.Kind),
		Archived: f.Archived,
	}
}
