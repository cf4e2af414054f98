// Package recurring books due recurring expenses as transactions.
package recurring

import (
	"time"

	"github.com/findash/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Process books all active recurring expenses whose next payment date is
// not after now. For every due expense a transaction is created, the
// total spent is increased and the schedule advances one period.
//
// An expense that is several periods behind is booked once per call, so
// repeated runs catch it up without creating duplicates for the same
// period. Everything happens in one database transaction.
func Process(db *gorm.DB, now time.Time) ([]models.Transaction, error) {
	var booked []models.Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		var due []models.RecurringExpense

		err := tx.
			Where(&models.RecurringExpense{Status: models.RecurringActive}).
			Where("next_payment_date <= ?", now).
			Find(&due).Error
		if err != nil {
			return err
		}

		for _, expense := range due {
			transaction := models.Transaction{
				Type:       models.TransactionExpense,
				Amount:     expense.Amount,
				Date:       expense.NextPaymentDate,
				Note:       expense.Name,
				AccountID:  expense.AccountID,
				CategoryID: expense.CategoryID,
			}

			err = tx.Create(&transaction).Error
			if err != nil {
				return err
			}

			paymentDate := expense.NextPaymentDate
			expense.LastPaymentDate = &paymentDate
			expense.TotalSpent = expense.TotalSpent.Add(expense.Amount)
			expense.Advance()

			err = tx.Save(&expense).Error
			if err != nil {
				return err
			}

			booked = append(booked, transaction)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, transaction := range booked {
		log.Debug().
			Str("transaction", transaction.ID.String()).
			Str("note", transaction.Note).
			Msg("booked recurring expense")
	}

	return booked, nil
}

// Run processes recurring expenses on a fixed interval until the channel
// passed is closed. Intended to run in its own goroutine.
func Run(db *gorm.DB, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_, err := Process(db, time.Now().In(time.UTC))
			if err != nil {
				log.Error().Err(err).Msg("processing recurring expenses failed")
			}
		}
	}
}
