package aggregator

import "errors"

var (
	// ErrInvalidAmount is returned when a numeric input is not a finite number.
	ErrInvalidAmount = errors.New("the amount is not a finite number")

	// ErrInvalidPeriod is returned when a month is outside of 1-12.
	ErrInvalidPeriod = errors.New("the month must be between 1 and 12")

	// ErrRateUnavailable is returned when no usable exchange rate exists
	// for a currency.
	ErrRateUnavailable = errors.New("no exchange rate is available for this currency")
)
