// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FxRateScale is the factor stored rates are multiplied by.
const FxRateScale = 100

// FxRate is a user-entered exchange rate for one period: Rate/FxRateScale units of
// Currency2 per one unit of Currency1.
type FxRate struct {
	ID        uuid.UUID
	PeriodID  uuid.UUID
	Currency1 string
	Currency2 string
	Rate      int64
	StartDate time.Time // Copy of the period start, for sorting
	CreatedAt time.Time
}

// NewFxRate creates a new FxRate entity for the given period.
func NewFxRate(period *Period, currency1, currency2 string, rate int64) *FxRate {
	return &FxRate{
		ID:        uuid.New(),
		PeriodID:  period.ID,
		Currency1: currency1,
		Currency2: currency2,
		Rate:      rate,
		StartDate: period.Start,
		CreatedAt: time.Now().UTC(),
	}
}
