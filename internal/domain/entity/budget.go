// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Budget is one budget entry for a category in a period. Several entries may exist
// for the same pair; the budget of the pair is their sum.
type Budget struct {
	ID         uuid.UUID
	PeriodID   uuid.UUID
	CategoryID uuid.UUID
	Amount     int64
	CreatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(periodID, categoryID uuid.UUID, amount int64) *Budget {
	return &Budget{
		ID:         uuid.New(),
		PeriodID:   periodID,
		CategoryID: categoryID,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}
}
