package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for adding a budget entry.
// Amount is signed; entries for the same category and period add up.
type CreateBudgetRequest struct {
	PeriodID   string `json:"period_id" binding:"required,uuid"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Amount     int64  `json:"amount"`
}

// BudgetResponse represents a single budget entry in API responses.
type BudgetResponse struct {
	ID         string    `json:"id"`
	PeriodID   string    `json:"period_id"`
	CategoryID string    `json:"category_id"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateBudgetResponse represents the created entry and the new category total.
type CreateBudgetResponse struct {
	Budget BudgetResponse `json:"budget"`
	Total  int64          `json:"total"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID.String(),
		PeriodID:   b.PeriodID.String(),
		CategoryID: b.CategoryID.String(),
		Amount:     b.Amount,
		CreatedAt:  b.CreatedAt,
	}
}

// ToBudgetResponses converts budget entries to DTOs.
func ToBudgetResponses(rows []*entity.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(rows))
	for i, b := range rows {
		out[i] = ToBudgetResponse(b)
	}
	return out
}
