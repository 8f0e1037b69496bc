package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreatePayeeRequest represents the request body for payee creation.
type CreatePayeeRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=100"`
	DefaultCategoryID *string `json:"default_category_id,omitempty"`
	DefaultAccountID  *string `json:"default_account_id,omitempty"`
}

// UpdatePayeeRequest represents the request body for payee update.
type UpdatePayeeRequest struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	DefaultCategoryID *string `json:"default_category_id,omitempty"`
	DefaultAccountID  *string `json:"default_account_id,omitempty"`
}

// PayeeResponse represents a single payee in API responses.
type PayeeResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Order             int       `json:"order"`
	DefaultCategoryID *string   `json:"default_category_id,omitempty"`
	DefaultAccountID  *string   `json:"default_account_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PayeeListResponse represents the response for listing payees.
type PayeeListResponse struct {
	Payees []PayeeResponse `json:"payees"`
}

// DebtResponse represents what a debtor owes up to the end of a period.
type DebtResponse struct {
	PayeeID  string `json:"payee_id"`
	PeriodID string `json:"period_id"`
	Amount   int64  `json:"amount"`
}

// ToPayeeResponse converts a domain Payee entity to a PayeeResponse DTO.
func ToPayeeResponse(p *entity.Payee) PayeeResponse {
	return PayeeResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		Order:             p.Order,
		DefaultCategoryID: idString(p.DefaultCategoryID),
		DefaultAccountID:  idString(p.DefaultAccountID),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToPayeeListResponse converts payees to a PayeeListResponse DTO.
func ToPayeeListResponse(payees []*entity.Payee) PayeeListResponse {
	out := make([]PayeeResponse, len(payees))
	for i, p := range payees {
		out[i] = ToPayeeResponse(p)
	}
	return PayeeListResponse{Payees: out}
}

// ToDebtResponse converts a debt output to its DTO.
func ToDebtResponse(output *balance.GetDebtBalanceOutput) DebtResponse {
	return DebtResponse{
		PayeeID:  output.PayeeID.String(),
		PeriodID: output.PeriodID.String(),
		Amount:   output.Amount,
	}
}
