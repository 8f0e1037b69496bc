package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Currency   string `json:"currency" binding:"required,len=3"`
	Type       string `json:"type" binding:"required,oneof=budget external"`
	ExternalID string `json:"external_id,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
// The currency of an account cannot change.
type UpdateAccountRequest struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type              *string `json:"type,omitempty" binding:"omitempty,oneof=budget external"`
	ExternalID        *string `json:"external_id,omitempty"`
	ReconciledBalance *int64  `json:"reconciled_balance,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Currency          string     `json:"currency"`
	Type              string     `json:"type"`
	Order             int        `json:"order"`
	ExternalID        string     `json:"external_id,omitempty"`
	LastRefresh       *time.Time `json:"last_refresh,omitempty"`
	ReconciledBalance *int64     `json:"reconciled_balance,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse represents an account balance in its own currency.
type AccountBalanceResponse struct {
	AccountID string `json:"account_id"`
	Currency  string `json:"currency"`
	Amount    int64  `json:"amount"`
	AsOf      string `json:"as_of,omitempty"`
	PeriodID  string `json:"period_id,omitempty"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:                a.ID.String(),
		Name:              a.Name,
		Currency:          a.Currency,
		Type:              string(a.Type),
		Order:             a.Order,
		ExternalID:        a.ExternalID,
		LastRefresh:       a.LastRefresh,
		ReconciledBalance: a.ReconciledBalance,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// ToAccountListResponse converts accounts to an AccountListResponse DTO.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = ToAccountResponse(a)
	}
	return AccountListResponse{Accounts: out}
}

// ToAccountBalanceResponse converts a balance output to its DTO.
func ToAccountBalanceResponse(output *balance.GetAccountBalanceOutput) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID: output.AccountID.String(),
		Currency:  output.Currency,
		Amount:    output.Amount,
	}
}
