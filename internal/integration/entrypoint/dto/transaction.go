package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionRequest represents the request body for transaction creation and update.
// Updates replace every editable field.
type TransactionRequest struct {
	AccountID      string  `json:"account_id" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	Amount         int64   `json:"amount"`
	Currency       string  `json:"currency,omitempty"`
	Income         bool    `json:"income,omitempty"`
	Transfer       bool    `json:"transfer,omitempty"`
	Expense        bool    `json:"expense,omitempty"`
	ExpenseSettled bool    `json:"expense_settled,omitempty"`
	PayeeID        *string `json:"payee_id,omitempty"`
	DebtorID       *string `json:"debtor_id,omitempty"`
	CategoryID     *string `json:"category_id,omitempty"`
	ToAccountID    *string `json:"to_account_id,omitempty"`
	AmountTo       *int64  `json:"amount_to,omitempty"`
	Memo           string  `json:"memo,omitempty" binding:"omitempty,max=500"`
	Recurring      bool    `json:"recurring,omitempty"`
	RecurrenceUnit string  `json:"recurrence_unit,omitempty"`
	ExternalID     string  `json:"external_id,omitempty"`
	Posted         *bool   `json:"posted,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	PeriodID       string    `json:"period_id"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	Income         bool      `json:"income"`
	Transfer       bool      `json:"transfer"`
	Expense        bool      `json:"expense"`
	ExpenseSettled bool      `json:"expense_settled"`
	AccountID      string    `json:"account_id"`
	ToAccountID    *string   `json:"to_account_id,omitempty"`
	AmountTo       *int64    `json:"amount_to,omitempty"`
	PayeeID        *string   `json:"payee_id,omitempty"`
	DebtorID       *string   `json:"debtor_id,omitempty"`
	CategoryID     *string   `json:"category_id,omitempty"`
	Memo           string    `json:"memo"`
	Recurring      bool      `json:"recurring"`
	RecurrenceUnit string    `json:"recurrence_unit,omitempty"`
	ExternalID     string    `json:"external_id,omitempty"`
	Posted         bool      `json:"posted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction, loc *time.Location) TransactionResponse {
	return TransactionResponse{
		ID:             tx.ID.String(),
		Date:           FormatDate(tx.Date, loc),
		PeriodID:       tx.PeriodID.String(),
		Amount:         tx.Amount,
		Currency:       tx.Currency,
		Income:         tx.Income,
		Transfer:       tx.Transfer,
		Expense:        tx.Expense,
		ExpenseSettled: tx.ExpenseSettled,
		AccountID:      tx.AccountID.String(),
		ToAccountID:    idString(tx.ToAccountID),
		AmountTo:       tx.AmountTo,
		PayeeID:        idString(tx.PayeeID),
		DebtorID:       idString(tx.DebtorID),
		CategoryID:     idString(tx.CategoryID),
		Memo:           tx.Memo,
		Recurring:      tx.Recurring,
		RecurrenceUnit: string(tx.RecurrenceUnit),
		ExternalID:     tx.ExternalID,
		Posted:         tx.Posted,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
}

// ToTransactionListResponse converts transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(txs []*entity.Transaction, loc *time.Location) TransactionListResponse {
	out := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = ToTransactionResponse(tx, loc)
	}
	return TransactionListResponse{Transactions: out}
}
