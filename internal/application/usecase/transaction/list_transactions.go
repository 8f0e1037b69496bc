package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListTransactionsInput represents the filters for listing transactions.
// Empty filters are ignored.
type ListTransactionsInput struct {
	PeriodID   *uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	PayeeID    *uuid.UUID
}

// ListTransactionsOutput represents the listed transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase lists transactions sorted by date then creation time.
type ListTransactionsUseCase struct {
	store adapter.Store
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store adapter.Store) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{store: store}
}

// Execute lists the transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	txs, err := uc.store.Transactions().FindByFilter(ctx, adapter.TransactionFilter{
		PeriodID:   input.PeriodID,
		AccountID:  input.AccountID,
		CategoryID: input.CategoryID,
		PayeeID:    input.PayeeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &ListTransactionsOutput{Transactions: txs}, nil
}
