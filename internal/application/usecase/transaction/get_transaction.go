package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetTransactionInput represents the input for reading one transaction.
type GetTransactionInput struct {
	ID uuid.UUID
}

// GetTransactionOutput represents one transaction.
type GetTransactionOutput struct {
	Transaction *entity.Transaction
}

// GetTransactionUseCase reads one transaction.
type GetTransactionUseCase struct {
	store adapter.Store
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(store adapter.Store) *GetTransactionUseCase {
	return &GetTransactionUseCase{store: store}
}

// Execute reads the transaction.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	tx, err := findTransaction(ctx, uc.store, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetTransactionOutput{Transaction: tx}, nil
}
