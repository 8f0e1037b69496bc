package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// UpdateTransactionInput represents the input for a transaction update.
// Every field is replaced.
type UpdateTransactionInput struct {
	ID uuid.UUID
	Fields
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	store    adapter.Store
	lock     adapter.MutationLock
	updater  *balance.Updater
	settings ledger.Settings
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(store adapter.Store, lock adapter.MutationLock, updater *balance.Updater, settings ledger.Settings) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		store:    store,
		lock:     lock,
		updater:  updater,
		settings: settings,
	}
}

// Execute performs the update. Cached balances of both the old and the new
// version are refreshed in the same commit.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	before, err := findTransaction(ctx, uc.store, input.ID)
	if err != nil {
		return nil, err
	}

	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return nil, err
	}

	after := before.Clone()
	if err := apply(ctx, uc.store, idx, input.Fields, after); err != nil {
		return nil, err
	}
	after.UpdatedAt = time.Now().UTC()

	err = uc.store.Atomic(ctx, func(s adapter.Store) error {
		if err := s.Transactions().Update(ctx, after); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		return uc.updater.TransactionsChanged(ctx, s, idx, before, after)
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Transaction updated", "transaction_id", after.ID)
	return &UpdateTransactionOutput{Transaction: after}, nil
}

func findTransaction(ctx context.Context, s adapter.Store, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := s.Transactions().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewNotFoundError(domainerror.ErrCodeTransactionNotFound, fmt.Sprintf("transaction %s not found", id), err)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return tx, nil
}
