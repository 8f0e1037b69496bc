package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	store    adapter.Store
	lock     adapter.MutationLock
	updater  *balance.Updater
	settings ledger.Settings
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(store adapter.Store, lock adapter.MutationLock, updater *balance.Updater, settings ledger.Settings) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		store:    store,
		lock:     lock,
		updater:  updater,
		settings: settings,
	}
}

// Execute performs the deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	before, err := findTransaction(ctx, uc.store, input.ID)
	if err != nil {
		return err
	}

	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return err
	}

	err = uc.store.Atomic(ctx, func(s adapter.Store) error {
		if err := s.Transactions().Delete(ctx, before.ID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		return uc.updater.TransactionsChanged(ctx, s, idx, before)
	})
	if err != nil {
		return err
	}

	slog.Debug("Transaction deleted", "transaction_id", before.ID)
	return nil
}
