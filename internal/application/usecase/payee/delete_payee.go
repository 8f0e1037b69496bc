package payee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeletePayeeUseCase deletes a payee no transaction references as payee or debtor.
type DeletePayeeUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewDeletePayeeUseCase creates a new DeletePayeeUseCase instance.
func NewDeletePayeeUseCase(store adapter.Store, lock adapter.MutationLock) *DeletePayeeUseCase {
	return &DeletePayeeUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the deletion.
func (uc *DeletePayeeUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	payee, err := lookup.Payee(ctx, uc.store.Payees(), id)
	if err != nil {
		return err
	}

	count, err := uc.store.Transactions().Count(ctx, adapter.TransactionFilter{PayeeID: &payee.ID})
	if err != nil {
		return fmt.Errorf("failed to count payee transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewIntegrityError(
			domainerror.ErrCodePayeeInUse,
			fmt.Sprintf("payee %q is referenced by %d transactions", payee.Name, count),
			domainerror.ErrPayeeHasTransactions,
		)
	}

	if err := uc.store.Payees().Delete(ctx, payee.ID); err != nil {
		return fmt.Errorf("failed to delete payee: %w", err)
	}

	slog.Info("Payee deleted", "payee_id", payee.ID)
	return nil
}
