package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	ID uuid.UUID
}

// DeleteAccountUseCase deletes an account no transaction references, together
// with its cached balance rows.
type DeleteAccountUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(store adapter.Store, lock adapter.MutationLock) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	account, err := lookup.Account(ctx, uc.store.Accounts(), input.ID)
	if err != nil {
		return err
	}

	count, err := uc.store.Transactions().Count(ctx, adapter.TransactionFilter{AccountID: &account.ID})
	if err != nil {
		return fmt.Errorf("failed to count account transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewIntegrityError(
			domainerror.ErrCodeAccountInUse,
			fmt.Sprintf("account %q is referenced by %d transactions", account.Name, count),
			domainerror.ErrAccountHasTransactions,
		)
	}

	err = uc.store.Atomic(ctx, func(tx adapter.Store) error {
		if err := tx.Balances().DeleteByScope(ctx, entity.AccountScope(account.ID)); err != nil {
			return fmt.Errorf("failed to delete account balances: %w", err)
		}
		return tx.Accounts().Delete(ctx, account.ID)
	})
	if err != nil {
		return err
	}

	slog.Info("Account deleted", "account_id", account.ID)
	return nil
}
