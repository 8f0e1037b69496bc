package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/payee"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Fields

	// NewPayees are stored in the same commit as the transaction, so PayeeID and
	// DebtorID may reference them. See payee.Pending.
	NewPayees []*entity.Payee
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	store    adapter.Store
	lock     adapter.MutationLock
	updater  *balance.Updater
	settings ledger.Settings
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(store adapter.Store, lock adapter.MutationLock, updater *balance.Updater, settings ledger.Settings) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		store:    store,
		lock:     lock,
		updater:  updater,
		settings: settings,
	}
}

// Execute validates and stores the transaction, refreshing the affected cached
// balances in the same commit. A validation error rolls back NewPayees too.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return nil, err
	}

	tx := entity.NewTransaction(input.AccountID, input.Date, input.Amount, input.Currency)
	err = uc.store.Atomic(ctx, func(s adapter.Store) error {
		if len(input.NewPayees) > 0 {
			if err := payee.Insert(ctx, s, input.NewPayees...); err != nil {
				return err
			}
		}
		if err := apply(ctx, s, idx, input.Fields, tx); err != nil {
			return err
		}
		if err := s.Transactions().Create(ctx, tx); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return uc.updater.TransactionsChanged(ctx, s, idx, tx)
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Transaction created", "transaction_id", tx.ID, "account_id", tx.AccountID, "period_id", tx.PeriodID)
	return &CreateTransactionOutput{Transaction: tx}, nil
}
