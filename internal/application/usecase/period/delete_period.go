package period

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeletePeriodInput represents the input for period deletion.
type DeletePeriodInput struct {
	PeriodID uuid.UUID
}

// DeletePeriodUseCase deletes a period together with its budgets, rates and
// cached balances. Periods owning transactions are kept.
type DeletePeriodUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewDeletePeriodUseCase creates a new DeletePeriodUseCase instance.
func NewDeletePeriodUseCase(store adapter.Store, lock adapter.MutationLock) *DeletePeriodUseCase {
	return &DeletePeriodUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the period deletion.
func (uc *DeletePeriodUseCase) Execute(ctx context.Context, input DeletePeriodInput) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := uc.store.Periods().FindByID(ctx, input.PeriodID); err != nil {
		if errors.Is(err, domainerror.ErrPeriodNotFound) {
			return domainerror.NewNotFoundError(domainerror.ErrCodePeriodNotFound, "period not found", err)
		}
		return fmt.Errorf("failed to find period: %w", err)
	}

	count, err := uc.store.Transactions().Count(ctx, adapter.TransactionFilter{PeriodID: &input.PeriodID})
	if err != nil {
		return fmt.Errorf("failed to count period transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewIntegrityError(
			domainerror.ErrCodePeriodInUse,
			fmt.Sprintf("period owns %d transactions", count),
			domainerror.ErrPeriodHasTransactions,
		)
	}

	err = uc.store.Atomic(ctx, func(tx adapter.Store) error {
		if err := tx.Budgets().DeleteByPeriod(ctx, input.PeriodID); err != nil {
			return fmt.Errorf("failed to delete period budgets: %w", err)
		}
		if err := tx.FxRates().DeleteByPeriod(ctx, input.PeriodID); err != nil {
			return fmt.Errorf("failed to delete period rates: %w", err)
		}
		if err := tx.Balances().DeleteByPeriod(ctx, input.PeriodID); err != nil {
			return fmt.Errorf("failed to delete period balances: %w", err)
		}
		return tx.Periods().Delete(ctx, input.PeriodID)
	})
	if err != nil {
		return err
	}

	slog.Info("Period deleted", "period_id", input.PeriodID)
	return nil
}
