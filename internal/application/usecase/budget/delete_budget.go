package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteBudgetUseCase deletes one budget row.
type DeleteBudgetUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(store adapter.Store, lock adapter.MutationLock) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute deletes the row.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := uc.store.Budgets().FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return domainerror.NewNotFoundError(domainerror.ErrCodeBudgetNotFound, fmt.Sprintf("budget %s not found", id), err)
		}
		return fmt.Errorf("failed to find budget: %w", err)
	}
	if err := uc.store.Budgets().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
