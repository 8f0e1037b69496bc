package category

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

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryUseCase deletes a category no transaction references. Its budget
// rows and cached balance rows go with it.
type DeleteCategoryUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(store adapter.Store, lock adapter.MutationLock) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	category, err := lookup.Category(ctx, uc.store.Categories(), input.ID)
	if err != nil {
		return err
	}

	count, err := uc.store.Transactions().Count(ctx, adapter.TransactionFilter{CategoryID: &category.ID})
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewIntegrityError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("category %q is referenced by %d transactions", category.Name, count),
			domainerror.ErrCategoryHasTransactions,
		)
	}

	err = uc.store.Atomic(ctx, func(tx adapter.Store) error {
		if err := tx.Budgets().DeleteByCategory(ctx, category.ID); err != nil {
			return fmt.Errorf("failed to delete category budgets: %w", err)
		}
		if err := tx.Balances().DeleteByScope(ctx, entity.CategoryScope(category.ID)); err != nil {
			return fmt.Errorf("failed to delete category balances: %w", err)
		}
		return tx.Categories().Delete(ctx, category.ID)
	})
	if err != nil {
		return err
	}

	slog.Info("Category deleted", "category_id", category.ID)
	return nil
}
