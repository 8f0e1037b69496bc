// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// CreateBudgetInput represents the input for appending a budget row.
// Amount is signed: a negative amount lowers the category budget.
type CreateBudgetInput struct {
	PeriodID   uuid.UUID
	CategoryID uuid.UUID
	Amount     int64
}

// CreateBudgetOutput represents the appended row and the resulting category budget.
type CreateBudgetOutput struct {
	Budget *entity.Budget
	Total  int64
}

// CreateBudgetUseCase appends a budget row. Rows of the same category and period
// accumulate.
type CreateBudgetUseCase struct {
	store    adapter.Store
	lock     adapter.MutationLock
	settings ledger.Settings
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(store adapter.Store, lock adapter.MutationLock, settings ledger.Settings) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		store:    store,
		lock:     lock,
		settings: settings,
	}
}

// Execute appends the row.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return nil, err
	}
	p, err := lookup.Period(idx, input.PeriodID)
	if err != nil {
		return nil, err
	}
	category, err := lookup.Category(ctx, uc.store.Categories(), input.CategoryID)
	if err != nil {
		return nil, err
	}

	row := entity.NewBudget(p.ID, category.ID, input.Amount)
	if err := uc.store.Budgets().Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	rows, err := uc.store.Budgets().FindByPeriodAndCategory(ctx, p.ID, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category budgets: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: row,
		Total:  ledger.BudgetTotal(category.ID, rows),
	}, nil
}
