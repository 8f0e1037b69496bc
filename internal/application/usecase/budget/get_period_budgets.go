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

// PeriodBudgetsOutput represents the budgeted income and spend of a period.
type PeriodBudgetsOutput struct {
	PeriodID uuid.UUID
	Income   int64
	Expenses int64
	Rows     []*entity.Budget
}

// GetPeriodBudgetsUseCase sums a period's budget rows by category type.
type GetPeriodBudgetsUseCase struct {
	store    adapter.Store
	settings ledger.Settings
}

// NewGetPeriodBudgetsUseCase creates a new GetPeriodBudgetsUseCase instance.
func NewGetPeriodBudgetsUseCase(store adapter.Store, settings ledger.Settings) *GetPeriodBudgetsUseCase {
	return &GetPeriodBudgetsUseCase{
		store:    store,
		settings: settings,
	}
}

// Execute sums the budgets.
func (uc *GetPeriodBudgetsUseCase) Execute(ctx context.Context, periodID uuid.UUID) (*PeriodBudgetsOutput, error) {
	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return nil, err
	}
	p, err := lookup.Period(idx, periodID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.store.Budgets().FindByPeriod(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load period budgets: %w", err)
	}
	categories, err := uc.store.Categories().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	income, expenses := ledger.PeriodBudgets(rows, byID)
	return &PeriodBudgetsOutput{
		PeriodID: p.ID,
		Income:   income,
		Expenses: expenses,
		Rows:     rows,
	}, nil
}
