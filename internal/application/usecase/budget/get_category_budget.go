package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// CategoryBudgetInput identifies a category in a period.
type CategoryBudgetInput struct {
	CategoryID uuid.UUID
	PeriodID   uuid.UUID
}

// CategoryBudgetOutput represents the budget position of a category in a period.
type CategoryBudgetOutput struct {
	CategoryID uuid.UUID
	PeriodID   uuid.UUID
	Budget     int64
	Balance    int64
	Remaining  int64
	Rows       []*entity.Budget
}

// GetCategoryBudgetUseCase reports a category's budget, its cached balance and
// what remains.
type GetCategoryBudgetUseCase struct {
	store    adapter.Store
	cache    *balance.Cache
	settings ledger.Settings
}

// NewGetCategoryBudgetUseCase creates a new GetCategoryBudgetUseCase instance.
func NewGetCategoryBudgetUseCase(store adapter.Store, cache *balance.Cache, settings ledger.Settings) *GetCategoryBudgetUseCase {
	return &GetCategoryBudgetUseCase{
		store:    store,
		cache:    cache,
		settings: settings,
	}
}

// Execute computes the budget position.
func (uc *GetCategoryBudgetUseCase) Execute(ctx context.Context, input CategoryBudgetInput) (*CategoryBudgetOutput, error) {
	category, err := lookup.Category(ctx, uc.store.Categories(), input.CategoryID)
	if err != nil {
		return nil, err
	}
	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return nil, err
	}
	p, err := lookup.Period(idx, input.PeriodID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.store.Budgets().FindByPeriodAndCategory(ctx, p.ID, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category budgets: %w", err)
	}
	cached, err := uc.cache.Get(ctx, p, entity.CategoryScope(category.ID))
	if err != nil {
		return nil, err
	}
	cb, _ := cached.Value.(entity.CategoryBalance)

	total := ledger.BudgetTotal(category.ID, rows)
	return &CategoryBudgetOutput{
		CategoryID: category.ID,
		PeriodID:   p.ID,
		Budget:     total,
		Balance:    cb.Amount,
		Remaining:  ledger.Remaining(total, cb.Amount),
		Rows:       rows,
	}, nil
}
