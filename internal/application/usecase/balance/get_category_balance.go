package balance

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetCategoryBalanceInput represents the input for a category balance.
type GetCategoryBalanceInput struct {
	CategoryID uuid.UUID
	PeriodID   uuid.UUID
}

// GetCategoryBalanceOutput represents a category balance in the default currency.
type GetCategoryBalanceOutput struct {
	CategoryID uuid.UUID
	PeriodID   uuid.UUID
	Currency   string
	Amount     int64
}

// GetCategoryBalanceUseCase reads a category's period balance through the cache.
type GetCategoryBalanceUseCase struct {
	store adapter.Store
	cache *Cache
	calc  *Calculator
}

// NewGetCategoryBalanceUseCase creates a new GetCategoryBalanceUseCase instance.
func NewGetCategoryBalanceUseCase(store adapter.Store, cache *Cache, calc *Calculator) *GetCategoryBalanceUseCase {
	return &GetCategoryBalanceUseCase{
		store: store,
		cache: cache,
		calc:  calc,
	}
}

// Execute reads the balance.
func (uc *GetCategoryBalanceUseCase) Execute(ctx context.Context, input GetCategoryBalanceInput) (*GetCategoryBalanceOutput, error) {
	category, err := lookup.Category(ctx, uc.store.Categories(), input.CategoryID)
	if err != nil {
		return nil, err
	}
	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.calc.Settings().Loc())
	if err != nil {
		return nil, err
	}
	p, err := lookup.Period(idx, input.PeriodID)
	if err != nil {
		return nil, err
	}
	row, err := uc.cache.Get(ctx, p, entity.CategoryScope(category.ID))
	if err != nil {
		return nil, err
	}
	return &GetCategoryBalanceOutput{
		CategoryID: category.ID,
		PeriodID:   p.ID,
		Currency:   uc.calc.Settings().DefaultCurrency,
		Amount:     amountOf(row.Value),
	}, nil
}

// amountOf extracts the single amount of an account or category row.
func amountOf(v entity.BalanceValue) int64 {
	switch value := v.(type) {
	case entity.AccountBalance:
		return value.Amount
	case entity.CategoryBalance:
		return value.Amount
	}
	return 0
}
