package balance

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetPeriodActualsInput represents the input for period actuals.
type GetPeriodActualsInput struct {
	PeriodID uuid.UUID
}

// GetPeriodActualsOutput represents the income and spend of a period.
type GetPeriodActualsOutput struct {
	PeriodID uuid.UUID
	Currency string
	Income   int64
	Expenses int64
}

// GetPeriodActualsUseCase reads a period's actual income and spend through the cache.
type GetPeriodActualsUseCase struct {
	store adapter.Store
	cache *Cache
	calc  *Calculator
}

// NewGetPeriodActualsUseCase creates a new GetPeriodActualsUseCase instance.
func NewGetPeriodActualsUseCase(store adapter.Store, cache *Cache, calc *Calculator) *GetPeriodActualsUseCase {
	return &GetPeriodActualsUseCase{
		store: store,
		cache: cache,
		calc:  calc,
	}
}

// Execute reads the actuals.
func (uc *GetPeriodActualsUseCase) Execute(ctx context.Context, input GetPeriodActualsInput) (*GetPeriodActualsOutput, error) {
	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.calc.Settings().Loc())
	if err != nil {
		return nil, err
	}
	p, err := lookup.Period(idx, input.PeriodID)
	if err != nil {
		return nil, err
	}
	row, err := uc.cache.Get(ctx, p, entity.PeriodActualScope())
	if err != nil {
		return nil, err
	}
	actual, _ := row.Value.(entity.PeriodActual)
	return &GetPeriodActualsOutput{
		PeriodID: p.ID,
		Currency: uc.calc.Settings().DefaultCurrency,
		Income:   actual.Income,
		Expenses: actual.Expenses,
	}, nil
}
