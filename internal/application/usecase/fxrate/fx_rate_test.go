package fxrate_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/fxrate"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestGetRate_DirectAndReverse(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	march := env.Period(t, 2024, 3)
	env.Rate(t, march, "EUR", "SEK", 1100)
	get := fxrate.NewGetRateUseCase(env.Store.FxRates())

	direct, err := get.Execute(ctx, fxrate.GetRateInput{PeriodID: march.ID, From: "EUR", To: "SEK"})
	require.NoError(t, err)
	assert.True(t, direct.Rate.Equal(decimal.NewFromInt(11)), direct.Rate.String())

	reverse, err := get.Execute(ctx, fxrate.GetRateInput{PeriodID: march.ID, From: "sek", To: "eur"})
	require.NoError(t, err)
	assert.Equal(t, "9.09", reverse.Rate.StringFixed(2))
	assert.Equal(t, "9.09", reverse.Scaled.StringFixed(2))
	assert.Equal(t, "1100", direct.Scaled.String())

	same, err := get.Execute(ctx, fxrate.GetRateInput{PeriodID: march.ID, From: "SEK", To: "SEK"})
	require.NoError(t, err)
	assert.True(t, same.Rate.Equal(decimal.NewFromInt(1)))

	_, err = get.Execute(ctx, fxrate.GetRateInput{PeriodID: march.ID, From: "EUR", To: "USD"})
	assert.True(t, domainerror.IsKind(err, domainerror.KindConversionUnavailable))
}

func TestCreateFxRate_Validation(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	march := env.Period(t, 2024, 3)
	create := fxrate.NewCreateFxRateUseCase(env.Store, env.Lock, env.Updater, env.Settings)

	tests := []struct {
		name  string
		input fxrate.CreateFxRateInput
		kind  domainerror.ErrorKind
	}{
		{"same currency", fxrate.CreateFxRateInput{PeriodID: march.ID, Currency1: "EUR", Currency2: "EUR", Rate: 100}, domainerror.KindValidation},
		{"zero rate", fxrate.CreateFxRateInput{PeriodID: march.ID, Currency1: "EUR", Currency2: "USD", Rate: 0}, domainerror.KindValidation},
		{"unknown currency", fxrate.CreateFxRateInput{PeriodID: march.ID, Currency1: "EUR", Currency2: "XYZ1", Rate: 100}, domainerror.KindValidation},
		{"unknown period", fxrate.CreateFxRateInput{PeriodID: uuid.New(), Currency1: "EUR", Currency2: "USD", Rate: 100}, domainerror.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := create.Execute(ctx, tt.input)
			assert.True(t, domainerror.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestFxRateChanges_RefreshCachedBalances(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	travel := env.Account(t, "Travel", "USD", entity.AccountTypeBudget)
	dining := env.Category(t, "Dining", entity.CategoryTypeExpense)
	march := env.Period(t, 2024, 3)

	_, err := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings).
		Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
			AccountID:  travel.ID,
			Date:       usecasetest.Date(2024, time.March, 8),
			Amount:     2200,
			CategoryID: &dining.ID,
		}})
	require.NoError(t, err)

	scope := entity.CategoryScope(dining.ID)
	row, err := env.Cache.Get(ctx, march, scope)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryBalance{CategoryID: dining.ID, Amount: 0}, row.Value)

	create := fxrate.NewCreateFxRateUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	first, err := create.Execute(ctx, fxrate.CreateFxRateInput{PeriodID: march.ID, Currency1: "EUR", Currency2: "USD", Rate: 110})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryBalance{CategoryID: dining.ID, Amount: -2000}, env.Cached(t, march, scope).Value)

	// A newer row for the pair supersedes the older one.
	second, err := create.Execute(ctx, fxrate.CreateFxRateInput{PeriodID: march.ID, Currency1: "EUR", Currency2: "USD", Rate: 200})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryBalance{CategoryID: dining.ID, Amount: -1100}, env.Cached(t, march, scope).Value)

	remove := fxrate.NewDeleteFxRateUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	require.NoError(t, remove.Execute(ctx, second.FxRate.ID))
	assert.Equal(t, entity.CategoryBalance{CategoryID: dining.ID, Amount: -2000}, env.Cached(t, march, scope).Value)

	require.NoError(t, remove.Execute(ctx, first.FxRate.ID))
	assert.Equal(t, entity.CategoryBalance{CategoryID: dining.ID, Amount: 0}, env.Cached(t, march, scope).Value)
	env.RequireConsistent(t)

	rates, err := fxrate.NewListFxRatesUseCase(env.Store.FxRates()).Execute(ctx, &march.ID)
	require.NoError(t, err)
	assert.Empty(t, rates)
}
