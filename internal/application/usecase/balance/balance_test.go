package balance_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestCache_CreatesMissingRowOnce(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	groceries := env.Category(t, "Groceries", entity.CategoryTypeExpense)
	march := env.Period(t, 2024, 3)
	scope := entity.CategoryScope(groceries.ID)

	assert.Nil(t, env.Cached(t, march, scope))

	first, err := env.Cache.Get(ctx, march, scope)
	require.NoError(t, err)
	second, err := env.Cache.Get(ctx, march, scope)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, entity.CategoryBalance{CategoryID: groceries.ID, Amount: 0}, second.Value)
}

func TestCalculator_RecomputeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	groceries := env.Category(t, "Groceries", entity.CategoryTypeExpense)
	march := env.Period(t, 2024, 3)

	create := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	for _, amount := range []int64{1234, 5678, 1} {
		_, err := create.Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
			AccountID:  cash.ID,
			Date:       usecasetest.Date(2024, time.March, 3),
			Amount:     amount,
			CategoryID: &groceries.ID,
		}})
		require.NoError(t, err)
	}

	first, err := env.Calc.Category(ctx, env.Store, march.ID, groceries.ID)
	require.NoError(t, err)
	second, err := env.Calc.Category(ctx, env.Store, march.ID, groceries.ID)
	require.NoError(t, err)

	assert.True(t, first.Sum.Equal(second.Sum))
	assert.Equal(t, int64(-6913), second.Minor())
}

func TestGetDebtBalance_SettledDebtIsZero(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	alice := env.Payee(t, "Alice")
	march := env.Period(t, 2024, 3)

	create := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	debt := balance.NewGetDebtBalanceUseCase(env.Store, env.Calc)

	lent := transaction.Fields{
		AccountID: cash.ID,
		Date:      usecasetest.Date(2024, time.March, 2),
		Amount:    4000,
		Expense:   true,
		DebtorID:  &alice.ID,
	}
	_, err := create.Execute(ctx, transaction.CreateTransactionInput{Fields: lent})
	require.NoError(t, err)

	owed, err := debt.Execute(ctx, balance.GetDebtBalanceInput{PayeeID: alice.ID, PeriodID: march.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), owed.Amount)

	settled := lent
	settled.Date = usecasetest.Date(2024, time.March, 20)
	settled.Income = true
	_, err = create.Execute(ctx, transaction.CreateTransactionInput{Fields: settled})
	require.NoError(t, err)

	owed, err = debt.Execute(ctx, balance.GetDebtBalanceInput{PayeeID: alice.ID, PeriodID: march.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), owed.Amount)
}

func TestGetPeriodSummary_CountsMissingRates(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	travel := env.Account(t, "Travel", "USD", entity.AccountTypeBudget)
	groceries := env.Category(t, "Groceries", entity.CategoryTypeExpense)
	salary := env.Category(t, "Salary", entity.CategoryTypeIncome)
	march := env.Period(t, 2024, 3)

	create := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	inputs := []transaction.Fields{
		{AccountID: cash.ID, Date: usecasetest.Date(2024, time.March, 1), Amount: 300000, Income: true, CategoryID: &salary.ID},
		{AccountID: cash.ID, Date: usecasetest.Date(2024, time.March, 2), Amount: 2500, CategoryID: &groceries.ID},
		{AccountID: travel.ID, Date: usecasetest.Date(2024, time.March, 3), Amount: 1100, CategoryID: &groceries.ID},
	}
	for _, f := range inputs {
		_, err := create.Execute(ctx, transaction.CreateTransactionInput{Fields: f})
		require.NoError(t, err)
	}

	summary := balance.NewGetPeriodSummaryUseCase(env.Store, env.Calc)
	out, err := summary.Execute(ctx, balance.GetPeriodSummaryInput{PeriodID: march.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, out.MissingRates)
	assert.Equal(t, entity.PeriodActual{Income: 300000, Expenses: 2500}, out.Actual)

	// 1 EUR = 1.10 USD, so 11.00 USD is 10.00 EUR.
	env.Rate(t, march, "EUR", "USD", 110)
	out, err = summary.Execute(ctx, balance.GetPeriodSummaryInput{PeriodID: march.ID})
	require.NoError(t, err)
	assert.Zero(t, out.MissingRates)
	assert.Equal(t, entity.PeriodActual{Income: 300000, Expenses: 3500}, out.Actual)

	for _, line := range out.Categories {
		if line.CategoryID == groceries.ID {
			assert.Equal(t, int64(-3500), line.Balance)
			assert.Equal(t, int64(-3500), line.Remaining)
		}
	}
}

func TestGetPeriodActuals_ReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	salary := env.Category(t, "Salary", entity.CategoryTypeIncome)
	march := env.Period(t, 2024, 3)

	actuals := balance.NewGetPeriodActualsUseCase(env.Store, env.Cache, env.Calc)
	out, err := actuals.Execute(ctx, balance.GetPeriodActualsInput{PeriodID: march.ID})
	require.NoError(t, err)
	assert.Zero(t, out.Income)

	create := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	_, err = create.Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
		AccountID:  cash.ID,
		Date:       usecasetest.Date(2024, time.March, 25),
		Amount:     120000,
		Income:     true,
		CategoryID: &salary.ID,
	}})
	require.NoError(t, err)

	out, err = actuals.Execute(ctx, balance.GetPeriodActualsInput{PeriodID: march.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(120000), out.Income)
	assert.Equal(t, "EUR", out.Currency)
	env.RequireConsistent(t)
}

func TestGetAccountPeriodBalance(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	salary := env.Category(t, "Salary", entity.CategoryTypeIncome)

	create := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	for _, d := range []time.Time{usecasetest.Date(2024, time.March, 31), usecasetest.Date(2024, time.April, 1)} {
		_, err := create.Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
			AccountID:  cash.ID,
			Date:       d,
			Amount:     100,
			Income:     true,
			CategoryID: &salary.ID,
		}})
		require.NoError(t, err)
	}

	read := balance.NewGetAccountPeriodBalanceUseCase(env.Store, env.Cache, env.Calc)
	march, err := read.Execute(ctx, balance.GetAccountPeriodBalanceInput{AccountID: cash.ID, PeriodID: env.Period(t, 2024, 3).ID})
	require.NoError(t, err)
	april, err := read.Execute(ctx, balance.GetAccountPeriodBalanceInput{AccountID: cash.ID, PeriodID: env.Period(t, 2024, 4).ID})
	require.NoError(t, err)

	assert.Equal(t, int64(100), march.Amount)
	assert.Equal(t, int64(200), april.Amount)
	assert.Equal(t, "EUR", april.Currency)
}

func TestUpdater_BackdatedTransactionRefreshesLaterAccountRows(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	salary := env.Category(t, "Salary", entity.CategoryTypeIncome)
	read := balance.NewGetAccountPeriodBalanceUseCase(env.Store, env.Cache, env.Calc)

	months := []int{2, 4, 6}
	for _, m := range months {
		out, err := read.Execute(ctx, balance.GetAccountPeriodBalanceInput{AccountID: cash.ID, PeriodID: env.Period(t, 2024, m).ID})
		require.NoError(t, err)
		require.Zero(t, out.Amount)
	}

	create := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	_, err := create.Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
		AccountID:  cash.ID,
		Date:       usecasetest.Date(2024, time.March, 15),
		Amount:     250,
		Income:     true,
		CategoryID: &salary.ID,
	}})
	require.NoError(t, err)

	rows, err := env.Store.Balances().FindByAccount(ctx, cash.ID)
	require.NoError(t, err)
	require.Len(t, rows, len(months))
	want := map[uuid.UUID]int64{
		env.Period(t, 2024, 2).ID: 0,
		env.Period(t, 2024, 4).ID: 250,
		env.Period(t, 2024, 6).ID: 250,
	}
	for _, row := range rows {
		value, ok := row.Value.(entity.AccountBalance)
		require.True(t, ok)
		assert.Equal(t, want[row.PeriodID], value.Amount)
	}
	env.RequireConsistent(t)
}
