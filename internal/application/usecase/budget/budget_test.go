package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestCategoryBudget_RemainingAfterSpend(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	groceries := env.Category(t, "Groceries", entity.CategoryTypeExpense)
	march := env.Period(t, 2024, 3)

	_, err := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings).
		Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
			AccountID:  cash.ID,
			Date:       usecasetest.Date(2024, time.March, 15),
			Amount:     2500,
			CategoryID: &groceries.ID,
		}})
	require.NoError(t, err)

	_, err = budget.NewCreateBudgetUseCase(env.Store, env.Lock, env.Settings).Execute(ctx, budget.CreateBudgetInput{
		PeriodID:   march.ID,
		CategoryID: groceries.ID,
		Amount:     10000,
	})
	require.NoError(t, err)

	out, err := budget.NewGetCategoryBudgetUseCase(env.Store, env.Cache, env.Settings).Execute(ctx, budget.CategoryBudgetInput{
		CategoryID: groceries.ID,
		PeriodID:   march.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), out.Budget)
	assert.Equal(t, int64(-2500), out.Balance)
	assert.Equal(t, int64(7500), out.Remaining)
}

func TestCreateBudget_RowsAccumulate(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	groceries := env.Category(t, "Groceries", entity.CategoryTypeExpense)
	salary := env.Category(t, "Salary", entity.CategoryTypeIncome)
	march := env.Period(t, 2024, 3)
	create := budget.NewCreateBudgetUseCase(env.Store, env.Lock, env.Settings)

	var last *budget.CreateBudgetOutput
	for _, amount := range []int64{1000, 500, -200} {
		var err error
		last, err = create.Execute(ctx, budget.CreateBudgetInput{PeriodID: march.ID, CategoryID: groceries.ID, Amount: amount})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1300), last.Total)

	_, err := create.Execute(ctx, budget.CreateBudgetInput{PeriodID: march.ID, CategoryID: salary.ID, Amount: 250000})
	require.NoError(t, err)

	totals, err := budget.NewGetPeriodBudgetsUseCase(env.Store, env.Settings).Execute(ctx, march.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1300), totals.Expenses)
	assert.Equal(t, int64(250000), totals.Income)

	require.NoError(t, budget.NewDeleteBudgetUseCase(env.Store, env.Lock).Execute(ctx, last.Budget.ID))
	totals, err = budget.NewGetPeriodBudgetsUseCase(env.Store, env.Settings).Execute(ctx, march.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), totals.Expenses)
}

func TestCreateBudget_UnknownReferences(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	groceries := env.Category(t, "Groceries", entity.CategoryTypeExpense)
	create := budget.NewCreateBudgetUseCase(env.Store, env.Lock, env.Settings)

	_, err := create.Execute(ctx, budget.CreateBudgetInput{PeriodID: groceries.ID, CategoryID: groceries.ID, Amount: 1})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))
}
