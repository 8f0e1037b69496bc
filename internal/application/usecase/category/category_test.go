package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	march := env.Period(t, 2024, 3)

	group, err := category.NewCreateGroupUseCase(env.Store, env.Lock).Execute(ctx, category.CreateGroupInput{Name: "Living"})
	require.NoError(t, err)

	create := category.NewCreateCategoryUseCase(env.Store, env.Lock)
	rent, err := create.Execute(ctx, category.CreateCategoryInput{Name: "Rent", Type: entity.CategoryTypeExpense, GroupID: &group.ID})
	require.NoError(t, err)
	food, err := create.Execute(ctx, category.CreateCategoryInput{Name: "Food", Type: entity.CategoryTypeExpense, GroupID: &group.ID})
	require.NoError(t, err)
	assert.Equal(t, rent.Category.Order+1, food.Category.Order)

	_, err = create.Execute(ctx, category.CreateCategoryInput{Name: "Bad", Type: "savings"})
	assert.True(t, domainerror.IsKind(err, domainerror.KindValidation))

	_, err = budget.NewCreateBudgetUseCase(env.Store, env.Lock, env.Settings).Execute(ctx, budget.CreateBudgetInput{
		PeriodID:   march.ID,
		CategoryID: food.Category.ID,
		Amount:     500,
	})
	require.NoError(t, err)
	_, err = env.Cache.Get(ctx, march, entity.CategoryScope(food.Category.ID))
	require.NoError(t, err)

	require.NoError(t, category.NewDeleteCategoryUseCase(env.Store, env.Lock).Execute(ctx, category.DeleteCategoryInput{ID: food.Category.ID}))
	budgets, err := env.Store.Budgets().FindByPeriod(ctx, march.ID)
	require.NoError(t, err)
	assert.Empty(t, budgets)
	assert.Nil(t, env.Cached(t, march, entity.CategoryScope(food.Category.ID)))

	require.NoError(t, category.NewDeleteGroupUseCase(env.Store, env.Lock).Execute(ctx, group.ID))
	listed, err := category.NewListCategoriesUseCase(env.Store).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, listed.Categories, 1)
	assert.Nil(t, listed.Categories[0].GroupID)
	assert.Empty(t, listed.Groups)
}

func TestCategory_InUse(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	groceries := env.Category(t, "Groceries", entity.CategoryTypeExpense)

	_, err := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings).
		Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
			AccountID:  cash.ID,
			Date:       usecasetest.Date(2024, time.March, 1),
			Amount:     100,
			CategoryID: &groceries.ID,
		}})
	require.NoError(t, err)

	err = category.NewDeleteCategoryUseCase(env.Store, env.Lock).Execute(ctx, category.DeleteCategoryInput{ID: groceries.ID})
	assert.True(t, domainerror.IsKind(err, domainerror.KindIntegrityViolation))

	income := entity.CategoryTypeIncome
	_, err = category.NewUpdateCategoryUseCase(env.Store, env.Lock).Execute(ctx, category.UpdateCategoryInput{ID: groceries.ID, Type: &income})
	assert.True(t, domainerror.IsKind(err, domainerror.KindValidation))
}
