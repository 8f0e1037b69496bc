package ordering_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/ordering"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestReorder_MovesAccountToEnd(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)

	create := account.NewCreateAccountUseCase(env.Store, env.Lock)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := create.Execute(ctx, account.CreateAccountInput{Name: name, Currency: "EUR", Type: entity.AccountTypeBudget})
		require.NoError(t, err)
	}

	out, err := ordering.NewReorderUseCase(env.Store, env.Lock).Execute(ctx, ordering.ReorderInput{
		Entity: ordering.EntityAccounts,
		From:   1,
		To:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Changed)

	accounts, err := env.Store.Accounts().FindAll(ctx)
	require.NoError(t, err)
	names := make([]string, len(accounts))
	for i, a := range accounts {
		names[i] = a.Name
		assert.Equal(t, i, a.Order)
	}
	assert.Equal(t, []string{"A", "C", "D", "E", "B"}, names)
}

func TestReorder_RepairsDuplicateKeys(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, seed := range []struct {
		name  string
		order int
	}{{"P", 0}, {"Q", 1}, {"R", 1}, {"S", 2}} {
		p := entity.NewPayee(seed.name, seed.order)
		p.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, env.Store.Payees().Create(ctx, p))
	}

	_, err := ordering.NewReorderUseCase(env.Store, env.Lock).Execute(ctx, ordering.ReorderInput{
		Entity: ordering.EntityPayees,
		From:   3,
		To:     0,
	})
	require.NoError(t, err)

	payees, err := env.Store.Payees().FindAll(ctx)
	require.NoError(t, err)
	var names []string
	for i, p := range payees {
		names = append(names, p.Name)
		assert.Equal(t, i, p.Order)
	}
	assert.Equal(t, []string{"S", "P", "Q", "R"}, names)
}

func TestReorder_Rejects(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	env.Category(t, "Only", entity.CategoryTypeExpense)
	reorder := ordering.NewReorderUseCase(env.Store, env.Lock)

	_, err := reorder.Execute(ctx, ordering.ReorderInput{Entity: ordering.EntityCategories, From: 0, To: 3})
	assert.True(t, domainerror.IsKind(err, domainerror.KindValidation))

	_, err = reorder.Execute(ctx, ordering.ReorderInput{Entity: "transactions", From: 0, To: 0})
	assert.True(t, domainerror.IsKind(err, domainerror.KindValidation))
}
