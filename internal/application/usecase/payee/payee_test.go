package payee_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/payee"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestCreatePayee_ChecksDefaults(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	groceries := env.Category(t, "Groceries", entity.CategoryTypeExpense)
	create := payee.NewCreatePayeeUseCase(env.Store, env.Lock)

	out, err := create.Execute(ctx, payee.CreatePayeeInput{Name: "Market", DefaultCategoryID: &groceries.ID})
	require.NoError(t, err)
	assert.Equal(t, groceries.ID, *out.Payee.DefaultCategoryID)

	missing := uuid.New()
	_, err = create.Execute(ctx, payee.CreatePayeeInput{Name: "Other", DefaultCategoryID: &missing})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))

	_, err = create.Execute(ctx, payee.CreatePayeeInput{Name: ""})
	assert.True(t, domainerror.IsKind(err, domainerror.KindValidation))

	renamed := "Corner Market"
	updated, err := payee.NewUpdatePayeeUseCase(env.Store, env.Lock).Execute(ctx, payee.UpdatePayeeInput{ID: out.Payee.ID, Name: &renamed})
	require.NoError(t, err)
	assert.Equal(t, "Corner Market", updated.Name)
}

func TestDeletePayee_ReferencedAsDebtor(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	alice := env.Payee(t, "Alice")
	bob := env.Payee(t, "Bob")

	_, err := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings).
		Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
			AccountID: cash.ID,
			Date:      usecasetest.Date(2024, time.March, 1),
			Amount:    100,
			Expense:   true,
			DebtorID:  &alice.ID,
		}})
	require.NoError(t, err)

	remove := payee.NewDeletePayeeUseCase(env.Store, env.Lock)
	err = remove.Execute(ctx, alice.ID)
	assert.True(t, domainerror.IsKind(err, domainerror.KindIntegrityViolation))

	require.NoError(t, remove.Execute(ctx, bob.ID))
	payees, err := payee.NewListPayeesUseCase(env.Store.Payees()).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, payees, 1)
	assert.Equal(t, "Alice", payees[0].Name)
}

func TestInsert_OrdersAfterExisting(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	create := payee.NewCreatePayeeUseCase(env.Store, env.Lock)
	first, err := create.Execute(ctx, payee.CreatePayeeInput{Name: "Market"})
	require.NoError(t, err)

	a, err := payee.Pending("  Bakery ")
	require.NoError(t, err)
	assert.Equal(t, "Bakery", a.Name)
	b, err := payee.Pending("Butcher")
	require.NoError(t, err)
	_, err = payee.Pending("")
	assert.True(t, domainerror.IsKind(err, domainerror.KindValidation))

	require.NoError(t, payee.Insert(ctx, env.Store, a, b))
	assert.Greater(t, a.Order, first.Payee.Order)
	assert.Greater(t, b.Order, a.Order)

	stored, err := env.Store.Payees().FindByName(ctx, "Butcher")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, b.ID, stored.ID)
}
