package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

type fixture struct {
	env    *usecasetest.Env
	create *transaction.CreateTransactionUseCase
	update *transaction.UpdateTransactionUseCase
	delete *transaction.DeleteTransactionUseCase
}

func newFixture(t *testing.T) *fixture {
	env := usecasetest.New(t)
	return &fixture{
		env:    env,
		create: transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings),
		update: transaction.NewUpdateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings),
		delete: transaction.NewDeleteTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings),
	}
}

// warm creates the cache row of scope through a read.
func (f *fixture) warm(t *testing.T, period *entity.Period, scope entity.BalanceScope) {
	t.Helper()
	_, err := f.env.Cache.Get(context.Background(), period, scope)
	require.NoError(t, err)
}

func (f *fixture) cachedAmount(t *testing.T, period *entity.Period, scope entity.BalanceScope) int64 {
	t.Helper()
	row := f.env.Cached(t, period, scope)
	require.NotNil(t, row)
	switch v := row.Value.(type) {
	case entity.AccountBalance:
		return v.Amount
	case entity.CategoryBalance:
		return v.Amount
	}
	t.Fatalf("row of kind %s has no single amount", row.Value.Kind())
	return 0
}

func spend(accountID, categoryID uuid.UUID, date time.Time, amount int64) transaction.Fields {
	return transaction.Fields{
		AccountID:  accountID,
		Date:       date,
		Amount:     amount,
		CategoryID: &categoryID,
	}
}

func codeOf(err error) domainerror.ErrorCode {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Code
	}
	return ""
}

func TestCreateTransaction_UpdatesCachedCategoryBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cash := f.env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	groceries := f.env.Category(t, "Groceries", entity.CategoryTypeExpense)
	march := f.env.Period(t, 2024, 3)

	read := balance.NewGetCategoryBalanceUseCase(f.env.Store, f.env.Cache, f.env.Calc)
	before, err := read.Execute(ctx, balance.GetCategoryBalanceInput{CategoryID: groceries.ID, PeriodID: march.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), before.Amount)

	out, err := f.create.Execute(ctx, transaction.CreateTransactionInput{
		Fields: spend(cash.ID, groceries.ID, usecasetest.Date(2024, time.March, 10), 2500),
	})
	require.NoError(t, err)
	assert.Equal(t, march.ID, out.Transaction.PeriodID)

	assert.Equal(t, int64(-2500), f.cachedAmount(t, march, entity.CategoryScope(groceries.ID)))
	after, err := read.Execute(ctx, balance.GetCategoryBalanceInput{CategoryID: groceries.ID, PeriodID: march.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(-2500), after.Amount)
	f.env.RequireConsistent(t)
}

func TestUpdateTransaction_RefreshesOldAndNewRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cash := f.env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	groceries := f.env.Category(t, "Groceries", entity.CategoryTypeExpense)
	dining := f.env.Category(t, "Dining", entity.CategoryTypeExpense)
	march := f.env.Period(t, 2024, 3)
	april := f.env.Period(t, 2024, 4)

	for _, p := range []*entity.Period{march, april} {
		f.warm(t, p, entity.CategoryScope(groceries.ID))
		f.warm(t, p, entity.CategoryScope(dining.ID))
		f.warm(t, p, entity.AccountScope(cash.ID))
		f.warm(t, p, entity.PeriodActualScope())
	}

	created, err := f.create.Execute(ctx, transaction.CreateTransactionInput{
		Fields: spend(cash.ID, groceries.ID, usecasetest.Date(2024, time.March, 10), 2500),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-2500), f.cachedAmount(t, march, entity.AccountScope(cash.ID)))
	assert.Equal(t, int64(-2500), f.cachedAmount(t, april, entity.AccountScope(cash.ID)))

	_, err = f.update.Execute(ctx, transaction.UpdateTransactionInput{
		ID:     created.Transaction.ID,
		Fields: spend(cash.ID, dining.ID, usecasetest.Date(2024, time.April, 2), 1000),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), f.cachedAmount(t, march, entity.CategoryScope(groceries.ID)))
	assert.Equal(t, int64(-1000), f.cachedAmount(t, april, entity.CategoryScope(dining.ID)))
	assert.Equal(t, int64(0), f.cachedAmount(t, march, entity.AccountScope(cash.ID)))
	assert.Equal(t, int64(-1000), f.cachedAmount(t, april, entity.AccountScope(cash.ID)))

	actual := f.env.Cached(t, april, entity.PeriodActualScope())
	require.NotNil(t, actual)
	assert.Equal(t, entity.PeriodActual{Income: 0, Expenses: 1000}, actual.Value)
	f.env.RequireConsistent(t)
}

func TestDeleteTransaction_RevertsCachedRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cash := f.env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	groceries := f.env.Category(t, "Groceries", entity.CategoryTypeExpense)
	march := f.env.Period(t, 2024, 3)
	f.warm(t, march, entity.CategoryScope(groceries.ID))

	created, err := f.create.Execute(ctx, transaction.CreateTransactionInput{
		Fields: spend(cash.ID, groceries.ID, usecasetest.Date(2024, time.March, 10), 2500),
	})
	require.NoError(t, err)

	require.NoError(t, f.delete.Execute(ctx, transaction.DeleteTransactionInput{ID: created.Transaction.ID}))
	assert.Equal(t, int64(0), f.cachedAmount(t, march, entity.CategoryScope(groceries.ID)))

	err = f.delete.Execute(ctx, transaction.DeleteTransactionInput{ID: created.Transaction.ID})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))
	f.env.RequireConsistent(t)
}

func TestCreateTransaction_PropagatesToLaterAccountRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cash := f.env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	salary := f.env.Category(t, "Salary", entity.CategoryTypeIncome)
	feb := f.env.Period(t, 2024, 2)
	march := f.env.Period(t, 2024, 3)
	may := f.env.Period(t, 2024, 5)
	for _, p := range []*entity.Period{feb, march, may} {
		f.warm(t, p, entity.AccountScope(cash.ID))
	}

	fields := spend(cash.ID, salary.ID, usecasetest.Date(2024, time.March, 31), 10000)
	fields.Income = true
	_, err := f.create.Execute(ctx, transaction.CreateTransactionInput{Fields: fields})
	require.NoError(t, err)

	assert.Equal(t, int64(0), f.cachedAmount(t, feb, entity.AccountScope(cash.ID)))
	assert.Equal(t, int64(10000), f.cachedAmount(t, march, entity.AccountScope(cash.ID)))
	assert.Equal(t, int64(10000), f.cachedAmount(t, may, entity.AccountScope(cash.ID)))
	f.env.RequireConsistent(t)
}

func TestCreateTransaction_Transfers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cash := f.env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	checking := f.env.Account(t, "Checking", "EUR", entity.AccountTypeBudget)
	pension := f.env.Account(t, "Pension", "EUR", entity.AccountTypeExternal)
	saving := f.env.Category(t, "Saving", entity.CategoryTypeExpense)
	march := f.env.Period(t, 2024, 3)
	f.warm(t, march, entity.CategoryScope(saving.ID))
	date := usecasetest.Date(2024, time.March, 5)

	// Leaving the budget counts against the category.
	out, err := f.create.Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
		AccountID:   cash.ID,
		Date:        date,
		Amount:      5000,
		Transfer:    true,
		ToAccountID: &pension.ID,
		CategoryID:  &saving.ID,
	}})
	require.NoError(t, err)
	assert.False(t, out.Transaction.Income)
	assert.Equal(t, int64(-5000), f.cachedAmount(t, march, entity.CategoryScope(saving.ID)))

	// Moving money inside the budget nets to zero and drops the category.
	inside, err := f.create.Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
		AccountID:   cash.ID,
		Date:        date,
		Amount:      700,
		Transfer:    true,
		ToAccountID: &checking.ID,
		CategoryID:  &saving.ID,
	}})
	require.NoError(t, err)
	assert.Nil(t, inside.Transaction.CategoryID)
	assert.Equal(t, int64(-5000), f.cachedAmount(t, march, entity.CategoryScope(saving.ID)))

	accountBalance := balance.NewGetAccountBalanceUseCase(f.env.Store, f.env.Calc)
	for account, want := range map[uuid.UUID]int64{cash.ID: -5700, checking.ID: 700, pension.ID: 5000} {
		got, err := accountBalance.Execute(ctx, balance.GetAccountBalanceInput{AccountID: account, AsOf: date})
		require.NoError(t, err)
		assert.Equal(t, want, got.Amount)
	}
	f.env.RequireConsistent(t)
}

func TestCreateTransaction_CrossCurrencyTransferNeedsReceivedAmount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cash := f.env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	savings := f.env.Account(t, "Savings", "SEK", entity.AccountTypeBudget)

	fields := transaction.Fields{
		AccountID:   cash.ID,
		Date:        usecasetest.Date(2024, time.March, 5),
		Amount:      1000,
		Transfer:    true,
		ToAccountID: &savings.ID,
	}
	_, err := f.create.Execute(ctx, transaction.CreateTransactionInput{Fields: fields})
	assert.Equal(t, domainerror.ErrCodeTransferAmountTo, codeOf(err))

	received := int64(11000)
	fields.AmountTo = &received
	_, err = f.create.Execute(ctx, transaction.CreateTransactionInput{Fields: fields})
	require.NoError(t, err)

	got, err := f.env.Calc.Account(ctx, f.env.Store, savings.ID, usecasetest.Date(2024, time.March, 31))
	require.NoError(t, err)
	assert.Equal(t, int64(11000), got)
}

func TestCreateTransaction_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cash := f.env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	groceries := f.env.Category(t, "Groceries", entity.CategoryTypeExpense)
	alice := f.env.Payee(t, "Alice")
	march := usecasetest.Date(2024, time.March, 10)

	tests := []struct {
		name   string
		modify func(*transaction.Fields)
		code   domainerror.ErrorCode
		kind   domainerror.ErrorKind
	}{
		{
			name:   "zero amount",
			modify: func(f *transaction.Fields) { f.Amount = 0 },
			code:   domainerror.ErrCodeInvalidTransactionAmount,
			kind:   domainerror.KindValidation,
		},
		{
			name:   "currency differs from account",
			modify: func(f *transaction.Fields) { f.Currency = "USD" },
			code:   domainerror.ErrCodeCurrencyMismatch,
			kind:   domainerror.KindValidation,
		},
		{
			name: "transfer to the same account",
			modify: func(f *transaction.Fields) {
				f.Transfer = true
				f.ToAccountID = &cash.ID
			},
			code: domainerror.ErrCodeInvalidTransfer,
			kind: domainerror.KindValidation,
		},
		{
			name:   "budget transaction without category",
			modify: func(f *transaction.Fields) { f.CategoryID = nil },
			code:   domainerror.ErrCodeCategoryRequired,
			kind:   domainerror.KindValidation,
		},
		{
			name:   "debtor without expense flag",
			modify: func(f *transaction.Fields) { f.DebtorID = &alice.ID },
			code:   domainerror.ErrCodeDebtorWithoutExpense,
			kind:   domainerror.KindValidation,
		},
		{
			name:   "date outside generated periods",
			modify: func(f *transaction.Fields) { f.Date = usecasetest.Date(2031, time.January, 1) },
			code:   domainerror.ErrCodePeriodForDateMissing,
			kind:   domainerror.KindNotFound,
		},
		{
			name:   "unknown account",
			modify: func(f *transaction.Fields) { f.AccountID = uuid.New() },
			code:   domainerror.ErrCodeAccountNotFound,
			kind:   domainerror.KindNotFound,
		},
		{
			name: "unsupported recurrence",
			modify: func(f *transaction.Fields) {
				f.Recurring = true
				f.RecurrenceUnit = "weekly"
			},
			code: domainerror.ErrCodeInvalidRecurrence,
			kind: domainerror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := spend(cash.ID, groceries.ID, march, 2500)
			tt.modify(&fields)

			_, err := f.create.Execute(ctx, transaction.CreateTransactionInput{Fields: fields})
			require.Error(t, err)
			assert.Equal(t, tt.code, codeOf(err))
			assert.True(t, domainerror.IsKind(err, tt.kind))
		})
	}

	n, err := f.env.Store.Transactions().Count(ctx, adapter.TransactionFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateTransaction_ImportedMayStayUncategorised(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cash := f.env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)

	out, err := f.create.Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
		AccountID: cash.ID,
		Date:      usecasetest.Date(2024, time.March, 10),
		Amount:    999,
		Imported:  true,
	}})
	require.NoError(t, err)
	assert.Nil(t, out.Transaction.CategoryID)
	assert.Equal(t, "EUR", out.Transaction.Currency)
	assert.True(t, out.Transaction.Posted)
}
