package bankimport_test

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/bankimport"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

type fixture struct {
	env      *usecasetest.Env
	account  *entity.Account
	importer *bankimport.ImportRecordsUseCase
	create   *transaction.CreateTransactionUseCase
}

func newFixture(t *testing.T) *fixture {
	env := usecasetest.New(t)
	account := entity.NewAccount("Checking", "EUR", entity.AccountTypeBudget, 0)
	account.ExternalID = "acc-1"
	require.NoError(t, env.Store.Accounts().Create(context.Background(), account))

	create := transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings)
	importer := bankimport.NewImportRecordsUseCase(
		env.Store,
		env.Lock,
		env.Clock,
		create,
		env.Settings,
		7,
	)
	return &fixture{env: env, account: account, importer: importer, create: create}
}

func record(date, amount, display, providerID string) bankimport.Record {
	return bankimport.Record{
		AccountExternalID:  "acc-1",
		BookedDate:         date,
		Amount:             decimal.RequireFromString(amount),
		Currency:           "EUR",
		DisplayDescription: display,
		ProviderID:         providerID,
		Status:             bankimport.StatusBooked,
	}
}

func TestImportRecords(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	groceries := f.env.Category(t, "Groceries", entity.CategoryTypeExpense)
	market := entity.NewPayee("Supermarket", 0)
	market.DefaultCategoryID = &groceries.ID
	require.NoError(t, f.env.Store.Payees().Create(ctx, market))

	salary := record("2024-03-16", "100.00", "Employer Ltd", "p2")
	salary.OriginalDescription = "EMPLOYER LTD SALARY MAR"
	salary.Status = "pending"

	records := []bankimport.Record{
		record("2024-03-15", "-25.00", "Supermarket", "p1"),
		record("2024-03-01", "-3.00", "Bakery", "p0"),
		salary,
		record("2024-03-15", "-25.00", "Supermarket", "p1"),
	}

	out, err := f.importer.Execute(ctx, bankimport.ImportInput{Records: records})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Imported)
	assert.Equal(t, 1, out.OutOfWindow)
	assert.Equal(t, 1, out.Duplicates)

	spent := out.Transactions[0]
	assert.Equal(t, int64(2500), spent.Amount)
	assert.False(t, spent.Income)
	require.NotNil(t, spent.CategoryID)
	assert.Equal(t, groceries.ID, *spent.CategoryID)
	assert.Equal(t, market.ID, *spent.PayeeID)
	assert.True(t, spent.Posted)

	earned := out.Transactions[1]
	assert.True(t, earned.Income)
	assert.Nil(t, earned.CategoryID)
	assert.False(t, earned.Posted)
	assert.Equal(t, "EMPLOYER LTD SALARY MAR", earned.Memo)
	employer, err := f.env.Store.Payees().FindByName(ctx, "Employer Ltd")
	require.NoError(t, err)
	require.NotNil(t, employer)
	assert.Equal(t, employer.ID, *earned.PayeeID)

	refreshed, err := f.env.Store.Accounts().FindByID(ctx, f.account.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed.LastRefresh)
	assert.True(t, refreshed.LastRefresh.Equal(f.env.Clock.T))

	again, err := f.importer.Execute(ctx, bankimport.ImportInput{Records: records})
	require.NoError(t, err)
	assert.Zero(t, again.Imported)
	assert.Equal(t, 3, again.Duplicates)

	n, err := f.env.Store.Transactions().Count(ctx, adapter.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestImportRecords_MatchesExistingWithoutProviderID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	groceries := f.env.Category(t, "Groceries", entity.CategoryTypeExpense)
	market := f.env.Payee(t, "Supermarket")

	_, err := f.create.Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
		AccountID:  f.account.ID,
		Date:       usecasetest.Date(2024, time.March, 17),
		Amount:     1000,
		PayeeID:    &market.ID,
		CategoryID: &groceries.ID,
	}})
	require.NoError(t, err)

	out, err := f.importer.Execute(ctx, bankimport.ImportInput{Records: []bankimport.Record{
		record("2024-03-17", "-10.00", "Supermarket", ""),
		record("2024-03-17", "10.00", "Supermarket", ""),
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Duplicates)
	assert.Equal(t, 1, out.Imported)
	assert.True(t, out.Transactions[0].Income)
}

func TestImportRecords_LongMultibyteDescription(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec := record("2024-03-17", "-4.20", strings.Repeat("é", 200), "")
	rec.OriginalDescription = strings.Repeat("ü", 300)

	out, err := f.importer.Execute(ctx, bankimport.ImportInput{Records: []bankimport.Record{rec}})
	require.NoError(t, err)
	require.Equal(t, 1, out.Imported)
	memo := out.Transactions[0].Memo
	assert.True(t, utf8.ValidString(memo))
	assert.LessOrEqual(t, len(memo), transaction.MaxMemoLength)

	payees, err := f.env.Store.Payees().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, payees, 1)
	assert.True(t, utf8.ValidString(payees[0].Name))
	assert.Equal(t, strings.Repeat("é", 127), payees[0].Name)

	again, err := f.importer.Execute(ctx, bankimport.ImportInput{Records: []bankimport.Record{rec}})
	require.NoError(t, err)
	assert.Equal(t, 0, again.Imported)
	assert.Equal(t, 1, again.Duplicates)

	payees, err = f.env.Store.Payees().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, payees, 1)
	n, err := f.env.Store.Transactions().Count(ctx, adapter.TransactionFilter{AccountID: &f.account.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestImportRecords_UsesLastRefreshForWindow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	last := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
	f.account.LastRefresh = &last
	require.NoError(t, f.env.Store.Accounts().Update(ctx, f.account))

	out, err := f.importer.Execute(ctx, bankimport.ImportInput{Records: []bankimport.Record{
		record("2024-02-26", "-1.00", "Kiosk", "k1"),
		record("2024-02-27", "-1.00", "Kiosk", "k2"),
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, out.OutOfWindow)
	assert.Equal(t, 1, out.Imported)
}

func TestImportRecords_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	unknown := record("2024-03-15", "-1.00", "Kiosk", "x")
	unknown.AccountExternalID = "nope"
	_, err := f.importer.Execute(ctx, bankimport.ImportInput{Records: []bankimport.Record{unknown}})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))

	_, err = f.importer.Execute(ctx, bankimport.ImportInput{Records: []bankimport.Record{record("15/03/2024", "-1.00", "Kiosk", "y")}})
	assert.True(t, domainerror.IsKind(err, domainerror.KindValidation))

	wrongCurrency := record("2024-03-15", "-1.00", "Kiosk", "z")
	wrongCurrency.Currency = "USD"
	out, err := f.importer.Execute(ctx, bankimport.ImportInput{Records: []bankimport.Record{wrongCurrency}})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Rejected)

	payees, err := f.env.Store.Payees().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, payees, "a rejected record must not leave its payee behind")
}
