// Package usecasetest wires use cases against an in-memory sqlite store for tests.
package usecasetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
	"github.com/finance-tracker/ledger/internal/integration/lock"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// FirstYear and LastYear bound the periods every Env starts with.
const (
	FirstYear = 2024
	LastYear  = 2025
)

// FixedClock is an adapter.Clock frozen at T.
type FixedClock struct {
	T time.Time
}

// Now implements adapter.Clock.
func (c *FixedClock) Now() time.Time { return c.T }

// Env bundles a store with the balance machinery shared by use cases.
type Env struct {
	Store    adapter.Store
	Lock     adapter.MutationLock
	Clock    *FixedClock
	Settings ledger.Settings
	Calc     *balance.Calculator
	Updater  *balance.Updater
	Cache    *balance.Cache

	periods map[int]*entity.Period
}

// New creates an Env with EUR as default currency, UTC dates and monthly
// periods for FirstYear through LastYear.
func New(t testing.TB) *Env {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	settings := ledger.Settings{DefaultCurrency: "EUR", Location: time.UTC}
	store := persistence.NewStore(db)
	mutationLock := lock.NewLocalLock()
	calc := balance.NewCalculator(settings)

	env := &Env{
		Store:    store,
		Lock:     mutationLock,
		Clock:    &FixedClock{T: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)},
		Settings: settings,
		Calc:     calc,
		Updater:  balance.NewUpdater(calc),
		Cache:    balance.NewCache(store, mutationLock, calc),
		periods:  make(map[int]*entity.Period),
	}

	var periods []*entity.Period
	for year := FirstYear; year <= LastYear; year++ {
		for month := 1; month <= 12; month++ {
			p := entity.NewPeriod(year, month, time.UTC)
			periods = append(periods, p)
			env.periods[p.Key()] = p
		}
	}
	require.NoError(t, store.Periods().CreateBatch(context.Background(), periods))
	return env
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Period returns the seeded period of a month.
func (e *Env) Period(t testing.TB, year, month int) *entity.Period {
	t.Helper()
	p, ok := e.periods[entity.PeriodKey(year, month)]
	require.True(t, ok, "no seeded period %d-%02d", year, month)
	return p
}

// Account stores a new account.
func (e *Env) Account(t testing.TB, name, currency string, accountType entity.AccountType) *entity.Account {
	t.Helper()
	a := entity.NewAccount(name, currency, accountType, 0)
	require.NoError(t, e.Store.Accounts().Create(context.Background(), a))
	return a
}

// Category stores a new category.
func (e *Env) Category(t testing.TB, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()
	c := entity.NewCategory(name, categoryType, nil, 0)
	require.NoError(t, e.Store.Categories().Create(context.Background(), c))
	return c
}

// Payee stores a new payee.
func (e *Env) Payee(t testing.TB, name string) *entity.Payee {
	t.Helper()
	p := entity.NewPayee(name, 0)
	require.NoError(t, e.Store.Payees().Create(context.Background(), p))
	return p
}

// Rate stores an fx rate without refreshing cached balances.
func (e *Env) Rate(t testing.TB, period *entity.Period, currency1, currency2 string, rate int64) *entity.FxRate {
	t.Helper()
	r := entity.NewFxRate(period, currency1, currency2, rate)
	require.NoError(t, e.Store.FxRates().Create(context.Background(), r))
	return r
}

// Cached returns the stored cache row of scope, or nil.
func (e *Env) Cached(t testing.TB, period *entity.Period, scope entity.BalanceScope) *entity.Balance {
	t.Helper()
	row, err := e.Store.Balances().Find(context.Background(), period.ID, scope)
	require.NoError(t, err)
	return row
}

// RequireConsistent checks every stored cache row against a fresh computation.
func (e *Env) RequireConsistent(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	for _, p := range e.periods {
		rows, err := e.Store.Balances().FindByPeriod(ctx, p.ID)
		require.NoError(t, err)
		for _, row := range rows {
			fresh, err := e.Calc.Value(ctx, e.Store, p, entity.ScopeOf(row.Value))
			require.NoError(t, err)
			require.Equal(t, fresh, row.Value, "stale %s row in %s", row.Value.Kind(), p.Label)
		}
	}
}
