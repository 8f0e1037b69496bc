// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// store implements the adapter.Store interface over one gorm handle, which is
// either the connection pool or an open database transaction.
type store struct {
	db *gorm.DB

	accounts       adapter.AccountRepository
	categories     adapter.CategoryRepository
	categoryGroups adapter.CategoryGroupRepository
	payees         adapter.PayeeRepository
	periods        adapter.PeriodRepository
	transactions   adapter.TransactionRepository
	budgets        adapter.BudgetRepository
	fxRates        adapter.FxRateRepository
	balances       adapter.BalanceRepository
}

// NewStore creates a store whose repositories share db.
func NewStore(db *gorm.DB) adapter.Store {
	return &store{
		db:             db,
		accounts:       NewAccountRepository(db),
		categories:     NewCategoryRepository(db),
		categoryGroups: NewCategoryGroupRepository(db),
		payees:         NewPayeeRepository(db),
		periods:        NewPeriodRepository(db),
		transactions:   NewTransactionRepository(db),
		budgets:        NewBudgetRepository(db),
		fxRates:        NewFxRateRepository(db),
		balances:       NewBalanceRepository(db),
	}
}

func (s *store) Accounts() adapter.AccountRepository             { return s.accounts }
func (s *store) Categories() adapter.CategoryRepository          { return s.categories }
func (s *store) CategoryGroups() adapter.CategoryGroupRepository { return s.categoryGroups }
func (s *store) Payees() adapter.PayeeRepository                 { return s.payees }
func (s *store) Periods() adapter.PeriodRepository               { return s.periods }
func (s *store) Transactions() adapter.TransactionRepository     { return s.transactions }
func (s *store) Budgets() adapter.BudgetRepository               { return s.budgets }
func (s *store) FxRates() adapter.FxRateRepository               { return s.fxRates }
func (s *store) Balances() adapter.BalanceRepository             { return s.balances }

// Atomic runs fn inside one database transaction. A nested call joins the outer
// transaction through a savepoint.
func (s *store) Atomic(ctx context.Context, fn func(tx adapter.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
