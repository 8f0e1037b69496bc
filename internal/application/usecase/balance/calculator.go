// Package balance contains balance aggregation use cases and the cache
// maintenance shared by every ledger mutation.
package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// Calculator computes balances from the store. It never reads cached rows.
type Calculator struct {
	settings ledger.Settings
}

// NewCalculator creates a Calculator valuing amounts in the configured default currency.
func NewCalculator(settings ledger.Settings) *Calculator {
	return &Calculator{settings: settings}
}

// Settings returns the ledger settings the calculator values with.
func (c *Calculator) Settings() ledger.Settings {
	return c.settings
}

// Valuation loads the accounts and the period's rates.
func (c *Calculator) Valuation(ctx context.Context, s adapter.Store, periodID uuid.UUID) (*ledger.Valuation, error) {
	accounts, err := s.Accounts().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	rates, err := s.FxRates().FindByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fx rates: %w", err)
	}
	return ledger.NewValuation(c.settings.DefaultCurrency, accounts, ledger.NewFxTable(rates)), nil
}

// Category sums the category's transactions of the period.
func (c *Calculator) Category(ctx context.Context, s adapter.Store, periodID, categoryID uuid.UUID) (ledger.Totals, error) {
	txs, err := s.Transactions().FindByFilter(ctx, adapter.TransactionFilter{PeriodID: &periodID, CategoryID: &categoryID})
	if err != nil {
		return ledger.Totals{}, fmt.Errorf("failed to load category transactions: %w", err)
	}
	v, err := c.Valuation(ctx, s, periodID)
	if err != nil {
		return ledger.Totals{}, err
	}
	return v.CategoryBalance(categoryID, txs), nil
}

// PeriodActual sums income and spend of the period. The second result counts
// amounts left out for lack of a rate.
func (c *Calculator) PeriodActual(ctx context.Context, s adapter.Store, periodID uuid.UUID) (entity.PeriodActual, int, error) {
	txs, err := s.Transactions().FindByFilter(ctx, adapter.TransactionFilter{PeriodID: &periodID})
	if err != nil {
		return entity.PeriodActual{}, 0, fmt.Errorf("failed to load period transactions: %w", err)
	}
	categories, err := c.Categories(ctx, s)
	if err != nil {
		return entity.PeriodActual{}, 0, err
	}
	v, err := c.Valuation(ctx, s, periodID)
	if err != nil {
		return entity.PeriodActual{}, 0, err
	}
	actual, missing := v.PeriodActuals(txs, categories)
	return actual, missing, nil
}

// Account returns the native-currency balance of an account as of a date.
func (c *Calculator) Account(ctx context.Context, s adapter.Store, accountID uuid.UUID, asOf time.Time) (int64, error) {
	txs, err := c.accountTransactions(ctx, s, accountID)
	if err != nil {
		return 0, err
	}
	return ledger.AccountBalance(accountID, txs, asOf, c.settings.Loc()), nil
}

// Debt returns what the payee owes up to the end of the period.
func (c *Calculator) Debt(ctx context.Context, s adapter.Store, payeeID uuid.UUID, period *entity.Period) (int64, error) {
	txs, err := s.Transactions().FindByFilter(ctx, adapter.TransactionFilter{DebtorID: &payeeID})
	if err != nil {
		return 0, fmt.Errorf("failed to load debtor transactions: %w", err)
	}
	return ledger.DebtBalance(payeeID, txs, period.End(), c.settings.Loc()), nil
}

// Value computes the value a cached row of scope holds for the period.
func (c *Calculator) Value(ctx context.Context, s adapter.Store, period *entity.Period, scope entity.BalanceScope) (entity.BalanceValue, error) {
	switch scope.Kind {
	case entity.BalanceKindAccount:
		amount, err := c.Account(ctx, s, *scope.AccountID, period.End())
		if err != nil {
			return nil, err
		}
		return entity.AccountBalance{AccountID: *scope.AccountID, Amount: amount}, nil
	case entity.BalanceKindCategory:
		totals, err := c.Category(ctx, s, period.ID, *scope.CategoryID)
		if err != nil {
			return nil, err
		}
		return entity.CategoryBalance{CategoryID: *scope.CategoryID, Amount: totals.Minor()}, nil
	case entity.BalanceKindPeriodActual:
		actual, _, err := c.PeriodActual(ctx, s, period.ID)
		if err != nil {
			return nil, err
		}
		return actual, nil
	}
	return nil, fmt.Errorf("unknown balance kind %q", scope.Kind)
}

// Categories loads every category keyed by id.
func (c *Calculator) Categories(ctx context.Context, s adapter.Store) (map[uuid.UUID]*entity.Category, error) {
	categories, err := s.Categories().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}
	return byID, nil
}

func (c *Calculator) accountTransactions(ctx context.Context, s adapter.Store, accountID uuid.UUID) ([]*entity.Transaction, error) {
	txs, err := s.Transactions().FindByFilter(ctx, adapter.TransactionFilter{AccountID: &accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to load account transactions: %w", err)
	}
	return txs, nil
}
