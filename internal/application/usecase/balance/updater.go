package balance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// Updater keeps existing cached rows consistent with the transaction log.
// It only overwrites rows that already exist; rows are created by Cache on read.
// Callers run it with the Store of the mutation's Atomic block.
type Updater struct {
	calc *Calculator
}

// NewUpdater creates a new Updater.
func NewUpdater(calc *Calculator) *Updater {
	return &Updater{calc: calc}
}

type periodCategory struct {
	periodID   uuid.UUID
	categoryID uuid.UUID
}

// TransactionsChanged refreshes the rows affected by the given versions of a
// transaction. Pass the stored version before the change and the version after
// it; a nil version is skipped.
func (u *Updater) TransactionsChanged(ctx context.Context, s adapter.Store, idx *ledger.PeriodIndex, versions ...*entity.Transaction) error {
	categories := make(map[periodCategory]bool)
	periods := make(map[uuid.UUID]bool)
	// earliest affected period per account
	accounts := make(map[uuid.UUID]*entity.Period)

	touchAccount := func(id uuid.UUID, p *entity.Period) {
		if current, ok := accounts[id]; !ok || p.Key() < current.Key() {
			accounts[id] = p
		}
	}

	for _, tx := range versions {
		if tx == nil {
			continue
		}
		periods[tx.PeriodID] = true
		if tx.CategoryID != nil {
			categories[periodCategory{periodID: tx.PeriodID, categoryID: *tx.CategoryID}] = true
		}
		p, ok := idx.ByID(tx.PeriodID)
		if !ok {
			continue
		}
		touchAccount(tx.AccountID, p)
		if tx.ToAccountID != nil {
			touchAccount(*tx.ToAccountID, p)
		}
	}

	for key := range categories {
		p, ok := idx.ByID(key.periodID)
		if !ok {
			continue
		}
		if err := u.refresh(ctx, s, p, entity.CategoryScope(key.categoryID)); err != nil {
			return err
		}
	}
	for periodID := range periods {
		p, ok := idx.ByID(periodID)
		if !ok {
			continue
		}
		if err := u.refresh(ctx, s, p, entity.PeriodActualScope()); err != nil {
			return err
		}
	}
	for accountID, from := range accounts {
		if err := u.refreshAccount(ctx, s, idx, accountID, from); err != nil {
			return err
		}
	}
	return nil
}

// RatesChanged refreshes the period's existing category and actual rows after its
// exchange rates changed. Account rows are native-currency and stay untouched.
func (u *Updater) RatesChanged(ctx context.Context, s adapter.Store, period *entity.Period) error {
	rows, err := s.Balances().FindByPeriod(ctx, period.ID)
	if err != nil {
		return fmt.Errorf("failed to load period balances: %w", err)
	}
	for _, row := range rows {
		var scope entity.BalanceScope
		switch v := row.Value.(type) {
		case entity.CategoryBalance:
			scope = entity.CategoryScope(v.CategoryID)
		case entity.PeriodActual:
			scope = entity.PeriodActualScope()
		default:
			continue
		}
		value, err := u.calc.Value(ctx, s, period, scope)
		if err != nil {
			return err
		}
		if err := overwrite(ctx, s, row, value); err != nil {
			return err
		}
	}
	return nil
}

func (u *Updater) refresh(ctx context.Context, s adapter.Store, period *entity.Period, scope entity.BalanceScope) error {
	row, err := s.Balances().Find(ctx, period.ID, scope)
	if err != nil {
		return fmt.Errorf("failed to find cached balance: %w", err)
	}
	if row == nil {
		return nil
	}
	value, err := u.calc.Value(ctx, s, period, scope)
	if err != nil {
		return err
	}
	return overwrite(ctx, s, row, value)
}

// refreshAccount recomputes the account's rows of every period from the given
// one on, in calendar order. The account's transactions are loaded once for all rows.
func (u *Updater) refreshAccount(ctx context.Context, s adapter.Store, idx *ledger.PeriodIndex, accountID uuid.UUID, from *entity.Period) error {
	rows, err := s.Balances().FindByAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to load account balances: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	byPeriod := make(map[uuid.UUID]*entity.Balance, len(rows))
	for _, row := range rows {
		byPeriod[row.PeriodID] = row
	}

	txs, err := u.calc.accountTransactions(ctx, s, accountID)
	if err != nil {
		return err
	}
	loc := u.calc.settings.Loc()
	for _, p := range idx.From(from) {
		row, ok := byPeriod[p.ID]
		if !ok {
			continue
		}
		value := entity.AccountBalance{
			AccountID: accountID,
			Amount:    ledger.AccountBalance(accountID, txs, p.End(), loc),
		}
		if err := overwrite(ctx, s, row, value); err != nil {
			return err
		}
	}
	return nil
}

func overwrite(ctx context.Context, s adapter.Store, row *entity.Balance, value entity.BalanceValue) error {
	if row.Value == value {
		return nil
	}
	row.Value = value
	row.Modified = time.Now().UTC()
	if err := s.Balances().Overwrite(ctx, row); err != nil {
		return fmt.Errorf("failed to overwrite cached balance: %w", err)
	}
	slog.Debug("Cached balance updated", "balance_id", row.ID, "period_id", row.PeriodID, "kind", value.Kind())
	return nil
}
