package balance

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Cache serves cached balance rows, creating a missing row on first read.
type Cache struct {
	store adapter.Store
	lock  adapter.MutationLock
	calc  *Calculator
}

// NewCache creates a new Cache.
func NewCache(store adapter.Store, lock adapter.MutationLock, calc *Calculator) *Cache {
	return &Cache{
		store: store,
		lock:  lock,
		calc:  calc,
	}
}

// Get returns the row of scope in the period. A missing row is computed and
// inserted under the mutation lock, so it cannot interleave with a mutation.
func (c *Cache) Get(ctx context.Context, period *entity.Period, scope entity.BalanceScope) (*entity.Balance, error) {
	row, err := c.store.Balances().Find(ctx, period.ID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to find cached balance: %w", err)
	}
	if row != nil {
		return row, nil
	}

	unlock, err := c.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// Another reader may have created it while we waited.
	row, err = c.store.Balances().Find(ctx, period.ID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to find cached balance: %w", err)
	}
	if row != nil {
		return row, nil
	}

	value, err := c.calc.Value(ctx, c.store, period, scope)
	if err != nil {
		return nil, err
	}
	row = entity.NewBalance(period.ID, value)
	if err := c.store.Balances().Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create cached balance: %w", err)
	}
	return row, nil
}
