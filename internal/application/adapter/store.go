// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// Store is the persistence collaborator of the ledger. Repositories obtained from
// the Store passed to Atomic's callback write inside one commit.
type Store interface {
	Accounts() AccountRepository
	Categories() CategoryRepository
	CategoryGroups() CategoryGroupRepository
	Payees() PayeeRepository
	Periods() PeriodRepository
	Transactions() TransactionRepository
	Budgets() BudgetRepository
	FxRates() FxRateRepository
	Balances() BalanceRepository

	// Atomic runs fn inside one store transaction. Every change made through the
	// Store given to fn is committed together or not at all.
	Atomic(ctx context.Context, fn func(tx Store) error) error
}

// MutationLock serialises ledger mutations.
type MutationLock interface {
	// Lock blocks until the lock is held or ctx is done. The returned function
	// releases the lock.
	Lock(ctx context.Context) (unlock func(), err error)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}
