// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionFilter defines filter options for querying transactions.
// AccountID matches both source and destination accounts; PayeeID matches both
// the payee and the debtor.
type TransactionFilter struct {
	PeriodID   *uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	PayeeID    *uuid.UUID
	DebtorID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	ExternalID string
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions sorted by date then creation time.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Count counts the transactions matching the filter.
	Count(ctx context.Context, filter TransactionFilter) (int64, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
