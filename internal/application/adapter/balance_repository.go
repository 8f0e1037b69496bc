// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// BalanceRepository defines the interface for cached Balance rows.
type BalanceRepository interface {
	// Create inserts a new cached row.
	Create(ctx context.Context, balance *entity.Balance) error

	// Find returns the cached row of scope in the period, or nil when it is absent.
	Find(ctx context.Context, periodID uuid.UUID, scope entity.BalanceScope) (*entity.Balance, error)

	// FindByPeriod returns every cached row of the period.
	FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.Balance, error)

	// FindByAccount returns every cached account row of the account.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Balance, error)

	// Overwrite replaces the value of an existing row in place, keeping its id.
	Overwrite(ctx context.Context, balance *entity.Balance) error

	// DeleteByPeriod removes the rows owned by a period.
	DeleteByPeriod(ctx context.Context, periodID uuid.UUID) error

	// DeleteByScope removes the rows of an account or category in every period.
	DeleteByScope(ctx context.Context, scope entity.BalanceScope) error
}
