// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	Create(ctx context.Context, budget *entity.Budget) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByPeriod retrieves every budget row of the period, oldest first.
	FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.Budget, error)

	// FindByPeriodAndCategory retrieves every budget row of one category in the period.
	FindByPeriodAndCategory(ctx context.Context, periodID, categoryID uuid.UUID) ([]*entity.Budget, error)

	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPeriod(ctx context.Context, periodID uuid.UUID) error
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error
}

// FxRateRepository defines the interface for exchange rate persistence operations.
type FxRateRepository interface {
	Create(ctx context.Context, rate *entity.FxRate) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FxRate, error)

	// FindByPeriod retrieves every rate row of the period.
	FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.FxRate, error)

	// FindAll retrieves every rate row sorted by period start.
	FindAll(ctx context.Context) ([]*entity.FxRate, error)

	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPeriod(ctx context.Context, periodID uuid.UUID) error
}
