// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PeriodRepository defines the interface for period persistence operations.
type PeriodRepository interface {
	// CreateBatch creates several periods in one insert.
	CreateBatch(ctx context.Context, periods []*entity.Period) error

	// FindByID retrieves a period by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Period, error)

	// FindAll retrieves all periods in calendar order.
	FindAll(ctx context.Context) ([]*entity.Period, error)

	// Delete removes a period from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
