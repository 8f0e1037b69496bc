// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PayeeRepository defines the interface for payee persistence operations.
type PayeeRepository interface {
	// Create creates a new payee in the database.
	Create(ctx context.Context, payee *entity.Payee) error

	// FindByID retrieves a payee by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payee, error)

	// FindByName retrieves a payee by exact name. Returns nil when none exists.
	FindByName(ctx context.Context, name string) (*entity.Payee, error)

	// FindAll retrieves all payees sorted by manual order.
	FindAll(ctx context.Context) ([]*entity.Payee, error)

	// Update updates an existing payee in the database.
	Update(ctx context.Context, payee *entity.Payee) error

	// UpdateOrders assigns new order keys in one statement batch.
	UpdateOrders(ctx context.Context, updates []OrderUpdate) error

	// Delete removes a payee from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
