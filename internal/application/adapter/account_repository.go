// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// OrderUpdate assigns a new manual order key to one entity.
type OrderUpdate struct {
	ID    uuid.UUID
	Order int
}

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByExternalID retrieves an account by its bank integration id.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Account, error)

	// FindByName retrieves an account by exact name. Returns nil when none exists.
	FindByName(ctx context.Context, name string) (*entity.Account, error)

	// FindAll retrieves all accounts sorted by manual order.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateOrders assigns new order keys in one statement batch.
	UpdateOrders(ctx context.Context, updates []OrderUpdate) error

	// Delete removes an account from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
