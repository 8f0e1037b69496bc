// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by exact name. Returns nil when none exists.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves all categories sorted by manual order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// UpdateOrders assigns new order keys in one statement batch.
	UpdateOrders(ctx context.Context, updates []OrderUpdate) error

	// ClearGroup removes every category from the given group.
	ClearGroup(ctx context.Context, groupID uuid.UUID) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryGroupRepository defines the interface for category group persistence operations.
type CategoryGroupRepository interface {
	Create(ctx context.Context, group *entity.CategoryGroup) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryGroup, error)
	FindAll(ctx context.Context) ([]*entity.CategoryGroup, error)
	Update(ctx context.Context, group *entity.CategoryGroup) error
	UpdateOrders(ctx context.Context, updates []OrderUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
