// Package ordering contains the manual reordering use case shared by accounts,
// categories, category groups and payees.
package ordering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// EntityType names a manually ordered entity list.
type EntityType string

const (
	EntityAccounts       EntityType = "accounts"
	EntityCategories     EntityType = "categories"
	EntityCategoryGroups EntityType = "category_groups"
	EntityPayees         EntityType = "payees"
)

// ReorderInput represents the input for moving one entity within its list.
// From and To are positions in the list sorted by order key.
type ReorderInput struct {
	Entity EntityType
	From   int
	To     int
}

// ReorderOutput represents the output of a reorder.
type ReorderOutput struct {
	Changed int
}

// ReorderUseCase moves an entity within its manually ordered list.
type ReorderUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewReorderUseCase creates a new ReorderUseCase instance.
func NewReorderUseCase(store adapter.Store, lock adapter.MutationLock) *ReorderUseCase {
	return &ReorderUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the move and persists every changed key in one commit.
func (uc *ReorderUseCase) Execute(ctx context.Context, input ReorderInput) (*ReorderOutput, error) {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var changed int
	switch input.Entity {
	case EntityAccounts:
		items, err := uc.store.Accounts().FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load accounts: %w", err)
		}
		changed, err = move(ctx, uc.store, items, input, func(e *entity.Account) uuid.UUID { return e.ID }, func(s adapter.Store, u []adapter.OrderUpdate) error {
			return s.Accounts().UpdateOrders(ctx, u)
		})
		if err != nil {
			return nil, err
		}
	case EntityCategories:
		items, err := uc.store.Categories().FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		changed, err = move(ctx, uc.store, items, input, func(e *entity.Category) uuid.UUID { return e.ID }, func(s adapter.Store, u []adapter.OrderUpdate) error {
			return s.Categories().UpdateOrders(ctx, u)
		})
		if err != nil {
			return nil, err
		}
	case EntityCategoryGroups:
		items, err := uc.store.CategoryGroups().FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load category groups: %w", err)
		}
		changed, err = move(ctx, uc.store, items, input, func(e *entity.CategoryGroup) uuid.UUID { return e.ID }, func(s adapter.Store, u []adapter.OrderUpdate) error {
			return s.CategoryGroups().UpdateOrders(ctx, u)
		})
		if err != nil {
			return nil, err
		}
	case EntityPayees:
		items, err := uc.store.Payees().FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load payees: %w", err)
		}
		changed, err = move(ctx, uc.store, items, input, func(e *entity.Payee) uuid.UUID { return e.ID }, func(s adapter.Store, u []adapter.OrderUpdate) error {
			return s.Payees().UpdateOrders(ctx, u)
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeUnknownOrderedEntity,
			fmt.Sprintf("unknown ordered entity %q", input.Entity),
			domainerror.ErrUnknownOrderedEntity,
		)
	}

	slog.Debug("Entities reordered", "entity", input.Entity, "from", input.From, "to", input.To, "changed", changed)
	return &ReorderOutput{Changed: changed}, nil
}

func move[T ledger.Ordered](ctx context.Context, s adapter.Store, items []T, input ReorderInput, id func(T) uuid.UUID, save func(adapter.Store, []adapter.OrderUpdate) error) (int, error) {
	changed, err := ledger.Move(items, input.From, input.To)
	if err != nil {
		return 0, err
	}
	if len(changed) == 0 {
		return 0, nil
	}
	updates := make([]adapter.OrderUpdate, len(changed))
	for i, item := range changed {
		updates[i] = adapter.OrderUpdate{ID: id(item), Order: item.OrderKey()}
	}
	err = s.Atomic(ctx, func(tx adapter.Store) error {
		return save(tx, updates)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to persist order: %w", err)
	}
	return len(changed), nil
}
