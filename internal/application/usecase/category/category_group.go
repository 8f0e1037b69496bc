package category

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// CreateGroupInput represents the input for category group creation.
type CreateGroupInput struct {
	Name string
}

// CreateGroupUseCase handles category group creation.
type CreateGroupUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(store adapter.Store, lock adapter.MutationLock) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute creates the group after the existing ones in manual order.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*entity.CategoryGroup, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.store.CategoryGroups().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category groups: %w", err)
	}
	keys := make([]int, len(existing))
	for i, g := range existing {
		keys[i] = g.Order
	}

	group := entity.NewCategoryGroup(name, ledger.NextOrderKey(keys))
	if err := uc.store.CategoryGroups().Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create category group: %w", err)
	}
	return group, nil
}

// UpdateGroupInput represents the input for a category group update.
type UpdateGroupInput struct {
	ID        uuid.UUID
	Name      *string
	Collapsed *bool
}

// UpdateGroupUseCase handles category group updates.
type UpdateGroupUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewUpdateGroupUseCase creates a new UpdateGroupUseCase instance.
func NewUpdateGroupUseCase(store adapter.Store, lock adapter.MutationLock) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute updates the group.
func (uc *UpdateGroupUseCase) Execute(ctx context.Context, input UpdateGroupInput) (*entity.CategoryGroup, error) {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	group, err := lookup.CategoryGroup(ctx, uc.store.CategoryGroups(), input.ID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		group.Name = name
	}
	if input.Collapsed != nil {
		group.Collapsed = *input.Collapsed
	}
	group.UpdatedAt = time.Now().UTC()

	if err := uc.store.CategoryGroups().Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update category group: %w", err)
	}
	return group, nil
}

// DeleteGroupUseCase deletes a category group. Its categories become ungrouped.
type DeleteGroupUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(store adapter.Store, lock adapter.MutationLock) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute deletes the group.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	group, err := lookup.CategoryGroup(ctx, uc.store.CategoryGroups(), id)
	if err != nil {
		return err
	}

	err = uc.store.Atomic(ctx, func(tx adapter.Store) error {
		if err := tx.Categories().ClearGroup(ctx, group.ID); err != nil {
			return fmt.Errorf("failed to ungroup categories: %w", err)
		}
		return tx.CategoryGroups().Delete(ctx, group.ID)
	})
	if err != nil {
		return err
	}

	slog.Info("Category group deleted", "group_id", group.ID)
	return nil
}
