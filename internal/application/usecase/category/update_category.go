package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateCategoryInput represents the input for a category update.
// Nil fields are left unchanged; ClearGroup removes the group membership.
type UpdateCategoryInput struct {
	ID         uuid.UUID
	Name       *string
	Type       *entity.CategoryType
	GroupID    *uuid.UUID
	ClearGroup bool
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(store adapter.Store, lock adapter.MutationLock) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the update. The type of a category with transactions is
// fixed, since it decides where those transactions land in period actuals.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	category, err := lookup.Category(ctx, uc.store.Categories(), input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		category.Name = name
	}
	if input.Type != nil && *input.Type != category.Type {
		if !input.Type.IsValid() {
			return nil, invalidType()
		}
		count, err := uc.store.Transactions().Count(ctx, adapter.TransactionFilter{CategoryID: &category.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to count category transactions: %w", err)
		}
		if count > 0 {
			return nil, domainerror.NewValidationError(
				domainerror.ErrCodeCategoryTypeLocked,
				"the type of a category with transactions cannot change",
				domainerror.ErrCategoryTypeLocked,
			)
		}
		category.Type = *input.Type
	}
	switch {
	case input.ClearGroup:
		category.GroupID = nil
	case input.GroupID != nil:
		group, err := lookup.CategoryGroup(ctx, uc.store.CategoryGroups(), *input.GroupID)
		if err != nil {
			return nil, err
		}
		id := group.ID
		category.GroupID = &id
	}
	category.UpdatedAt = time.Now().UTC()

	if err := uc.store.Categories().Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &UpdateCategoryOutput{Category: category}, nil
}
