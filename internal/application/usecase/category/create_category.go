// Package category contains category and category group use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 100

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name    string
	Type    entity.CategoryType
	GroupID *uuid.UUID // Optional
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(store adapter.Store, lock adapter.MutationLock) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, invalidType()
	}

	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if input.GroupID != nil {
		if _, err := lookup.CategoryGroup(ctx, uc.store.CategoryGroups(), *input.GroupID); err != nil {
			return nil, err
		}
	}

	existing, err := uc.store.Categories().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	keys := make([]int, len(existing))
	for i, c := range existing {
		keys[i] = c.Order
	}

	category := entity.NewCategory(name, input.Type, input.GroupID, ledger.NextOrderKey(keys))
	if err := uc.store.Categories().Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > MaxCategoryNameLength {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeCategoryNameRequired,
			fmt.Sprintf("name must be 1 to %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameRequired,
		)
	}
	return trimmed, nil
}

func invalidType() error {
	return domainerror.NewValidationError(
		domainerror.ErrCodeInvalidCategoryType,
		"category type must be 'income', 'expense' or 'investment'",
		domainerror.ErrInvalidCategoryType,
	)
}
