package category

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListCategoriesOutput represents categories and groups in manual order.
type ListCategoriesOutput struct {
	Categories []*entity.Category
	Groups     []*entity.CategoryGroup
}

// ListCategoriesUseCase lists categories together with their groups.
type ListCategoriesUseCase struct {
	store adapter.Store
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store adapter.Store) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{store: store}
}

// Execute lists the categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.store.Categories().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	groups, err := uc.store.CategoryGroups().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list category groups: %w", err)
	}
	return &ListCategoriesOutput{
		Categories: categories,
		Groups:     groups,
	}, nil
}
