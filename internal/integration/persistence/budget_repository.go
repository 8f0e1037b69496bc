// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create appends a budget row.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error
}

// FindByID retrieves a budget row by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByPeriod retrieves every budget row of the period, oldest first.
func (r *budgetRepository) FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.Budget, error) {
	return r.find(r.db.WithContext(ctx).Where("period_id = ?", periodID))
}

// FindByPeriodAndCategory retrieves every budget row of one category in the period.
func (r *budgetRepository) FindByPeriodAndCategory(ctx context.Context, periodID, categoryID uuid.UUID) ([]*entity.Budget, error) {
	return r.find(r.db.WithContext(ctx).Where("period_id = ? AND category_id = ?", periodID, categoryID))
}

// Delete removes a budget row.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id).Error
}

// DeleteByPeriod removes every budget row of the period.
func (r *budgetRepository) DeleteByPeriod(ctx context.Context, periodID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "period_id = ?", periodID).Error
}

// DeleteByCategory removes every budget row of the category.
func (r *budgetRepository) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "category_id = ?", categoryID).Error
}

func (r *budgetRepository) find(query *gorm.DB) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	if err := query.Order("created_at ASC").Find(&budgetModels).Error; err != nil {
		return nil, err
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}
