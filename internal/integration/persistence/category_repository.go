// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByName retrieves a category by exact name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves all categories sorted by manual order.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).Order(orderColumns).Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(model.CategoryFromEntity(category)).Error
}

// UpdateOrders assigns new order keys in one statement batch.
func (r *categoryRepository) UpdateOrders(ctx context.Context, updates []adapter.OrderUpdate) error {
	return updateOrders(ctx, r.db, &model.CategoryModel{}, updates)
}

// ClearGroup removes every category from the given group.
func (r *categoryRepository) ClearGroup(ctx context.Context, groupID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("group_id = ?", groupID).
		Updates(map[string]interface{}{
			"group_id":   nil,
			"updated_at": time.Now().UTC(),
		}).Error
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id).Error
}

// categoryGroupRepository implements the adapter.CategoryGroupRepository interface.
type categoryGroupRepository struct {
	db *gorm.DB
}

// NewCategoryGroupRepository creates a new category group repository instance.
func NewCategoryGroupRepository(db *gorm.DB) adapter.CategoryGroupRepository {
	return &categoryGroupRepository{
		db: db,
	}
}

func (r *categoryGroupRepository) Create(ctx context.Context, group *entity.CategoryGroup) error {
	return r.db.WithContext(ctx).Create(model.CategoryGroupFromEntity(group)).Error
}

func (r *categoryGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryGroup, error) {
	var groupModel model.CategoryGroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryGroupNotFound
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

func (r *categoryGroupRepository) FindAll(ctx context.Context) ([]*entity.CategoryGroup, error) {
	var groupModels []model.CategoryGroupModel
	result := r.db.WithContext(ctx).Order(orderColumns).Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]*entity.CategoryGroup, len(groupModels))
	for i, gm := range groupModels {
		groups[i] = gm.ToEntity()
	}
	return groups, nil
}

func (r *categoryGroupRepository) Update(ctx context.Context, group *entity.CategoryGroup) error {
	return r.db.WithContext(ctx).Save(model.CategoryGroupFromEntity(group)).Error
}

func (r *categoryGroupRepository) UpdateOrders(ctx context.Context, updates []adapter.OrderUpdate) error {
	return updateOrders(ctx, r.db, &model.CategoryGroupModel{}, updates)
}

func (r *categoryGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CategoryGroupModel{}, "id = ?", id).Error
}
