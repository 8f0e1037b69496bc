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

// periodRepository implements the adapter.PeriodRepository interface.
type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository instance.
func NewPeriodRepository(db *gorm.DB) adapter.PeriodRepository {
	return &periodRepository{
		db: db,
	}
}

// CreateBatch creates several periods in one insert.
func (r *periodRepository) CreateBatch(ctx context.Context, periods []*entity.Period) error {
	if len(periods) == 0 {
		return nil
	}
	periodModels := make([]*model.PeriodModel, len(periods))
	for i, p := range periods {
		periodModels[i] = model.PeriodFromEntity(p)
	}
	return r.db.WithContext(ctx).CreateInBatches(periodModels, 100).Error
}

// FindByID retrieves a period by its ID.
func (r *periodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Period, error) {
	var periodModel model.PeriodModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPeriodNotFound
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// FindAll retrieves all periods in calendar order.
func (r *periodRepository) FindAll(ctx context.Context) ([]*entity.Period, error) {
	var periodModels []model.PeriodModel
	result := r.db.WithContext(ctx).Order("year ASC, month ASC").Find(&periodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	periods := make([]*entity.Period, len(periodModels))
	for i, pm := range periodModels {
		periods[i] = pm.ToEntity()
	}
	return periods, nil
}

// Delete removes a period from the database.
func (r *periodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PeriodModel{}, "id = ?", id).Error
}
