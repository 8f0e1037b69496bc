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

// fxRateRepository implements the adapter.FxRateRepository interface.
type fxRateRepository struct {
	db *gorm.DB
}

// NewFxRateRepository creates a new exchange rate repository instance.
func NewFxRateRepository(db *gorm.DB) adapter.FxRateRepository {
	return &fxRateRepository{
		db: db,
	}
}

// Create appends a rate row.
func (r *fxRateRepository) Create(ctx context.Context, rate *entity.FxRate) error {
	return r.db.WithContext(ctx).Create(model.FxRateFromEntity(rate)).Error
}

// FindByID retrieves a rate row by its ID.
func (r *fxRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FxRate, error) {
	var rateModel model.FxRateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&rateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFxRateNotFound
		}
		return nil, result.Error
	}
	return rateModel.ToEntity(), nil
}

// FindByPeriod retrieves every rate row of the period.
func (r *fxRateRepository) FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.FxRate, error) {
	return r.find(r.db.WithContext(ctx).Where("period_id = ?", periodID))
}

// FindAll retrieves every rate row sorted by period start.
func (r *fxRateRepository) FindAll(ctx context.Context) ([]*entity.FxRate, error) {
	return r.find(r.db.WithContext(ctx))
}

// Delete removes a rate row.
func (r *fxRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FxRateModel{}, "id = ?", id).Error
}

// DeleteByPeriod removes every rate row of the period.
func (r *fxRateRepository) DeleteByPeriod(ctx context.Context, periodID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FxRateModel{}, "period_id = ?", periodID).Error
}

func (r *fxRateRepository) find(query *gorm.DB) ([]*entity.FxRate, error) {
	var rateModels []model.FxRateModel
	if err := query.Order("start_date ASC, created_at ASC").Find(&rateModels).Error; err != nil {
		return nil, err
	}

	rates := make([]*entity.FxRate, len(rateModels))
	for i, rm := range rateModels {
		rates[i] = rm.ToEntity()
	}
	return rates, nil
}
