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

// payeeRepository implements the adapter.PayeeRepository interface.
type payeeRepository struct {
	db *gorm.DB
}

// NewPayeeRepository creates a new payee repository instance.
func NewPayeeRepository(db *gorm.DB) adapter.PayeeRepository {
	return &payeeRepository{
		db: db,
	}
}

// Create creates a new payee in the database.
func (r *payeeRepository) Create(ctx context.Context, payee *entity.Payee) error {
	return r.db.WithContext(ctx).Create(model.PayeeFromEntity(payee)).Error
}

// FindByID retrieves a payee by its ID.
func (r *payeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payee, error) {
	var payeeModel model.PayeeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&payeeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPayeeNotFound
		}
		return nil, result.Error
	}
	return payeeModel.ToEntity(), nil
}

// FindByName retrieves a payee by exact name.
func (r *payeeRepository) FindByName(ctx context.Context, name string) (*entity.Payee, error) {
	var payeeModel model.PayeeModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&payeeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return payeeModel.ToEntity(), nil
}

// FindAll retrieves all payees sorted by manual order.
func (r *payeeRepository) FindAll(ctx context.Context) ([]*entity.Payee, error) {
	var payeeModels []model.PayeeModel
	result := r.db.WithContext(ctx).Order(orderColumns).Find(&payeeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payees := make([]*entity.Payee, len(payeeModels))
	for i, pm := range payeeModels {
		payees[i] = pm.ToEntity()
	}
	return payees, nil
}

// Update updates an existing payee in the database.
func (r *payeeRepository) Update(ctx context.Context, payee *entity.Payee) error {
	return r.db.WithContext(ctx).Save(model.PayeeFromEntity(payee)).Error
}

// UpdateOrders assigns new order keys in one statement batch.
func (r *payeeRepository) UpdateOrders(ctx context.Context, updates []adapter.OrderUpdate) error {
	return updateOrders(ctx, r.db, &model.PayeeModel{}, updates)
}

// Delete removes a payee from the database.
func (r *payeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PayeeModel{}, "id = ?", id).Error
}
