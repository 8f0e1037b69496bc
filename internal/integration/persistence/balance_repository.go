// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// balanceRepository implements the adapter.BalanceRepository interface.
type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new balance cache repository instance.
func NewBalanceRepository(db *gorm.DB) adapter.BalanceRepository {
	return &balanceRepository{
		db: db,
	}
}

// Create inserts a new cached row.
func (r *balanceRepository) Create(ctx context.Context, balance *entity.Balance) error {
	return r.db.WithContext(ctx).Create(model.BalanceFromEntity(balance)).Error
}

// Find returns the cached row of scope in the period, or nil when it is absent.
func (r *balanceRepository) Find(ctx context.Context, periodID uuid.UUID, scope entity.BalanceScope) (*entity.Balance, error) {
	var balanceModel model.BalanceModel
	result := scoped(r.db.WithContext(ctx), scope).
		Where("period_id = ?", periodID).
		First(&balanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return balanceModel.ToEntity(), nil
}

// FindByPeriod returns every cached row of the period.
func (r *balanceRepository) FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.Balance, error) {
	return r.find(r.db.WithContext(ctx).Where("period_id = ?", periodID))
}

// FindByAccount returns every cached account row of the account.
func (r *balanceRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Balance, error) {
	return r.find(scoped(r.db.WithContext(ctx), entity.AccountScope(accountID)))
}

// Overwrite replaces the value of an existing row in place, keeping its id.
func (r *balanceRepository) Overwrite(ctx context.Context, balance *entity.Balance) error {
	m := model.BalanceFromEntity(balance)
	return r.db.WithContext(ctx).
		Model(&model.BalanceModel{}).
		Where("id = ?", balance.ID).
		Updates(map[string]interface{}{
			"amount":   m.Amount,
			"income":   m.Income,
			"expenses": m.Expenses,
			"modified": m.Modified,
		}).Error
}

// DeleteByPeriod removes the rows owned by a period.
func (r *balanceRepository) DeleteByPeriod(ctx context.Context, periodID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BalanceModel{}, "period_id = ?", periodID).Error
}

// DeleteByScope removes the rows of an account or category in every period.
func (r *balanceRepository) DeleteByScope(ctx context.Context, scope entity.BalanceScope) error {
	return scoped(r.db.WithContext(ctx), scope).Delete(&model.BalanceModel{}).Error
}

func (r *balanceRepository) find(query *gorm.DB) ([]*entity.Balance, error) {
	var balanceModels []model.BalanceModel
	if err := query.Find(&balanceModels).Error; err != nil {
		return nil, err
	}

	balances := make([]*entity.Balance, 0, len(balanceModels))
	for _, bm := range balanceModels {
		if b := bm.ToEntity(); b != nil {
			balances = append(balances, b)
		}
	}
	return balances, nil
}

// scoped restricts a query to the rows of one cache scope.
func scoped(query *gorm.DB, scope entity.BalanceScope) *gorm.DB {
	query = query.Where("kind = ?", string(scope.Kind))
	if scope.AccountID != nil {
		query = query.Where("account_id = ?", *scope.AccountID)
	}
	if scope.CategoryID != nil {
		query = query.Where("category_id = ?", *scope.CategoryID)
	}
	return query
}
