// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PeriodID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount     int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:         m.ID,
		PeriodID:   m.PeriodID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:         budget.ID,
		PeriodID:   budget.PeriodID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		CreatedAt:  budget.CreatedAt,
	}
}

// FxRateModel represents the fx_rates table in the database.
type FxRateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PeriodID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Currency1 string    `gorm:"type:varchar(3);not null"`
	Currency2 string    `gorm:"type:varchar(3);not null"`
	Rate      int64     `gorm:"not null"`
	StartDate time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the FxRateModel.
func (FxRateModel) TableName() string {
	return "fx_rates"
}

// ToEntity converts an FxRateModel to a domain FxRate entity.
func (m *FxRateModel) ToEntity() *entity.FxRate {
	return &entity.FxRate{
		ID:        m.ID,
		PeriodID:  m.PeriodID,
		Currency1: m.Currency1,
		Currency2: m.Currency2,
		Rate:      m.Rate,
		StartDate: m.StartDate,
		CreatedAt: m.CreatedAt,
	}
}

// FxRateFromEntity creates an FxRateModel from a domain FxRate entity.
func FxRateFromEntity(rate *entity.FxRate) *FxRateModel {
	return &FxRateModel{
		ID:        rate.ID,
		PeriodID:  rate.PeriodID,
		Currency1: rate.Currency1,
		Currency2: rate.Currency2,
		Rate:      rate.Rate,
		StartDate: rate.StartDate.UTC(),
		CreatedAt: rate.CreatedAt,
	}
}
