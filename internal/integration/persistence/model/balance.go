// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// BalanceModel represents the balances table in the database.
// Kind selects which of the value columns are meaningful.
type BalanceModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PeriodID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind       string     `gorm:"type:varchar(20);not null;index"`
	AccountID  *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	Amount     int64      `gorm:"not null;default:0"`
	Income     int64      `gorm:"not null;default:0"`
	Expenses   int64      `gorm:"not null;default:0"`
	Modified   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the BalanceModel.
func (BalanceModel) TableName() string {
	return "balances"
}

// ToEntity converts a BalanceModel to a domain Balance entity.
// Rows of an unknown kind or missing their owner id yield nil.
func (m *BalanceModel) ToEntity() *entity.Balance {
	var value entity.BalanceValue
	switch entity.BalanceKind(m.Kind) {
	case entity.BalanceKindAccount:
		if m.AccountID == nil {
			return nil
		}
		value = entity.AccountBalance{AccountID: *m.AccountID, Amount: m.Amount}
	case entity.BalanceKindCategory:
		if m.CategoryID == nil {
			return nil
		}
		value = entity.CategoryBalance{CategoryID: *m.CategoryID, Amount: m.Amount}
	case entity.BalanceKindPeriodActual:
		value = entity.PeriodActual{Income: m.Income, Expenses: m.Expenses}
	default:
		return nil
	}

	return &entity.Balance{
		ID:       m.ID,
		PeriodID: m.PeriodID,
		Modified: m.Modified,
		Value:    value,
	}
}

// BalanceFromEntity creates a BalanceModel from a domain Balance entity.
func BalanceFromEntity(balance *entity.Balance) *BalanceModel {
	m := &BalanceModel{
		ID:       balance.ID,
		PeriodID: balance.PeriodID,
		Modified: balance.Modified,
	}

	switch v := balance.Value.(type) {
	case entity.AccountBalance:
		id := v.AccountID
		m.Kind = string(entity.BalanceKindAccount)
		m.AccountID = &id
		m.Amount = v.Amount
	case entity.CategoryBalance:
		id := v.CategoryID
		m.Kind = string(entity.BalanceKindCategory)
		m.CategoryID = &id
		m.Amount = v.Amount
	case entity.PeriodActual:
		m.Kind = string(entity.BalanceKindPeriodActual)
		m.Income = v.Income
		m.Expenses = v.Expenses
	}
	return m
}
