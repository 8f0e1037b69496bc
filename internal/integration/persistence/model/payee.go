// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PayeeModel represents the payees table in the database.
type PayeeModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"type:varchar(255);not null;index"`
	SortOrder         int        `gorm:"column:sort_order;not null;default:0"`
	DefaultCategoryID *uuid.UUID `gorm:"type:uuid"`
	DefaultAccountID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PayeeModel.
func (PayeeModel) TableName() string {
	return "payees"
}

// ToEntity converts a PayeeModel to a domain Payee entity.
func (m *PayeeModel) ToEntity() *entity.Payee {
	return &entity.Payee{
		ID:                m.ID,
		Name:              m.Name,
		Order:             m.SortOrder,
		DefaultCategoryID: m.DefaultCategoryID,
		DefaultAccountID:  m.DefaultAccountID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// PayeeFromEntity creates a PayeeModel from a domain Payee entity.
func PayeeFromEntity(payee *entity.Payee) *PayeeModel {
	return &PayeeModel{
		ID:                payee.ID,
		Name:              payee.Name,
		SortOrder:         payee.Order,
		DefaultCategoryID: payee.DefaultCategoryID,
		DefaultAccountID:  payee.DefaultAccountID,
		CreatedAt:         payee.CreatedAt,
		UpdatedAt:         payee.UpdatedAt,
	}
}
