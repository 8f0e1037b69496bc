// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"type:varchar(100);not null"`
	Currency          string     `gorm:"type:varchar(3);not null"`
	Type              string     `gorm:"type:varchar(10);not null"`
	SortOrder         int        `gorm:"column:sort_order;not null;default:0"`
	ExternalID        string     `gorm:"type:varchar(100);index"`
	LastRefresh       *time.Time `gorm:"type:timestamp"`
	ReconciledBalance *int64
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:                m.ID,
		Name:              m.Name,
		Currency:          m.Currency,
		Type:              entity.AccountType(m.Type),
		Order:             m.SortOrder,
		ExternalID:        m.ExternalID,
		LastRefresh:       m.LastRefresh,
		ReconciledBalance: m.ReconciledBalance,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:                account.ID,
		Name:              account.Name,
		Currency:          account.Currency,
		Type:              string(account.Type),
		SortOrder:         account.Order,
		ExternalID:        account.ExternalID,
		LastRefresh:       account.LastRefresh,
		ReconciledBalance: account.ReconciledBalance,
		CreatedAt:         account.CreatedAt,
		UpdatedAt:         account.UpdatedAt,
	}
}
