// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date      time.Time `gorm:"not null;index"`
	PeriodID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    int64     `gorm:"not null"`
	Currency  string    `gorm:"type:varchar(3);not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Income         bool `gorm:"default:false"`
	Transfer       bool `gorm:"default:false"`
	Expense        bool `gorm:"default:false"`
	ExpenseSettled bool `gorm:"default:false"`

	PayeeID     *uuid.UUID `gorm:"type:uuid;index"`
	DebtorID    *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	AccountID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ToAccountID *uuid.UUID `gorm:"type:uuid;index"`
	AmountTo    *int64

	Memo           string `gorm:"type:text"`
	Recurring      bool   `gorm:"default:false"`
	RecurrenceUnit string `gorm:"type:varchar(10)"`
	ExternalID     string `gorm:"type:varchar(100);index"`
	Posted         bool   `gorm:"default:true"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:             m.ID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Date:           m.Date,
		PeriodID:       m.PeriodID,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Income:         m.Income,
		Transfer:       m.Transfer,
		Expense:        m.Expense,
		ExpenseSettled: m.ExpenseSettled,
		PayeeID:        m.PayeeID,
		DebtorID:       m.DebtorID,
		CategoryID:     m.CategoryID,
		AccountID:      m.AccountID,
		ToAccountID:    m.ToAccountID,
		AmountTo:       m.AmountTo,
		Memo:           m.Memo,
		Recurring:      m.Recurring,
		RecurrenceUnit: entity.RecurrenceUnit(m.RecurrenceUnit),
		ExternalID:     m.ExternalID,
		Posted:         m.Posted,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:             tx.ID,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
		Date:           tx.Date.UTC(),
		PeriodID:       tx.PeriodID,
		Amount:         tx.Amount,
		Currency:       tx.Currency,
		Income:         tx.Income,
		Transfer:       tx.Transfer,
		Expense:        tx.Expense,
		ExpenseSettled: tx.ExpenseSettled,
		PayeeID:        tx.PayeeID,
		DebtorID:       tx.DebtorID,
		CategoryID:     tx.CategoryID,
		AccountID:      tx.AccountID,
		ToAccountID:    tx.ToAccountID,
		AmountTo:       tx.AmountTo,
		Memo:           tx.Memo,
		Recurring:      tx.Recurring,
		RecurrenceUnit: string(tx.RecurrenceUnit),
		ExternalID:     tx.ExternalID,
		Posted:         tx.Posted,
	}
}

// AllModels lists every model for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&PeriodModel{},
		&AccountModel{},
		&CategoryGroupModel{},
		&CategoryModel{},
		&PayeeModel{},
		&TransactionModel{},
		&BudgetModel{},
		&FxRateModel{},
		&BalanceModel{},
	}
}
