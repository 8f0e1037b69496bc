// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents whether an account participates in the budget.
type AccountType string

const (
	AccountTypeBudget   AccountType = "budget"
	AccountTypeExternal AccountType = "external"
)

// IsValid reports whether the account type is known.
func (t AccountType) IsValid() bool {
	return t == AccountTypeBudget || t == AccountTypeExternal
}

// Account represents a money container owned by the user.
// The currency is fixed at creation. The balance is always derived from transactions.
type Account struct {
	ID       uuid.UUID
	Name     string
	Currency string
	Type     AccountType
	Order    int

	// External integration fields, opaque to the ledger.
	ExternalID        string
	LastRefresh       *time.Time
	ReconciledBalance *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(name, currency string, accountType AccountType, order int) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Currency:  currency,
		Type:      accountType,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsBudget reports whether the account belongs to the budget.
func (a *Account) IsBudget() bool {
	return a.Type == AccountTypeBudget
}

// OrderKey returns the manual order key.
func (a *Account) OrderKey() int { return a.Order }

// SetOrderKey sets the manual order key.
func (a *Account) SetOrderKey(key int) { a.Order = key }
