// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payee is a counterparty of transactions. It can also be recorded as the debtor of
// money the user paid on its behalf.
type Payee struct {
	ID                uuid.UUID
	Name              string
	Order             int
	DefaultCategoryID *uuid.UUID // Used to pre-fill new transactions
	DefaultAccountID  *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewPayee creates a new Payee entity.
func NewPayee(name string, order int) *Payee {
	now := time.Now().UTC()

	return &Payee{
		ID:        uuid.New(),
		Name:      name,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OrderKey returns the manual order key.
func (p *Payee) OrderKey() int { return p.Order }

// SetOrderKey sets the manual order key.
func (p *Payee) SetOrderKey(key int) { p.Order = key }
