// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BalanceKind identifies which aggregate a cached Balance row holds.
type BalanceKind string

const (
	BalanceKindAccount      BalanceKind = "account"
	BalanceKindCategory     BalanceKind = "category"
	BalanceKindPeriodActual BalanceKind = "period_actual"
)

// BalanceValue is the payload of a cached Balance row. It is one of
// AccountBalance, CategoryBalance or PeriodActual.
type BalanceValue interface {
	Kind() BalanceKind
}

// AccountBalance is the balance of an account as of the last day of the period,
// in the account's currency.
type AccountBalance struct {
	AccountID uuid.UUID
	Amount    int64
}

// Kind implements BalanceValue.
func (AccountBalance) Kind() BalanceKind { return BalanceKindAccount }

// CategoryBalance is the signed total of a category in the period, in the default currency.
type CategoryBalance struct {
	CategoryID uuid.UUID
	Amount     int64
}

// Kind implements BalanceValue.
func (CategoryBalance) Kind() BalanceKind { return BalanceKindCategory }

// PeriodActual holds the income and spend of a period in the default currency.
// Expenses is reported as a positive magnitude.
type PeriodActual struct {
	Income   int64
	Expenses int64
}

// Kind implements BalanceValue.
func (PeriodActual) Kind() BalanceKind { return BalanceKindPeriodActual }

// Balance is a cached aggregate row. It must always equal a fresh computation.
type Balance struct {
	ID       uuid.UUID
	PeriodID uuid.UUID
	Modified time.Time
	Value    BalanceValue
}

// NewBalance creates a new Balance row for the period.
func NewBalance(periodID uuid.UUID, value BalanceValue) *Balance {
	return &Balance{
		ID:       uuid.New(),
		PeriodID: periodID,
		Modified: time.Now().UTC(),
		Value:    value,
	}
}

// BalanceScope identifies the cache row of one aggregate in a period.
type BalanceScope struct {
	Kind       BalanceKind
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
}

// AccountScope returns the scope of an account balance row.
func AccountScope(accountID uuid.UUID) BalanceScope {
	return BalanceScope{Kind: BalanceKindAccount, AccountID: &accountID}
}

// CategoryScope returns the scope of a category balance row.
func CategoryScope(categoryID uuid.UUID) BalanceScope {
	return BalanceScope{Kind: BalanceKindCategory, CategoryID: &categoryID}
}

// PeriodActualScope returns the scope of the period-level actuals row.
func PeriodActualScope() BalanceScope {
	return BalanceScope{Kind: BalanceKindPeriodActual}
}

// ScopeOf returns the scope a value is cached under.
func ScopeOf(v BalanceValue) BalanceScope {
	switch value := v.(type) {
	case AccountBalance:
		return AccountScope(value.AccountID)
	case CategoryBalance:
		return CategoryScope(value.CategoryID)
	}
	return PeriodActualScope()
}
