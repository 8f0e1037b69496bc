// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecurrenceUnit is the repeat unit of a recurring transaction.
type RecurrenceUnit string

const (
	RecurrenceNone    RecurrenceUnit = ""
	RecurrenceMonthly RecurrenceUnit = "monthly"
)

// Transaction is one movement of money in the ledger.
// Amount is always an unsigned magnitude in minor units; the direction is derived
// from Income for ordinary transactions and from the account types for transfers.
type Transaction struct {
	ID        uuid.UUID
	CreatedAt time.Time // Immutable, secondary sort key
	UpdatedAt time.Time
	Date      time.Time
	PeriodID  uuid.UUID
	Amount    int64
	Currency  string

	Income         bool
	Transfer       bool
	Expense        bool // Paid on behalf of a debtor
	ExpenseSettled bool

	PayeeID     *uuid.UUID
	DebtorID    *uuid.UUID
	CategoryID  *uuid.UUID
	AccountID   uuid.UUID
	ToAccountID *uuid.UUID
	AmountTo    *int64 // Amount received by ToAccount when currencies differ

	Memo           string
	Recurring      bool
	RecurrenceUnit RecurrenceUnit
	ExternalID     string
	Posted         bool
}

// NewTransaction creates a new Transaction entity with a fresh id and creation time.
func NewTransaction(accountID uuid.UUID, date time.Time, amount int64, currency string) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Date:      date,
		AccountID: accountID,
		Amount:    amount,
		Currency:  currency,
		Posted:    true,
	}
}

// Clone returns a deep copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	c := *t
	c.PayeeID = cloneID(t.PayeeID)
	c.DebtorID = cloneID(t.DebtorID)
	c.CategoryID = cloneID(t.CategoryID)
	c.ToAccountID = cloneID(t.ToAccountID)
	if t.AmountTo != nil {
		v := *t.AmountTo
		c.AmountTo = &v
	}
	return &c
}

// ReceivedAmount returns the amount credited to ToAccount.
func (t *Transaction) ReceivedAmount() int64 {
	if t.AmountTo != nil {
		return *t.AmountTo
	}
	return t.Amount
}

// IsBudgetRelevant reports whether a movement between the given account types counts
// toward a category. toAccount is nil for non-transfers.
func IsBudgetRelevant(transfer bool, account AccountType, toAccount *AccountType) bool {
	if !transfer {
		return account == AccountTypeBudget
	}
	return toAccount != nil && account != *toAccount
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
