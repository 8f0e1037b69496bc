// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// MaxMemoLength is the maximum allowed length for transaction memos.
const MaxMemoLength = 500

// Fields are the user-editable fields of a transaction.
type Fields struct {
	AccountID      uuid.UUID
	Date           time.Time
	Amount         int64
	Currency       string // Optional, defaults to the account currency
	Income         bool
	Transfer       bool
	Expense        bool
	ExpenseSettled bool
	PayeeID        *uuid.UUID
	DebtorID       *uuid.UUID
	CategoryID     *uuid.UUID
	ToAccountID    *uuid.UUID
	AmountTo       *int64
	Memo           string
	Recurring      bool
	RecurrenceUnit entity.RecurrenceUnit
	ExternalID     string
	Posted         *bool // Optional, defaults to true

	// Imported transactions may stay uncategorised until the user reviews them.
	Imported bool
}

// apply validates f against the store and writes the normalised result into tx.
// Nothing is written to the store.
func apply(ctx context.Context, s adapter.Store, idx *ledger.PeriodIndex, f Fields, tx *entity.Transaction) error {
	if f.Amount <= 0 {
		return domainerror.NewValidationError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if f.Date.IsZero() {
		return domainerror.NewValidationError(
			domainerror.ErrCodeMissingTransactionFields,
			"date is required",
			domainerror.ErrMissingTransactionFields,
		)
	}
	if len(f.Memo) > MaxMemoLength {
		return domainerror.NewValidationError(
			domainerror.ErrCodeMemoTooLong,
			fmt.Sprintf("memo must not exceed %d characters", MaxMemoLength),
			domainerror.ErrMemoTooLong,
		)
	}

	account, err := lookup.Account(ctx, s.Accounts(), f.AccountID)
	if err != nil {
		return err
	}

	code := strings.ToUpper(strings.TrimSpace(f.Currency))
	if code == "" {
		code = account.Currency
	}
	if _, err := currency.ParseISO(code); err != nil {
		return domainerror.NewValidationError(
			domainerror.ErrCodeInvalidCurrency,
			fmt.Sprintf("%q is not an ISO 4217 currency", f.Currency),
			domainerror.ErrInvalidCurrency,
		)
	}
	if code != account.Currency {
		return domainerror.NewValidationError(
			domainerror.ErrCodeCurrencyMismatch,
			fmt.Sprintf("currency %s does not match account currency %s", code, account.Currency),
			domainerror.ErrCurrencyMismatch,
		)
	}

	p, err := idx.For(f.Date)
	if err != nil {
		return err
	}

	income := f.Income
	payeeID := f.PayeeID
	var toAccountID *uuid.UUID
	var amountTo *int64
	var toType *entity.AccountType

	if f.Transfer {
		if f.ToAccountID == nil || *f.ToAccountID == f.AccountID {
			return domainerror.NewValidationError(
				domainerror.ErrCodeInvalidTransfer,
				"a transfer needs a destination account different from the source",
				domainerror.ErrInvalidTransfer,
			)
		}
		if f.PayeeID != nil {
			return domainerror.NewValidationError(
				domainerror.ErrCodeTransferWithPayee,
				"a transfer cannot have a payee",
				domainerror.ErrTransferWithPayee,
			)
		}
		toAccount, err := lookup.Account(ctx, s.Accounts(), *f.ToAccountID)
		if err != nil {
			return err
		}
		if toAccount.Currency != account.Currency {
			if f.AmountTo == nil || *f.AmountTo <= 0 {
				return domainerror.NewValidationError(
					domainerror.ErrCodeTransferAmountTo,
					fmt.Sprintf("a transfer from %s to %s needs the received amount", account.Currency, toAccount.Currency),
					domainerror.ErrTransferAmountToRequired,
				)
			}
			v := *f.AmountTo
			amountTo = &v
		}
		id := toAccount.ID
		toAccountID = &id
		toType = &toAccount.Type
		income = false
	}

	if f.DebtorID != nil {
		if !f.Expense {
			return domainerror.NewValidationError(
				domainerror.ErrCodeDebtorWithoutExpense,
				"a debtor can only be set on an expense paid on someone's behalf",
				domainerror.ErrDebtorWithoutExpense,
			)
		}
		if _, err := lookup.Debtor(ctx, s.Payees(), *f.DebtorID); err != nil {
			return err
		}
	}
	if payeeID != nil {
		if _, err := lookup.Payee(ctx, s.Payees(), *payeeID); err != nil {
			return err
		}
	}

	unit := entity.RecurrenceNone
	if f.Recurring {
		if f.RecurrenceUnit != entity.RecurrenceMonthly {
			return domainerror.NewValidationError(
				domainerror.ErrCodeInvalidRecurrence,
				fmt.Sprintf("unsupported recurrence unit %q", f.RecurrenceUnit),
				domainerror.ErrInvalidRecurrence,
			)
		}
		unit = entity.RecurrenceMonthly
	}

	categoryID := f.CategoryID
	if entity.IsBudgetRelevant(f.Transfer, account.Type, toType) {
		if categoryID == nil && !f.Expense && !f.Imported {
			return domainerror.NewValidationError(
				domainerror.ErrCodeCategoryRequired,
				"a category is required for transactions affecting the budget",
				domainerror.ErrCategoryRequired,
			)
		}
		if categoryID != nil {
			if _, err := lookup.Category(ctx, s.Categories(), *categoryID); err != nil {
				return err
			}
		}
	} else {
		categoryID = nil
	}

	posted := true
	if f.Posted != nil {
		posted = *f.Posted
	}

	tx.Date = f.Date
	tx.PeriodID = p.ID
	tx.Amount = f.Amount
	tx.Currency = code
	tx.Income = income
	tx.Transfer = f.Transfer
	tx.Expense = f.Expense
	tx.ExpenseSettled = f.ExpenseSettled
	tx.PayeeID = payeeID
	tx.DebtorID = f.DebtorID
	tx.CategoryID = categoryID
	tx.AccountID = account.ID
	tx.ToAccountID = toAccountID
	tx.AmountTo = amountTo
	tx.Memo = f.Memo
	tx.Recurring = f.Recurring
	tx.RecurrenceUnit = unit
	tx.ExternalID = f.ExternalID
	tx.Posted = posted
	return nil
}
