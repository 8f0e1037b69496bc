package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Totals is a default-currency sum together with the number of amounts that were
// left out because no exchange rate was available.
type Totals struct {
	Sum          decimal.Decimal
	MissingRates int
}

// Add accumulates the signed amount of tx.
func (t *Totals) Add(v *Valuation, tx *entity.Transaction) {
	amount, ok := v.SignedAmount(tx)
	if !ok {
		t.MissingRates++
		return
	}
	t.Sum = t.Sum.Add(amount)
}

// Minor rounds the sum to whole minor units.
func (t Totals) Minor() int64 {
	return RoundMinor(t.Sum)
}

// RoundMinor rounds to the nearest minor unit, half away from zero.
func RoundMinor(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// CategoryBalance sums the signed amounts of the category's transactions.
// txs must be the transactions of a single period. Rounding happens once, after summation.
func (v *Valuation) CategoryBalance(categoryID uuid.UUID, txs []*entity.Transaction) Totals {
	var totals Totals
	for _, tx := range txs {
		if tx.CategoryID == nil || *tx.CategoryID != categoryID {
			continue
		}
		totals.Add(v, tx)
	}
	return totals
}

// PeriodActuals splits the period's signed amounts into income and spend by category
// type. Spend is reported as a positive magnitude. Uncategorised and investment
// transactions do not contribute.
func (v *Valuation) PeriodActuals(txs []*entity.Transaction, categories map[uuid.UUID]*entity.Category) (entity.PeriodActual, int) {
	var income, expenses Totals
	for _, tx := range txs {
		if tx.CategoryID == nil {
			continue
		}
		cat, ok := categories[*tx.CategoryID]
		if !ok {
			continue
		}
		switch cat.Type {
		case entity.CategoryTypeIncome:
			income.Add(v, tx)
		case entity.CategoryTypeExpense:
			expenses.Add(v, tx)
		}
	}
	return entity.PeriodActual{
		Income:   income.Minor(),
		Expenses: RoundMinor(expenses.Sum.Neg()),
	}, income.MissingRates + expenses.MissingRates
}

// AccountBalance returns the balance of an account in its own currency as of asOf,
// comparing calendar days in loc. Transfers into the account count with the received
// amount.
func AccountBalance(accountID uuid.UUID, txs []*entity.Transaction, asOf time.Time, loc *time.Location) int64 {
	var outgoing, incoming int64
	for _, tx := range txs {
		if !OnOrBefore(tx.Date, asOf, loc) {
			continue
		}
		if tx.AccountID == accountID {
			if tx.Income {
				outgoing += tx.Amount
			} else {
				outgoing -= tx.Amount
			}
		}
		if tx.Transfer && tx.ToAccountID != nil && *tx.ToAccountID == accountID {
			// The stored sign describes the source account; the destination mirrors it.
			incoming -= tx.ReceivedAmount()
		}
	}
	return outgoing - incoming
}

// DebtBalance returns what the payee owes the user from transactions dated up to
// until: debt-creating expenses add, settlements (income) subtract.
func DebtBalance(payeeID uuid.UUID, txs []*entity.Transaction, until time.Time, loc *time.Location) int64 {
	var total int64
	for _, tx := range txs {
		if tx.DebtorID == nil || *tx.DebtorID != payeeID {
			continue
		}
		if !OnOrBefore(tx.Date, until, loc) {
			continue
		}
		if tx.Income {
			total -= tx.Amount
		} else {
			total += tx.Amount
		}
	}
	return total
}

// BudgetTotal sums every budget row of the category.
func BudgetTotal(categoryID uuid.UUID, budgets []*entity.Budget) int64 {
	var total int64
	for _, b := range budgets {
		if b.CategoryID == categoryID {
			total += b.Amount
		}
	}
	return total
}

// Remaining returns the budget left for a category: budget plus the (negative for
// spend) category balance.
func Remaining(budget, balance int64) int64 {
	return budget + balance
}

// PeriodBudgets sums budget rows split by the type of the owning category.
func PeriodBudgets(budgets []*entity.Budget, categories map[uuid.UUID]*entity.Category) (income, expenses int64) {
	for _, b := range budgets {
		cat, ok := categories[b.CategoryID]
		if !ok {
			continue
		}
		switch cat.Type {
		case entity.CategoryTypeIncome:
			income += b.Amount
		case entity.CategoryTypeExpense:
			expenses += b.Amount
		}
	}
	return income, expenses
}
