package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Valuation converts transactions into signed default-currency amounts.
// The default currency is an explicit input so several currencies can be valued
// side by side.
type Valuation struct {
	DefaultCurrency string
	Rates           *FxTable
	Accounts        map[uuid.UUID]*entity.Account
}

// NewValuation creates a Valuation over the given accounts and rates.
func NewValuation(defaultCurrency string, accounts []*entity.Account, rates *FxTable) *Valuation {
	byID := make(map[uuid.UUID]*entity.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	if rates == nil {
		rates = NewFxTable(nil)
	}
	return &Valuation{
		DefaultCurrency: defaultCurrency,
		Rates:           rates,
		Accounts:        byID,
	}
}

// Direction returns +1, -1 or 0 for the effect of tx on income/expense totals.
func (v *Valuation) Direction(tx *entity.Transaction) int {
	if tx.Expense {
		return 0
	}
	if tx.Transfer {
		if tx.ToAccountID == nil {
			return 0
		}
		from, okFrom := v.Accounts[tx.AccountID]
		to, okTo := v.Accounts[*tx.ToAccountID]
		if !okFrom || !okTo || from.Type == to.Type {
			return 0
		}
		if from.IsBudget() {
			return -1
		}
		return 1
	}
	if tx.Income {
		return 1
	}
	return -1
}

// SignedAmount returns the signed value of tx in the default currency.
// The second result is false when the transaction needed a conversion and no rate
// exists for its period; the amount then contributes zero.
func (v *Valuation) SignedAmount(tx *entity.Transaction) (decimal.Decimal, bool) {
	dir := v.Direction(tx)
	if dir == 0 {
		return decimal.Zero, true
	}
	magnitude := decimal.NewFromInt(tx.Amount)
	if dir < 0 {
		magnitude = magnitude.Neg()
	}
	if tx.Currency == v.DefaultCurrency {
		return magnitude, true
	}
	scaled, ok := v.Rates.ScaledRate(tx.PeriodID, v.DefaultCurrency, tx.Currency)
	if !ok {
		return decimal.Zero, false
	}
	return magnitude.Div(scaled).Mul(rateScale), true
}
