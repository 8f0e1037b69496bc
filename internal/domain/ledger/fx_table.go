package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

var (
	rateScale        = decimal.NewFromInt(entity.FxRateScale)
	reciprocalFactor = decimal.NewFromInt(entity.FxRateScale * entity.FxRateScale)
)

type currencyPair struct {
	from string
	to   string
}

// FxTable answers rate lookups over the stored FxRate rows of any number of periods.
// When several rows exist for one pair in a period, the most recently created wins.
type FxTable struct {
	rows map[uuid.UUID]map[currencyPair]*entity.FxRate
}

// NewFxTable indexes the given rates.
func NewFxTable(rates []*entity.FxRate) *FxTable {
	t := &FxTable{rows: make(map[uuid.UUID]map[currencyPair]*entity.FxRate)}
	for _, r := range rates {
		t.add(r)
	}
	return t
}

func (t *FxTable) add(r *entity.FxRate) {
	byPair, ok := t.rows[r.PeriodID]
	if !ok {
		byPair = make(map[currencyPair]*entity.FxRate)
		t.rows[r.PeriodID] = byPair
	}
	key := currencyPair{from: r.Currency1, to: r.Currency2}
	if existing, ok := byPair[key]; ok && existing.CreatedAt.After(r.CreatedAt) {
		return
	}
	byPair[key] = r
}

// lookup returns the row stored for (from, to), or failing that the row stored
// for (to, from) with reversed set.
func (t *FxTable) lookup(periodID uuid.UUID, from, to string) (r *entity.FxRate, reversed, ok bool) {
	byPair := t.rows[periodID]
	if r, ok := byPair[currencyPair{from: from, to: to}]; ok && r.Rate > 0 {
		return r, false, true
	}
	if r, ok := byPair[currencyPair{from: to, to: from}]; ok && r.Rate > 0 {
		return r, true, true
	}
	return nil, false, false
}

// ScaledRate returns the rate from one currency to another in stored (x100) units.
// A stored row for (from, to) is returned as is; a row for (to, from) yields
// 10000 / rate. Missing rows report false. Amount conversion uses this form.
func (t *FxTable) ScaledRate(periodID uuid.UUID, from, to string) (decimal.Decimal, bool) {
	if from == to {
		return rateScale, true
	}
	r, reversed, ok := t.lookup(periodID, from, to)
	if !ok {
		return decimal.Zero, false
	}
	if reversed {
		return reciprocalFactor.Div(decimal.NewFromInt(r.Rate)), true
	}
	return decimal.NewFromInt(r.Rate), true
}

// Rate is the published rate of a pair: rate/100 for a stored (from, to) row and
// 10000/rate for a stored (to, from) row. The reverse branch is not divided by
// 100 again; EUR/SEK stored as 1100 reads 11.00 one way and 9.09 the other.
func (t *FxTable) Rate(periodID uuid.UUID, from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}
	r, reversed, ok := t.lookup(periodID, from, to)
	if !ok {
		return decimal.Zero, false
	}
	if reversed {
		return reciprocalFactor.Div(decimal.NewFromInt(r.Rate)), true
	}
	return decimal.NewFromInt(r.Rate).Div(rateScale), true
}
