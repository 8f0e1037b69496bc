package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestFxTable_Rate(t *testing.T) {
	periods := generatePeriods(2024, 2024)
	march := periods[2]
	april := periods[3]
	table := NewFxTable([]*entity.FxRate{entity.NewFxRate(march, "EUR", "SEK", 1100)})

	t.Run("direct lookup returns rate over 100", func(t *testing.T) {
		rate, ok := table.Rate(march.ID, "EUR", "SEK")
		if !ok {
			t.Fatal("expected rate to be found")
		}
		if !rate.Equal(decimal.RequireFromString("11")) {
			t.Errorf("expected 11.00, got %s", rate)
		}
	})

	t.Run("reverse lookup returns 10000 over rate", func(t *testing.T) {
		rate, ok := table.Rate(march.ID, "SEK", "EUR")
		if !ok {
			t.Fatal("expected reverse rate to be found")
		}
		if rate.StringFixed(2) != "9.09" {
			t.Errorf("expected 9.09, got %s", rate.StringFixed(2))
		}
		scaled, _ := table.ScaledRate(march.ID, "SEK", "EUR")
		if !scaled.Equal(rate) {
			t.Errorf("expected scaled reverse rate %s, got %s", rate, scaled)
		}
	})

	t.Run("reciprocity of one stored row", func(t *testing.T) {
		ab, _ := table.ScaledRate(march.ID, "EUR", "SEK")
		ba, _ := table.ScaledRate(march.ID, "SEK", "EUR")
		product := ab.Div(rateScale).Mul(ba.Div(rateScale))
		if product.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(decimal.RequireFromString("0.0001")) {
			t.Errorf("expected product close to 1, got %s", product)
		}
		direct, _ := table.Rate(march.ID, "EUR", "SEK")
		reverse, _ := table.Rate(march.ID, "SEK", "EUR")
		if got := direct.Mul(reverse).Round(0); !got.Equal(rateScale) {
			t.Errorf("expected published rates to multiply to 100, got %s", got)
		}
	})

	t.Run("same currency is identity", func(t *testing.T) {
		rate, ok := table.Rate(march.ID, "EUR", "EUR")
		if !ok || !rate.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected identity rate, got %s (%v)", rate, ok)
		}
	})

	t.Run("rates are not interpolated across periods", func(t *testing.T) {
		if _, ok := table.Rate(april.ID, "EUR", "SEK"); ok {
			t.Error("expected no rate for April")
		}
	})

	t.Run("unknown pair is not found", func(t *testing.T) {
		rate, ok := table.Rate(march.ID, "EUR", "USD")
		if ok {
			t.Errorf("expected not found, got %s", rate)
		}
	})
}

func TestFxTable_LatestRowWins(t *testing.T) {
	periods := generatePeriods(2024, 2024)
	march := periods[2]

	older := entity.NewFxRate(march, "EUR", "SEK", 1100)
	older.CreatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := entity.NewFxRate(march, "EUR", "SEK", 1150)
	newer.CreatedAt = time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	for _, rows := range [][]*entity.FxRate{{older, newer}, {newer, older}} {
		table := NewFxTable(rows)
		rate, _ := table.Rate(march.ID, "EUR", "SEK")
		if rate.StringFixed(2) != "11.50" {
			t.Errorf("expected newest rate 11.50, got %s", rate.StringFixed(2))
		}
	}
}
