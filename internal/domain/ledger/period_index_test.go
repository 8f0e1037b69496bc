package ledger

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestPeriodIndex_For(t *testing.T) {
	idx := NewPeriodIndex(generatePeriods(2020, 2030), testLoc)

	tests := []struct {
		name      string
		date      time.Time
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{name: "first day of month", date: day(2024, time.March, 1), wantYear: 2024, wantMonth: 3},
		{name: "last second of month", date: time.Date(2024, time.March, 31, 23, 59, 59, 0, testLoc), wantYear: 2024, wantMonth: 3},
		{name: "leap day", date: day(2024, time.February, 29), wantYear: 2024, wantMonth: 2},
		{name: "range start", date: day(2020, time.January, 1), wantYear: 2020, wantMonth: 1},
		{name: "range end", date: day(2030, time.December, 31), wantYear: 2030, wantMonth: 12},
		{name: "before range", date: day(2019, time.December, 31), wantErr: true},
		{name: "after range", date: day(2031, time.January, 1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := idx.For(tt.date)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got period %s", p.Label)
				}
				if !errors.Is(err, domainerror.ErrPeriodNotFound) {
					t.Errorf("expected ErrPeriodNotFound, got %v", err)
				}
				if !domainerror.IsKind(err, domainerror.KindNotFound) {
					t.Errorf("expected not found kind, got %q", domainerror.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Year != tt.wantYear || p.Month != tt.wantMonth {
				t.Errorf("expected %d-%02d, got %d-%02d", tt.wantYear, tt.wantMonth, p.Year, p.Month)
			}
		})
	}
}

func TestPeriodIndex_ForUsesIndexLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	idx := NewPeriodIndex(generatePeriods(2024, 2024), tokyo)

	// 2024-03-31 20:00 UTC is already April 1st in Tokyo.
	p, err := idx.For(time.Date(2024, time.March, 31, 20, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Month != 4 {
		t.Errorf("expected April, got month %d", p.Month)
	}
}

func TestPeriodIndex_ForIsIdempotent(t *testing.T) {
	idx := NewPeriodIndex(generatePeriods(2024, 2024), testLoc)

	first, err := idx.For(day(2024, time.June, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := idx.For(day(2024, time.June, 15))
	if first != second {
		t.Error("expected the same period instance on repeated lookups")
	}
	january, _ := idx.ByMonth(2024, 1)
	if n := len(idx.From(january)); n != 12 {
		t.Errorf("expected lookups not to add periods, got %d", n)
	}
}

func TestPeriodIndex_From(t *testing.T) {
	idx := NewPeriodIndex(generatePeriods(2024, 2024), testLoc)
	start, _ := idx.For(day(2024, time.October, 1))

	got := idx.From(start)
	if len(got) != 3 {
		t.Fatalf("expected 3 periods, got %d", len(got))
	}
	for i, want := range []int{10, 11, 12} {
		if got[i].Month != want {
			t.Errorf("position %d: expected month %d, got %d", i, want, got[i].Month)
		}
	}
}

func TestOnOrBefore_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, time.March, 10, 23, 0, 0, 0, testLoc)
	b := time.Date(2024, time.March, 10, 1, 0, 0, 0, testLoc)
	if !OnOrBefore(a, b, testLoc) {
		t.Error("expected same calendar day to compare as on-or-before")
	}
	if OnOrBefore(b.AddDate(0, 0, 1), a, testLoc) {
		t.Error("expected next day not to be on-or-before")
	}
}
