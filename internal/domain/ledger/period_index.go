package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// PeriodIndex resolves dates to pre-generated periods.
type PeriodIndex struct {
	loc   *time.Location
	byKey map[int]*entity.Period
	byID  map[uuid.UUID]*entity.Period
}

// NewPeriodIndex builds an index over the given periods. Dates are resolved in loc.
func NewPeriodIndex(periods []*entity.Period, loc *time.Location) *PeriodIndex {
	if loc == nil {
		loc = time.Local
	}
	idx := &PeriodIndex{
		loc:   loc,
		byKey: make(map[int]*entity.Period, len(periods)),
		byID:  make(map[uuid.UUID]*entity.Period, len(periods)),
	}
	for _, p := range periods {
		idx.byKey[p.Key()] = p
		idx.byID[p.ID] = p
	}
	return idx
}

// Location returns the calendar location dates are resolved in.
func (idx *PeriodIndex) Location() *time.Location {
	return idx.loc
}

// For returns the period whose year and month match date in the index location.
// It never fabricates a period: a date outside the generated range is a not-found error.
func (idx *PeriodIndex) For(date time.Time) (*entity.Period, error) {
	local := date.In(idx.loc)
	p, ok := idx.byKey[entity.PeriodKey(local.Year(), int(local.Month()))]
	if !ok {
		return nil, domainerror.NewNotFoundError(
			domainerror.ErrCodePeriodForDateMissing,
			fmt.Sprintf("no period for %s", local.Format("2006-01")),
			domainerror.ErrPeriodNotFound,
		)
	}
	return p, nil
}

// ByID returns the period with the given id.
func (idx *PeriodIndex) ByID(id uuid.UUID) (*entity.Period, bool) {
	p, ok := idx.byID[id]
	return p, ok
}

// ByMonth returns the period of the given calendar month.
func (idx *PeriodIndex) ByMonth(year, month int) (*entity.Period, bool) {
	p, ok := idx.byKey[entity.PeriodKey(year, month)]
	return p, ok
}

// From returns the indexed periods starting at or after p, in calendar order.
func (idx *PeriodIndex) From(p *entity.Period) []*entity.Period {
	out := make([]*entity.Period, 0)
	for _, candidate := range idx.byKey {
		if candidate.Key() >= p.Key() {
			out = append(out, candidate)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// OnOrBefore compares the calendar days of a and b in loc, ignoring time of day.
func OnOrBefore(a, b time.Time, loc *time.Location) bool {
	return !StartOfDay(a, loc).After(StartOfDay(b, loc))
}
