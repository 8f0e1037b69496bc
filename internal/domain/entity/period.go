// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// Period is a calendar-month bucket used as the unit of budgeting and reporting.
type Period struct {
	ID    uuid.UUID
	Year  int
	Month int
	Start time.Time // First day of the month at local midnight
	Label string
}

// NewPeriod creates the Period for the given year and month in loc.
func NewPeriod(year, month int, loc *time.Location) *Period {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)

	return &Period{
		ID:    uuid.New(),
		Year:  year,
		Month: month,
		Start: start,
		Label: PeriodLabel(year, month),
	}
}

// PeriodLabel returns the display label of a period (e.g. "Mar 2024").
func PeriodLabel(year, month int) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[time.Month(month)], year)
}

// End returns the last calendar day of the period at midnight.
func (p *Period) End() time.Time {
	return p.Start.AddDate(0, 1, -1)
}

// Key returns a sortable year/month key (e.g. 202403).
func (p *Period) Key() int {
	return PeriodKey(p.Year, p.Month)
}

// PeriodKey builds the sortable year/month key.
func PeriodKey(year, month int) int {
	return year*100 + month
}
