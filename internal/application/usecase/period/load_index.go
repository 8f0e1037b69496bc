// Package period contains period-related use cases.
package period

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// LoadIndex reads every period and indexes it in loc. Period starts are stored in
// UTC, so they are rebuilt as local midnight of the first day of the month.
func LoadIndex(ctx context.Context, repo adapter.PeriodRepository, loc *time.Location) (*ledger.PeriodIndex, error) {
	periods, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load periods: %w", err)
	}
	for _, p := range periods {
		p.Start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	}
	return ledger.NewPeriodIndex(periods, loc), nil
}
