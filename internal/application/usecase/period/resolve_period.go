package period

import (
	"context"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// ResolvePeriodInput represents the input for resolving the period of a date.
type ResolvePeriodInput struct {
	Date time.Time
}

// ResolvePeriodOutput represents the output of period resolution.
type ResolvePeriodOutput struct {
	Period *entity.Period
}

// ResolvePeriodUseCase maps a date to its pre-generated period.
type ResolvePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
	settings   ledger.Settings
}

// NewResolvePeriodUseCase creates a new ResolvePeriodUseCase instance.
func NewResolvePeriodUseCase(periodRepo adapter.PeriodRepository, settings ledger.Settings) *ResolvePeriodUseCase {
	return &ResolvePeriodUseCase{
		periodRepo: periodRepo,
		settings:   settings,
	}
}

// Execute resolves the period. Dates outside the generated range are not found.
func (uc *ResolvePeriodUseCase) Execute(ctx context.Context, input ResolvePeriodInput) (*ResolvePeriodOutput, error) {
	idx, err := LoadIndex(ctx, uc.periodRepo, uc.settings.Loc())
	if err != nil {
		return nil, err
	}
	p, err := idx.For(input.Date)
	if err != nil {
		return nil, err
	}
	return &ResolvePeriodOutput{Period: p}, nil
}
