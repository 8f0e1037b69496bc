package period

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListPeriodsOutput represents the output of listing periods.
type ListPeriodsOutput struct {
	Periods []*entity.Period
}

// ListPeriodsUseCase lists every period in calendar order.
type ListPeriodsUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewListPeriodsUseCase creates a new ListPeriodsUseCase instance.
func NewListPeriodsUseCase(periodRepo adapter.PeriodRepository) *ListPeriodsUseCase {
	return &ListPeriodsUseCase{
		periodRepo: periodRepo,
	}
}

// Execute lists the periods.
func (uc *ListPeriodsUseCase) Execute(ctx context.Context) (*ListPeriodsOutput, error) {
	periods, err := uc.periodRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return &ListPeriodsOutput{Periods: periods}, nil
}
