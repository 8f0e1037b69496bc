package period

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// GeneratePeriodsInput represents the input for bulk period generation.
type GeneratePeriodsInput struct {
	FromYear int
	ToYear   int
}

// GeneratePeriodsOutput represents the output of bulk period generation.
type GeneratePeriodsOutput struct {
	Created int
	Total   int
}

// GeneratePeriodsUseCase creates every missing monthly period of a year range.
// Running it again with the same range creates nothing.
type GeneratePeriodsUseCase struct {
	store    adapter.Store
	lock     adapter.MutationLock
	settings ledger.Settings
}

// NewGeneratePeriodsUseCase creates a new GeneratePeriodsUseCase instance.
func NewGeneratePeriodsUseCase(store adapter.Store, lock adapter.MutationLock, settings ledger.Settings) *GeneratePeriodsUseCase {
	return &GeneratePeriodsUseCase{
		store:    store,
		lock:     lock,
		settings: settings,
	}
}

// Execute performs the period generation.
func (uc *GeneratePeriodsUseCase) Execute(ctx context.Context, input GeneratePeriodsInput) (*GeneratePeriodsOutput, error) {
	if input.FromYear <= 0 || input.ToYear < input.FromYear {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidPeriodRange,
			fmt.Sprintf("invalid period range %d-%d", input.FromYear, input.ToYear),
			domainerror.ErrInvalidPeriodRange,
		)
	}

	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.store.Periods().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load periods: %w", err)
	}
	known := make(map[int]bool, len(existing))
	for _, p := range existing {
		known[p.Key()] = true
	}

	loc := uc.settings.Loc()
	missing := make([]*entity.Period, 0)
	for year := input.FromYear; year <= input.ToYear; year++ {
		for month := 1; month <= 12; month++ {
			if !known[entity.PeriodKey(year, month)] {
				missing = append(missing, entity.NewPeriod(year, month, loc))
			}
		}
	}

	if err := uc.store.Periods().CreateBatch(ctx, missing); err != nil {
		return nil, fmt.Errorf("failed to create periods: %w", err)
	}

	if len(missing) > 0 {
		slog.Info("Periods generated", "from_year", input.FromYear, "to_year", input.ToYear, "created", len(missing))
	}

	return &GeneratePeriodsOutput{
		Created: len(missing),
		Total:   len(existing) + len(missing),
	}, nil
}
