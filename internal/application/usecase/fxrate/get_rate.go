package fxrate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// GetRateInput represents the input for a rate lookup.
type GetRateInput struct {
	PeriodID uuid.UUID
	From     string
	To       string
}

// GetRateOutput represents a resolved rate. Scaled is the x100 form amount
// conversion uses; for a reversed pair it equals Rate.
type GetRateOutput struct {
	From   string
	To     string
	Rate   decimal.Decimal
	Scaled decimal.Decimal
}

// GetRateUseCase resolves the rate of a currency pair in a period, using the
// reverse pair when only that one is stored.
type GetRateUseCase struct {
	rateRepo adapter.FxRateRepository
}

// NewGetRateUseCase creates a new GetRateUseCase instance.
func NewGetRateUseCase(rateRepo adapter.FxRateRepository) *GetRateUseCase {
	return &GetRateUseCase{rateRepo: rateRepo}
}

// Execute resolves the rate.
func (uc *GetRateUseCase) Execute(ctx context.Context, input GetRateInput) (*GetRateOutput, error) {
	from, err := account.ParseCurrency(input.From)
	if err != nil {
		return nil, err
	}
	to, err := account.ParseCurrency(input.To)
	if err != nil {
		return nil, err
	}

	rates, err := uc.rateRepo.FindByPeriod(ctx, input.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fx rates: %w", err)
	}
	table := ledger.NewFxTable(rates)

	scaled, ok := table.ScaledRate(input.PeriodID, from, to)
	if !ok {
		return nil, domainerror.NewLedgerError(
			domainerror.KindConversionUnavailable,
			domainerror.ErrCodeConversionUnavailable,
			fmt.Sprintf("no rate between %s and %s in this period", from, to),
			domainerror.ErrConversionUnavailable,
		)
	}
	rate, _ := table.Rate(input.PeriodID, from, to)

	return &GetRateOutput{
		From:   from,
		To:     to,
		Rate:   rate,
		Scaled: scaled,
	}, nil
}
