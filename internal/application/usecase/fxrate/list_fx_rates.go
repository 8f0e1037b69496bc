package fxrate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListFxRatesUseCase lists rate rows, optionally restricted to one period.
type ListFxRatesUseCase struct {
	rateRepo adapter.FxRateRepository
}

// NewListFxRatesUseCase creates a new ListFxRatesUseCase instance.
func NewListFxRatesUseCase(rateRepo adapter.FxRateRepository) *ListFxRatesUseCase {
	return &ListFxRatesUseCase{rateRepo: rateRepo}
}

// Execute lists the rates.
func (uc *ListFxRatesUseCase) Execute(ctx context.Context, periodID *uuid.UUID) ([]*entity.FxRate, error) {
	var (
		rates []*entity.FxRate
		err   error
	)
	if periodID != nil {
		rates, err = uc.rateRepo.FindByPeriod(ctx, *periodID)
	} else {
		rates, err = uc.rateRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list fx rates: %w", err)
	}
	return rates, nil
}
