// Package fxrate contains exchange rate use cases.
package fxrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// CreateFxRateInput represents the input for recording an exchange rate.
// Rate is the price of one Currency1 in Currency2, scaled by 100.
type CreateFxRateInput struct {
	PeriodID  uuid.UUID
	Currency1 string
	Currency2 string
	Rate      int64
}

// CreateFxRateOutput represents the recorded rate.
type CreateFxRateOutput struct {
	FxRate *entity.FxRate
}

// CreateFxRateUseCase records a rate for a period. A newer row for the same pair
// supersedes older ones.
type CreateFxRateUseCase struct {
	store    adapter.Store
	lock     adapter.MutationLock
	updater  *balance.Updater
	settings ledger.Settings
}

// NewCreateFxRateUseCase creates a new CreateFxRateUseCase instance.
func NewCreateFxRateUseCase(store adapter.Store, lock adapter.MutationLock, updater *balance.Updater, settings ledger.Settings) *CreateFxRateUseCase {
	return &CreateFxRateUseCase{
		store:    store,
		lock:     lock,
		updater:  updater,
		settings: settings,
	}
}

// Execute records the rate and refreshes the period's cached default-currency
// balances in the same commit.
func (uc *CreateFxRateUseCase) Execute(ctx context.Context, input CreateFxRateInput) (*CreateFxRateOutput, error) {
	c1, err := account.ParseCurrency(input.Currency1)
	if err != nil {
		return nil, err
	}
	c2, err := account.ParseCurrency(input.Currency2)
	if err != nil {
		return nil, err
	}
	if c1 == c2 {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeSameCurrencyPair,
			fmt.Sprintf("a rate needs two different currencies, got %s twice", c1),
			domainerror.ErrSameCurrencyPair,
		)
	}
	if input.Rate <= 0 {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidFxRate,
			"rate must be greater than zero",
			domainerror.ErrInvalidFxRate,
		)
	}

	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return nil, err
	}
	p, err := lookup.Period(idx, input.PeriodID)
	if err != nil {
		return nil, err
	}

	rate := entity.NewFxRate(p, c1, c2, input.Rate)
	err = uc.store.Atomic(ctx, func(tx adapter.Store) error {
		if err := tx.FxRates().Create(ctx, rate); err != nil {
			return fmt.Errorf("failed to create fx rate: %w", err)
		}
		return uc.updater.RatesChanged(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Fx rate recorded", "period", p.Label, "pair", c1+"/"+c2, "rate", input.Rate)
	return &CreateFxRateOutput{FxRate: rate}, nil
}
