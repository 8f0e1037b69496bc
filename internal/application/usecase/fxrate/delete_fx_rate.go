package fxrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// DeleteFxRateUseCase deletes one rate row.
type DeleteFxRateUseCase struct {
	store    adapter.Store
	lock     adapter.MutationLock
	updater  *balance.Updater
	settings ledger.Settings
}

// NewDeleteFxRateUseCase creates a new DeleteFxRateUseCase instance.
func NewDeleteFxRateUseCase(store adapter.Store, lock adapter.MutationLock, updater *balance.Updater, settings ledger.Settings) *DeleteFxRateUseCase {
	return &DeleteFxRateUseCase{
		store:    store,
		lock:     lock,
		updater:  updater,
		settings: settings,
	}
}

// Execute deletes the row and refreshes the period's cached balances.
func (uc *DeleteFxRateUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	rate, err := uc.store.FxRates().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrFxRateNotFound) {
			return domainerror.NewNotFoundError(domainerror.ErrCodeFxRateNotFound, fmt.Sprintf("fx rate %s not found", id), err)
		}
		return fmt.Errorf("failed to find fx rate: %w", err)
	}

	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return err
	}
	p, err := lookup.Period(idx, rate.PeriodID)
	if err != nil {
		return err
	}

	return uc.store.Atomic(ctx, func(tx adapter.Store) error {
		if err := tx.FxRates().Delete(ctx, rate.ID); err != nil {
			return fmt.Errorf("failed to delete fx rate: %w", err)
		}
		return uc.updater.RatesChanged(ctx, tx, p)
	})
}
