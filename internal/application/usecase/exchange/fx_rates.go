package exchange

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/fxrate"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// ExportFxRatesUseCase renders all fx rates as rows, header first.
type ExportFxRatesUseCase struct {
	store    adapter.Store
	settings ledger.Settings
}

// NewExportFxRatesUseCase creates a new ExportFxRatesUseCase instance.
func NewExportFxRatesUseCase(store adapter.Store, settings ledger.Settings) *ExportFxRatesUseCase {
	return &ExportFxRatesUseCase{store: store, settings: settings}
}

// Execute exports the rates.
func (uc *ExportFxRatesUseCase) Execute(ctx context.Context) ([][]string, error) {
	rates, err := uc.store.FxRates().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fx rates: %w", err)
	}
	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(rates)+1)
	rows = append(rows, FxRateHeader)
	for _, r := range rates {
		p, ok := idx.ByID(r.PeriodID)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(p.Year),
			strconv.Itoa(p.Month),
			r.Currency1,
			r.Currency2,
			formatMinor(r.Rate),
		})
	}
	return rows, nil
}

// ImportFxRatesUseCase records fx rates from rows. The period of each row must
// already exist.
type ImportFxRatesUseCase struct {
	store      adapter.Store
	createRate *fxrate.CreateFxRateUseCase
	settings   ledger.Settings
}

// NewImportFxRatesUseCase creates a new ImportFxRatesUseCase instance.
func NewImportFxRatesUseCase(store adapter.Store, createRate *fxrate.CreateFxRateUseCase, settings ledger.Settings) *ImportFxRatesUseCase {
	return &ImportFxRatesUseCase{store: store, createRate: createRate, settings: settings}
}

// Execute imports the rows and returns the number of rates recorded.
func (uc *ImportFxRatesUseCase) Execute(ctx context.Context, rows [][]string) (int, error) {
	rows, err := dataRows(rows, FxRateHeader)
	if err != nil {
		return 0, err
	}
	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.settings.Loc())
	if err != nil {
		return 0, err
	}

	imported := 0
	for i, row := range rows {
		year, yerr := strconv.Atoi(strings.TrimSpace(row[0]))
		month, merr := strconv.Atoi(strings.TrimSpace(row[1]))
		if yerr != nil || merr != nil {
			return imported, rowError(i, fmt.Sprintf("%q/%q is not a year and month", row[0], row[1]))
		}
		p, ok := idx.ByMonth(year, month)
		if !ok {
			return imported, domainerror.NewNotFoundError(
				domainerror.ErrCodePeriodNotFound,
				fmt.Sprintf("row %d: no period for %s", i+1, entity.PeriodLabel(year, month)),
				domainerror.ErrPeriodNotFound,
			)
		}
		rate, err := parseMinor(row[4])
		if err != nil {
			return imported, rowError(i, fmt.Sprintf("rate %q is not a number", row[4]))
		}

		_, err = uc.createRate.Execute(ctx, fxrate.CreateFxRateInput{
			PeriodID:  p.ID,
			Currency1: row[2],
			Currency2: row[3],
			Rate:      rate,
		})
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", i+1, err)
		}
		imported++
	}
	return imported, nil
}
