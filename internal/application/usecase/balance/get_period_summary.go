package balance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// GetPeriodSummaryInput represents the input for a period summary.
type GetPeriodSummaryInput struct {
	PeriodID uuid.UUID
}

// CategorySummary is the budget-versus-actual line of one category.
type CategorySummary struct {
	CategoryID uuid.UUID
	Name       string
	Type       entity.CategoryType
	Balance    int64
	Budget     int64
	Remaining  int64
}

// GetPeriodSummaryOutput represents the budget-versus-actual view of a period.
type GetPeriodSummaryOutput struct {
	Period         *entity.Period
	Currency       string
	Actual         entity.PeriodActual
	BudgetIncome   int64
	BudgetExpenses int64
	Categories     []CategorySummary
	MissingRates   int
}

// GetPeriodSummaryUseCase computes a full period summary straight from the
// transaction log. The independent reads run concurrently.
type GetPeriodSummaryUseCase struct {
	store adapter.Store
	calc  *Calculator
}

// NewGetPeriodSummaryUseCase creates a new GetPeriodSummaryUseCase instance.
func NewGetPeriodSummaryUseCase(store adapter.Store, calc *Calculator) *GetPeriodSummaryUseCase {
	return &GetPeriodSummaryUseCase{
		store: store,
		calc:  calc,
	}
}

// Execute computes the summary.
func (uc *GetPeriodSummaryUseCase) Execute(ctx context.Context, input GetPeriodSummaryInput) (*GetPeriodSummaryOutput, error) {
	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.calc.Settings().Loc())
	if err != nil {
		return nil, err
	}
	p, err := lookup.Period(idx, input.PeriodID)
	if err != nil {
		return nil, err
	}

	var (
		txs        []*entity.Transaction
		categories []*entity.Category
		budgets    []*entity.Budget
		valuation  *ledger.Valuation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = uc.store.Transactions().FindByFilter(gctx, adapter.TransactionFilter{PeriodID: &p.ID})
		if err != nil {
			return fmt.Errorf("failed to load period transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = uc.store.Categories().FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = uc.store.Budgets().FindByPeriod(gctx, p.ID)
		if err != nil {
			return fmt.Errorf("failed to load period budgets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		valuation, err = uc.calc.Valuation(gctx, uc.store, p.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	actual, _ := valuation.PeriodActuals(txs, byID)
	budgetIncome, budgetExpenses := ledger.PeriodBudgets(budgets, byID)

	missing := 0
	lines := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		totals := valuation.CategoryBalance(c.ID, txs)
		missing += totals.MissingRates
		budget := ledger.BudgetTotal(c.ID, budgets)
		lines = append(lines, CategorySummary{
			CategoryID: c.ID,
			Name:       c.Name,
			Type:       c.Type,
			Balance:    totals.Minor(),
			Budget:     budget,
			Remaining:  ledger.Remaining(budget, totals.Minor()),
		})
	}

	if missing > 0 {
		slog.Warn("Conversion unavailable for some transactions",
			"period", p.Label,
			"default_currency", valuation.DefaultCurrency,
			"missing_rates", missing,
		)
	}

	return &GetPeriodSummaryOutput{
		Period:         p,
		Currency:       valuation.DefaultCurrency,
		Actual:         actual,
		BudgetIncome:   budgetIncome,
		BudgetExpenses: budgetExpenses,
		Categories:     lines,
		MissingRates:   missing,
	}, nil
}
