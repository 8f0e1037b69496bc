package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PeriodResponse represents a single period in API responses.
type PeriodResponse struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// PeriodListResponse represents the response for listing periods.
type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// PeriodActualsResponse represents the income and spend of a period.
type PeriodActualsResponse struct {
	PeriodID string `json:"period_id"`
	Currency string `json:"currency"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// PeriodBudgetsResponse represents the budgeted income and spend of a period.
type PeriodBudgetsResponse struct {
	PeriodID string           `json:"period_id"`
	Income   int64            `json:"income"`
	Expenses int64            `json:"expenses"`
	Budgets  []BudgetResponse `json:"budgets"`
}

// CategorySummaryResponse is one category line of a period summary.
type CategorySummaryResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Balance    int64  `json:"balance"`
	Budget     int64  `json:"budget"`
	Remaining  int64  `json:"remaining"`
}

// PeriodSummaryResponse represents the full budget view of a period.
type PeriodSummaryResponse struct {
	Period         PeriodResponse            `json:"period"`
	Currency       string                    `json:"currency"`
	Income         int64                     `json:"income"`
	Expenses       int64                     `json:"expenses"`
	BudgetIncome   int64                     `json:"budget_income"`
	BudgetExpenses int64                     `json:"budget_expenses"`
	MissingRates   int                       `json:"missing_rates"`
	Categories     []CategorySummaryResponse `json:"categories"`
}

// ToPeriodResponse converts a domain Period entity to a PeriodResponse DTO.
func ToPeriodResponse(p *entity.Period, loc *time.Location) PeriodResponse {
	return PeriodResponse{
		ID:    p.ID.String(),
		Year:  p.Year,
		Month: p.Month,
		Start: FormatDate(p.Start, loc),
		End:   FormatDate(p.End(), loc),
		Label: p.Label,
	}
}

// ToPeriodListResponse converts periods to a PeriodListResponse DTO.
func ToPeriodListResponse(periods []*entity.Period, loc *time.Location) PeriodListResponse {
	out := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		out[i] = ToPeriodResponse(p, loc)
	}
	return PeriodListResponse{Periods: out}
}

// ToPeriodActualsResponse converts the actuals output to its DTO.
func ToPeriodActualsResponse(output *balance.GetPeriodActualsOutput) PeriodActualsResponse {
	return PeriodActualsResponse{
		PeriodID: output.PeriodID.String(),
		Currency: output.Currency,
		Income:   output.Income,
		Expenses: output.Expenses,
	}
}

// ToPeriodBudgetsResponse converts the period budgets output to its DTO.
func ToPeriodBudgetsResponse(output *budget.PeriodBudgetsOutput) PeriodBudgetsResponse {
	return PeriodBudgetsResponse{
		PeriodID: output.PeriodID.String(),
		Income:   output.Income,
		Expenses: output.Expenses,
		Budgets:  ToBudgetResponses(output.Rows),
	}
}

// ToPeriodSummaryResponse converts the summary output to its DTO.
func ToPeriodSummaryResponse(output *balance.GetPeriodSummaryOutput, loc *time.Location) PeriodSummaryResponse {
	lines := make([]CategorySummaryResponse, len(output.Categories))
	for i, c := range output.Categories {
		lines[i] = CategorySummaryResponse{
			CategoryID: c.CategoryID.String(),
			Name:       c.Name,
			Type:       string(c.Type),
			Balance:    c.Balance,
			Budget:     c.Budget,
			Remaining:  c.Remaining,
		}
	}
	return PeriodSummaryResponse{
		Period:         ToPeriodResponse(output.Period, loc),
		Currency:       output.Currency,
		Income:         output.Actual.Income,
		Expenses:       output.Actual.Expenses,
		BudgetIncome:   output.BudgetIncome,
		BudgetExpenses: output.BudgetExpenses,
		MissingRates:   output.MissingRates,
		Categories:     lines,
	}
}
