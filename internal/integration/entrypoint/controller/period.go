package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// PeriodController handles period-related HTTP requests.
type PeriodController struct {
	listUseCase    *period.ListPeriodsUseCase
	resolveUseCase *period.ResolvePeriodUseCase
	deleteUseCase  *period.DeletePeriodUseCase
	actualsUseCase *balance.GetPeriodActualsUseCase
	budgetsUseCase *budget.GetPeriodBudgetsUseCase
	summaryUseCase *balance.GetPeriodSummaryUseCase
	loc            *time.Location
}

// NewPeriodController creates a new period controller instance.
func NewPeriodController(
	listUseCase *period.ListPeriodsUseCase,
	resolveUseCase *period.ResolvePeriodUseCase,
	deleteUseCase *period.DeletePeriodUseCase,
	actualsUseCase *balance.GetPeriodActualsUseCase,
	budgetsUseCase *budget.GetPeriodBudgetsUseCase,
	summaryUseCase *balance.GetPeriodSummaryUseCase,
	loc *time.Location,
) *PeriodController {
	return &PeriodController{
		listUseCase:    listUseCase,
		resolveUseCase: resolveUseCase,
		deleteUseCase:  deleteUseCase,
		actualsUseCase: actualsUseCase,
		budgetsUseCase: budgetsUseCase,
		summaryUseCase: summaryUseCase,
		loc:            loc,
	}
}

// List handles GET /periods requests.
func (c *PeriodController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPeriodListResponse(output.Periods, c.loc))
}

// Resolve handles GET /periods/resolve?date=YYYY-MM-DD requests.
func (c *PeriodController) Resolve(ctx *gin.Context) {
	date, ok := parseDate(ctx, ctx.Query("date"), c.loc)
	if !ok {
		return
	}
	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), period.ResolvePeriodInput{Date: date})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPeriodResponse(output.Period, c.loc))
}

// Delete handles DELETE /periods/:id requests.
func (c *PeriodController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "period")
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), period.DeletePeriodInput{PeriodID: id}); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Actuals handles GET /periods/:id/actuals requests.
func (c *PeriodController) Actuals(ctx *gin.Context) {
	id, ok := pathID(ctx, "period")
	if !ok {
		return
	}
	output, err := c.actualsUseCase.Execute(ctx.Request.Context(), balance.GetPeriodActualsInput{PeriodID: id})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPeriodActualsResponse(output))
}

// Budgets handles GET /periods/:id/budgets requests.
func (c *PeriodController) Budgets(ctx *gin.Context) {
	id, ok := pathID(ctx, "period")
	if !ok {
		return
	}
	output, err := c.budgetsUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPeriodBudgetsResponse(output))
}

// Summary handles GET /periods/:id/summary requests.
func (c *PeriodController) Summary(ctx *gin.Context) {
	id, ok := pathID(ctx, "period")
	if !ok {
		return
	}
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), balance.GetPeriodSummaryInput{PeriodID: id})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(output, c.loc))
}
