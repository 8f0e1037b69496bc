package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/fxrate"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// FxRateController handles exchange rate HTTP requests.
type FxRateController struct {
	createUseCase *fxrate.CreateFxRateUseCase
	listUseCase   *fxrate.ListFxRatesUseCase
	deleteUseCase *fxrate.DeleteFxRateUseCase
	rateUseCase   *fxrate.GetRateUseCase
	loc           *time.Location
}

// NewFxRateController creates a new exchange rate controller instance.
func NewFxRateController(
	createUseCase *fxrate.CreateFxRateUseCase,
	listUseCase *fxrate.ListFxRatesUseCase,
	deleteUseCase *fxrate.DeleteFxRateUseCase,
	rateUseCase *fxrate.GetRateUseCase,
	loc *time.Location,
) *FxRateController {
	return &FxRateController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		rateUseCase:   rateUseCase,
		loc:           loc,
	}
}

// List handles GET /fx-rates requests, optionally filtered by period_id.
func (c *FxRateController) List(ctx *gin.Context) {
	periodID, ok := optionalQueryID(ctx, "period_id")
	if !ok {
		return
	}
	rates, err := c.listUseCase.Execute(ctx.Request.Context(), periodID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFxRateListResponse(rates, c.loc))
}

// Create handles POST /fx-rates requests.
func (c *FxRateController) Create(ctx *gin.Context) {
	var req dto.CreateFxRateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fxrate.CreateFxRateInput{
		PeriodID:  uuid.MustParse(req.PeriodID),
		Currency1: req.Currency1,
		Currency2: req.Currency2,
		Rate:      req.Rate,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToFxRateResponse(output.FxRate, c.loc))
}

// Delete handles DELETE /fx-rates/:id requests.
func (c *FxRateController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "fx rate")
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Rate handles GET /fx-rates/rate?period_id=&from=&to= requests.
func (c *FxRateController) Rate(ctx *gin.Context) {
	periodID, ok := queryID(ctx, "period_id")
	if !ok {
		return
	}
	output, err := c.rateUseCase.Execute(ctx.Request.Context(), fxrate.GetRateInput{
		PeriodID: periodID,
		From:     ctx.Query("from"),
		To:       ctx.Query("to"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRateResponse(periodID.String(), output))
}
