package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// BudgetController handles budget entry HTTP requests.
type BudgetController struct {
	createUseCase *budget.CreateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(createUseCase *budget.CreateBudgetUseCase, deleteUseCase *budget.DeleteBudgetUseCase) *BudgetController {
	return &BudgetController{
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}

	// binding already checked the uuid format
	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		PeriodID:   uuid.MustParse(req.PeriodID),
		CategoryID: uuid.MustParse(req.CategoryID),
		Amount:     req.Amount,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateBudgetResponse{
		Budget: dto.ToBudgetResponse(output.Budget),
		Total:  output.Total,
	})
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "budget")
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
