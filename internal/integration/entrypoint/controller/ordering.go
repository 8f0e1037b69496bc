package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/ordering"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// OrderingController handles manual reordering of lists.
type OrderingController struct {
	reorderUseCase *ordering.ReorderUseCase
}

// NewOrderingController creates a new ordering controller instance.
func NewOrderingController(reorderUseCase *ordering.ReorderUseCase) *OrderingController {
	return &OrderingController{reorderUseCase: reorderUseCase}
}

// Reorder handles PATCH /reorder requests.
func (c *OrderingController) Reorder(ctx *gin.Context) {
	var req dto.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), dto.ToReorderInput(req))
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ReorderResponse{Changed: output.Changed})
}
