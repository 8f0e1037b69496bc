package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/payee"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// PayeeController handles payee-related HTTP requests.
type PayeeController struct {
	createUseCase *payee.CreatePayeeUseCase
	listUseCase   *payee.ListPayeesUseCase
	updateUseCase *payee.UpdatePayeeUseCase
	deleteUseCase *payee.DeletePayeeUseCase
	debtUseCase   *balance.GetDebtBalanceUseCase
}

// NewPayeeController creates a new payee controller instance.
func NewPayeeController(
	createUseCase *payee.CreatePayeeUseCase,
	listUseCase *payee.ListPayeesUseCase,
	updateUseCase *payee.UpdatePayeeUseCase,
	deleteUseCase *payee.DeletePayeeUseCase,
	debtUseCase *balance.GetDebtBalanceUseCase,
) *PayeeController {
	return &PayeeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		debtUseCase:   debtUseCase,
	}
}

// List handles GET /payees requests.
func (c *PayeeController) List(ctx *gin.Context) {
	payees, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPayeeListResponse(payees))
}

// Create handles POST /payees requests.
func (c *PayeeController) Create(ctx *gin.Context) {
	var req dto.CreatePayeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	categoryID, ok := optionalID(ctx, req.DefaultCategoryID, "default_category_id")
	if !ok {
		return
	}
	accountID, ok := optionalID(ctx, req.DefaultAccountID, "default_account_id")
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), payee.CreatePayeeInput{
		Name:              req.Name,
		DefaultCategoryID: categoryID,
		DefaultAccountID:  accountID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToPayeeResponse(output.Payee))
}

// Update handles PUT /payees/:id requests. Omitted defaults are cleared.
func (c *PayeeController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "payee")
	if !ok {
		return
	}
	var req dto.UpdatePayeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	categoryID, ok := optionalID(ctx, req.DefaultCategoryID, "default_category_id")
	if !ok {
		return
	}
	accountID, ok := optionalID(ctx, req.DefaultAccountID, "default_account_id")
	if !ok {
		return
	}

	p, err := c.updateUseCase.Execute(ctx.Request.Context(), payee.UpdatePayeeInput{
		ID:                id,
		Name:              req.Name,
		DefaultCategoryID: categoryID,
		DefaultAccountID:  accountID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPayeeResponse(p))
}

// Delete handles DELETE /payees/:id requests.
func (c *PayeeController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "payee")
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Debt handles GET /payees/:id/debt?period_id= requests.
func (c *PayeeController) Debt(ctx *gin.Context) {
	id, ok := pathID(ctx, "payee")
	if !ok {
		return
	}
	periodID, ok := queryID(ctx, "period_id")
	if !ok {
		return
	}
	output, err := c.debtUseCase.Execute(ctx.Request.Context(), balance.GetDebtBalanceInput{
		PayeeID:  id,
		PeriodID: periodID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output))
}
