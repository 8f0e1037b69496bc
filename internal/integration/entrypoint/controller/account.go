package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// AccountController handles account-related HTTP requests.
type AccountController struct {
	createUseCase        *account.CreateAccountUseCase
	listUseCase          *account.ListAccountsUseCase
	getUseCase           *account.GetAccountUseCase
	updateUseCase        *account.UpdateAccountUseCase
	deleteUseCase        *account.DeleteAccountUseCase
	balanceUseCase       *balance.GetAccountBalanceUseCase
	periodBalanceUseCase *balance.GetAccountPeriodBalanceUseCase
	loc                  *time.Location
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	getUseCase *account.GetAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	balanceUseCase *balance.GetAccountBalanceUseCase,
	periodBalanceUseCase *balance.GetAccountPeriodBalanceUseCase,
	loc *time.Location,
) *AccountController {
	return &AccountController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		balanceUseCase:       balanceUseCase,
		periodBalanceUseCase: periodBalanceUseCase,
		loc:                  loc,
	}
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		Name:       req.Name,
		Currency:   req.Currency,
		Type:       entity.AccountType(req.Type),
		ExternalID: req.ExternalID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// Get handles GET /accounts/:id requests.
func (c *AccountController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "account")
	if !ok {
		return
	}
	a, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAccountResponse(a))
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "account")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}

	input := account.UpdateAccountInput{
		ID:                id,
		Name:              req.Name,
		ExternalID:        req.ExternalID,
		ReconciledBalance: req.ReconciledBalance,
	}
	if req.Type != nil {
		t := entity.AccountType(*req.Type)
		input.Type = &t
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "account")
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{ID: id}); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Balance handles GET /accounts/:id/balance requests.
// With period_id it answers the cached balance at the end of that period,
// otherwise the balance as of the as_of date (default today).
func (c *AccountController) Balance(ctx *gin.Context) {
	id, ok := pathID(ctx, "account")
	if !ok {
		return
	}
	periodID, ok := optionalQueryID(ctx, "period_id")
	if !ok {
		return
	}

	if periodID != nil {
		output, err := c.periodBalanceUseCase.Execute(ctx.Request.Context(), balance.GetAccountPeriodBalanceInput{
			AccountID: id,
			PeriodID:  *periodID,
		})
		if err != nil {
			handleLedgerError(ctx, err)
			return
		}
		resp := dto.ToAccountBalanceResponse(output)
		resp.PeriodID = periodID.String()
		ctx.JSON(http.StatusOK, resp)
		return
	}

	asOf := time.Now().In(c.loc)
	if raw := ctx.Query("as_of"); raw != "" {
		if asOf, ok = parseDate(ctx, raw, c.loc); !ok {
			return
		}
	}
	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), balance.GetAccountBalanceInput{
		AccountID: id,
		AsOf:      asOf,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	resp := dto.ToAccountBalanceResponse(output)
	resp.AsOf = dto.FormatDate(asOf, c.loc)
	ctx.JSON(http.StatusOK, resp)
}
