package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction-related HTTP requests.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	getUseCase    *transaction.GetTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	loc           *time.Location
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	loc *time.Location,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		loc:           loc,
	}
}

// List handles GET /transactions requests.
// Optional filters: period_id, account_id, category_id, payee_id.
func (c *TransactionController) List(ctx *gin.Context) {
	var input transaction.ListTransactionsInput
	var ok bool
	if input.PeriodID, ok = optionalQueryID(ctx, "period_id"); !ok {
		return
	}
	if input.AccountID, ok = optionalQueryID(ctx, "account_id"); !ok {
		return
	}
	if input.CategoryID, ok = optionalQueryID(ctx, "category_id"); !ok {
		return
	}
	if input.PayeeID, ok = optionalQueryID(ctx, "payee_id"); !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, c.loc))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}
	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{ID: id})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction, c.loc))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	fields, ok := c.toFields(ctx, req)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{Fields: fields})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction, c.loc))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	fields, ok := c.toFields(ctx, req)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:     id,
		Fields: fields,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction, c.loc))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id}); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// toFields converts the request body, answering 400 on malformed ids or dates.
func (c *TransactionController) toFields(ctx *gin.Context, req dto.TransactionRequest) (transaction.Fields, bool) {
	var f transaction.Fields
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		badRequest(ctx, "Invalid account_id format", "")
		return f, false
	}
	date, ok := parseDate(ctx, req.Date, c.loc)
	if !ok {
		return f, false
	}

	f = transaction.Fields{
		AccountID:      accountID,
		Date:           date,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Income:         req.Income,
		Transfer:       req.Transfer,
		Expense:        req.Expense,
		ExpenseSettled: req.ExpenseSettled,
		AmountTo:       req.AmountTo,
		Memo:           req.Memo,
		Recurring:      req.Recurring,
		RecurrenceUnit: entity.RecurrenceUnit(req.RecurrenceUnit),
		ExternalID:     req.ExternalID,
		Posted:         req.Posted,
	}
	if f.PayeeID, ok = optionalID(ctx, req.PayeeID, "payee_id"); !ok {
		return f, false
	}
	if f.DebtorID, ok = optionalID(ctx, req.DebtorID, "debtor_id"); !ok {
		return f, false
	}
	if f.CategoryID, ok = optionalID(ctx, req.CategoryID, "category_id"); !ok {
		return f, false
	}
	if f.ToAccountID, ok = optionalID(ctx, req.ToAccountID, "to_account_id"); !ok {
		return f, false
	}
	return f, true
}
