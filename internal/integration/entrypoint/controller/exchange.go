package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/bankimport"
	"github.com/finance-tracker/ledger/internal/application/usecase/exchange"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/tsv"
)

const (
	tsvContentType = "text/tab-separated-values; charset=utf-8"
	maxUploadBytes = 10 << 20
)

// ExchangeController handles TSV import/export and bank feed imports.
type ExchangeController struct {
	exportTransactionsUseCase *exchange.ExportTransactionsUseCase
	importTransactionsUseCase *exchange.ImportTransactionsUseCase
	exportFxRatesUseCase      *exchange.ExportFxRatesUseCase
	importFxRatesUseCase      *exchange.ImportFxRatesUseCase
	bankImportUseCase         *bankimport.ImportRecordsUseCase
	loc                       *time.Location
}

// NewExchangeController creates a new exchange controller instance.
func NewExchangeController(
	exportTransactionsUseCase *exchange.ExportTransactionsUseCase,
	importTransactionsUseCase *exchange.ImportTransactionsUseCase,
	exportFxRatesUseCase *exchange.ExportFxRatesUseCase,
	importFxRatesUseCase *exchange.ImportFxRatesUseCase,
	bankImportUseCase *bankimport.ImportRecordsUseCase,
	loc *time.Location,
) *ExchangeController {
	return &ExchangeController{
		exportTransactionsUseCase: exportTransactionsUseCase,
		importTransactionsUseCase: importTransactionsUseCase,
		exportFxRatesUseCase:      exportFxRatesUseCase,
		importFxRatesUseCase:      importFxRatesUseCase,
		bankImportUseCase:         bankImportUseCase,
		loc:                       loc,
	}
}

// ExportTransactions handles GET /export/transactions requests, optionally for one period_id.
func (c *ExchangeController) ExportTransactions(ctx *gin.Context) {
	periodID, ok := optionalQueryID(ctx, "period_id")
	if !ok {
		return
	}
	rows, err := c.exportTransactionsUseCase.Execute(ctx.Request.Context(), periodID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	c.writeTSV(ctx, "transactions.tsv", rows)
}

// ImportTransactions handles POST /import/transactions requests with a TSV body.
func (c *ExchangeController) ImportTransactions(ctx *gin.Context) {
	rows, ok := c.readTSV(ctx)
	if !ok {
		return
	}
	output, err := c.importTransactionsUseCase.Execute(ctx.Request.Context(), rows)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FileImportResponse{
		Imported:      output.Imported,
		PayeesCreated: output.PayeesCreated,
	})
}

// ExportFxRates handles GET /export/fx-rates requests.
func (c *ExchangeController) ExportFxRates(ctx *gin.Context) {
	rows, err := c.exportFxRatesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	c.writeTSV(ctx, "fx_rates.tsv", rows)
}

// ImportFxRates handles POST /import/fx-rates requests with a TSV body.
func (c *ExchangeController) ImportFxRates(ctx *gin.Context) {
	rows, ok := c.readTSV(ctx)
	if !ok {
		return
	}
	imported, err := c.importFxRatesUseCase.Execute(ctx.Request.Context(), rows)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FileImportResponse{Imported: imported})
}

// BankImport handles POST /import/bank requests.
func (c *ExchangeController) BankImport(ctx *gin.Context) {
	var req dto.BankImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err.Error())
		return
	}
	output, err := c.bankImportUseCase.Execute(ctx.Request.Context(), dto.ToBankImportInput(req))
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BankImportResponse{
		Imported:     output.Imported,
		Duplicates:   output.Duplicates,
		OutOfWindow:  output.OutOfWindow,
		Rejected:     output.Rejected,
		Transactions: dto.ToTransactionListResponse(output.Transactions, c.loc).Transactions,
	})
}

func (c *ExchangeController) readTSV(ctx *gin.Context) ([][]string, bool) {
	body := http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxUploadBytes)
	rows, err := tsv.Read(body)
	if err != nil {
		badRequest(ctx, "Invalid tab-separated body", err.Error())
		return nil, false
	}
	return rows, true
}

func (c *ExchangeController) writeTSV(ctx *gin.Context, filename string, rows [][]string) {
	ctx.Header("Content-Type", tsvContentType)
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Status(http.StatusOK)
	if err := tsv.Write(ctx.Writer, rows); err != nil {
		// Headers are already sent.
		slog.Error("Failed to write export", "file", filename, "error", err)
	}
}
