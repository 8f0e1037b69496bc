package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// handleLedgerError writes the HTTP response for an error returned by a use case.
func handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusForKind(ledgerErr.Kind), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
			Kind:  string(ledgerErr.Kind),
		})
		return
	}

	slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForKind maps ledger error kinds to HTTP status codes.
func statusForKind(kind domainerror.ErrorKind) int {
	switch kind {
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindIntegrityViolation:
		return http.StatusConflict
	case domainerror.KindConversionUnavailable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx *gin.Context, msg string, details string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   msg,
		Code:    "VALIDATION_ERROR",
		Details: details,
	})
}

// pathID parses the :id route parameter, answering 400 when it is malformed.
func pathID(ctx *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid "+what+" ID format", "")
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses a required uuid query parameter.
func queryID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		badRequest(ctx, name+" is required", "")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(ctx, "Invalid "+name+" format", "")
		return uuid.Nil, false
	}
	return id, true
}

// optionalQueryID parses an optional uuid query parameter.
func optionalQueryID(ctx *gin.Context, name string) (*uuid.UUID, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(ctx, "Invalid "+name+" format", "")
		return nil, false
	}
	return &id, true
}

// optionalID parses an optional uuid from a request body field.
func optionalID(ctx *gin.Context, raw *string, name string) (*uuid.UUID, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		badRequest(ctx, "Invalid "+name+" format", "")
		return nil, false
	}
	return &id, true
}

// parseDate parses a calendar date in loc.
func parseDate(ctx *gin.Context, raw string, loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(dto.DateLayout, raw, loc)
	if err != nil {
		badRequest(ctx, "Invalid date format, expected YYYY-MM-DD", "")
		return time.Time{}, false
	}
	return d, true
}
