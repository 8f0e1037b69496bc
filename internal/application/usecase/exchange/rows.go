// Package exchange converts ledger data to and from tab-separated rows.
package exchange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DateLayout is the date layout of exported rows.
const DateLayout = "2006-01-02"

// TransactionHeader is the header row of a transaction export.
var TransactionHeader = []string{
	"Account", "Date", "Payee", "Category", "Memo", "Amount", "Currency",
	"Income", "Transfer", "ToAccount", "Expense", "Debtor", "Recurring", "Recurrence",
}

// FxRateHeader is the header row of an fx rate export.
var FxRateHeader = []string{"Year", "Month", "Currency1", "Currency2", "Rate"}

// dataRows drops the header row when present and checks every row's width.
func dataRows(rows [][]string, header []string) ([][]string, error) {
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), header[0]) {
		rows = rows[1:]
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, rowError(i, fmt.Sprintf("expected %d fields, got %d", len(header), len(row)))
		}
	}
	return rows, nil
}

func rowError(i int, msg string) error {
	return domainerror.NewValidationError(
		domainerror.ErrCodeInvalidTSV,
		fmt.Sprintf("row %d: %s", i+1, msg),
		domainerror.ErrInvalidTSV,
	)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

// formatMinor renders minor units with two decimals.
func formatMinor(v int64) string {
	return decimal.New(v, -2).StringFixed(2)
}

func parseMinor(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return d.Shift(2).Round(0).IntPart(), nil
}
