package error

import "errors"

// Period domain errors.
var (
	// ErrPeriodNotFound is returned when no pre-generated period matches a date or id.
	ErrPeriodNotFound = errors.New("period not found")

	// ErrInvalidPeriodRange is returned when a generation range is empty or inverted.
	ErrInvalidPeriodRange = errors.New("invalid period range")

	// ErrPeriodHasTransactions is returned when deleting a period that still owns transactions.
	ErrPeriodHasTransactions = errors.New("period still owns transactions")
)

const (
	ErrCodeInvalidPeriodRange   ErrorCode = "PER-010001"
	ErrCodePeriodNotFound       ErrorCode = "PER-020001"
	ErrCodePeriodForDateMissing ErrorCode = "PER-020002"
	ErrCodePeriodInUse          ErrorCode = "PER-030001"
)
