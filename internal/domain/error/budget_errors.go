package error

import "errors"

// Budget and exchange rate domain errors.
var (
	// ErrBudgetNotFound is returned when a budget row is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrFxRateNotFound is returned when an fx rate row is not found.
	ErrFxRateNotFound = errors.New("fx rate not found")

	// ErrInvalidFxRate is returned when a rate is not positive.
	ErrInvalidFxRate = errors.New("invalid fx rate")

	// ErrSameCurrencyPair is returned when both currencies of a rate are equal.
	ErrSameCurrencyPair = errors.New("fx rate currencies must differ")

	// ErrConversionUnavailable is returned when no rate exists for a required conversion.
	ErrConversionUnavailable = errors.New("conversion unavailable")
)

const (
	ErrCodeInvalidFxRate         ErrorCode = "FX-010001"
	ErrCodeSameCurrencyPair      ErrorCode = "FX-010002"
	ErrCodeFxRateNotFound        ErrorCode = "FX-020001"
	ErrCodeConversionUnavailable ErrorCode = "FX-040001"
	ErrCodeBudgetNotFound        ErrorCode = "BDG-020001"
)
