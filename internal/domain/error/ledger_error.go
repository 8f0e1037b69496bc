// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// ErrorKind classifies ledger errors for propagation and transport mapping.
type ErrorKind string

const (
	// KindNotFound means a referenced entity or period does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindValidation means the request was rejected before any mutation was applied.
	KindValidation ErrorKind = "validation"

	// KindIntegrityViolation means the operation would orphan dependent records.
	KindIntegrityViolation ErrorKind = "integrity_violation"

	// KindConversionUnavailable means no fx rate exists for a required conversion.
	// It is never fatal inside aggregations.
	KindConversionUnavailable ErrorKind = "conversion_unavailable"
)

// ErrorCode identifies a specific ledger error.
// Format: AREA-XXYYYY where XX is the kind (01 validation, 02 not found,
// 03 integrity, 04 conversion) and YYYY is the specific error.
type ErrorCode string

// LedgerError represents a ledger error with kind, code and message.
type LedgerError struct {
	Kind    ErrorKind
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError.
func NewLedgerError(kind ErrorKind, code ErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a not-found LedgerError.
func NewNotFoundError(code ErrorCode, message string, err error) *LedgerError {
	return NewLedgerError(KindNotFound, code, message, err)
}

// NewValidationError creates a validation LedgerError.
func NewValidationError(code ErrorCode, message string, err error) *LedgerError {
	return NewLedgerError(KindValidation, code, message, err)
}

// NewIntegrityError creates an integrity-violation LedgerError.
func NewIntegrityError(code ErrorCode, message string, err error) *LedgerError {
	return NewLedgerError(KindIntegrityViolation, code, message, err)
}

// KindOf returns the kind of a ledger error, or "" when err is not one.
func KindOf(err error) ErrorKind {
	var ledgerErr *LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Kind
	}
	return ""
}

// IsKind reports whether err is a ledger error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
