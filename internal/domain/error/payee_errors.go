package error

import "errors"

// Payee domain errors.
var (
	// ErrPayeeNotFound is returned when a payee is not found in the system.
	ErrPayeeNotFound = errors.New("payee not found")

	// ErrDebtorNotFound is returned when the debtor payee of a transaction is not found.
	ErrDebtorNotFound = errors.New("debtor not found")

	// ErrPayeeNameRequired is returned when the payee name is empty.
	ErrPayeeNameRequired = errors.New("payee name required")

	// ErrPayeeHasTransactions is returned when deleting a payee referenced by transactions.
	ErrPayeeHasTransactions = errors.New("payee still referenced by transactions")
)

const (
	ErrCodePayeeNameRequired ErrorCode = "PAY-010001"
	ErrCodePayeeNotFound     ErrorCode = "PAY-020001"
	ErrCodeDebtorNotFound    ErrorCode = "PAY-020002"
	ErrCodePayeeInUse        ErrorCode = "PAY-030001"
)
