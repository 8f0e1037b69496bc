package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCurrency is returned when a currency code is not a known ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrAccountNameRequired is returned when the account name is empty.
	ErrAccountNameRequired = errors.New("account name required")

	// ErrAccountTypeLocked is returned when changing the type of an account with transactions.
	ErrAccountTypeLocked = errors.New("account type cannot change once transactions exist")

	// ErrAccountHasTransactions is returned when deleting an account referenced by transactions.
	ErrAccountHasTransactions = errors.New("account still referenced by transactions")
)

const (
	ErrCodeInvalidCurrency     ErrorCode = "ACC-010001"
	ErrCodeInvalidAccountType  ErrorCode = "ACC-010002"
	ErrCodeAccountNameRequired ErrorCode = "ACC-010003"
	ErrCodeAccountTypeLocked   ErrorCode = "ACC-010004"
	ErrCodeAccountNotFound     ErrorCode = "ACC-020001"
	ErrCodeAccountInUse        ErrorCode = "ACC-030001"
)
