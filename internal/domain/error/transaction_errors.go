package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrCurrencyMismatch is returned when a transaction currency differs from its account.
	ErrCurrencyMismatch = errors.New("transaction currency does not match account currency")

	// ErrInvalidTransfer is returned when a transfer is missing its destination or targets its source.
	ErrInvalidTransfer = errors.New("invalid transfer")

	// ErrTransferWithPayee is returned when a transfer carries a payee.
	ErrTransferWithPayee = errors.New("transfers cannot have a payee")

	// ErrTransferAmountToRequired is returned when a cross-currency transfer has no received amount.
	ErrTransferAmountToRequired = errors.New("received amount required for cross-currency transfer")

	// ErrCategoryRequired is returned when a budget-relevant transaction has no category.
	ErrCategoryRequired = errors.New("category required for budget-relevant transaction")

	// ErrDebtorWithoutExpense is returned when a debtor is set on a non-expense transaction.
	ErrDebtorWithoutExpense = errors.New("debtor requires an expense transaction")

	// ErrInvalidRecurrence is returned when a recurring transaction has no supported unit.
	ErrInvalidRecurrence = errors.New("invalid recurrence unit")

	// ErrMemoTooLong is returned when the memo exceeds the maximum length.
	ErrMemoTooLong = errors.New("memo too long")

	// ErrMissingTransactionFields is returned when a required field such as the date is empty.
	ErrMissingTransactionFields = errors.New("missing transaction fields")
)

const (
	ErrCodeInvalidTransactionAmount ErrorCode = "TXN-010001"
	ErrCodeCurrencyMismatch         ErrorCode = "TXN-010002"
	ErrCodeInvalidTransfer          ErrorCode = "TXN-010003"
	ErrCodeTransferWithPayee        ErrorCode = "TXN-010004"
	ErrCodeTransferAmountTo         ErrorCode = "TXN-010005"
	ErrCodeCategoryRequired         ErrorCode = "TXN-010006"
	ErrCodeDebtorWithoutExpense     ErrorCode = "TXN-010007"
	ErrCodeInvalidRecurrence        ErrorCode = "TXN-010008"
	ErrCodeMemoTooLong              ErrorCode = "TXN-010009"
	ErrCodeMissingTransactionFields ErrorCode = "TXN-010010"
	ErrCodeTransactionNotFound      ErrorCode = "TXN-020001"
)
