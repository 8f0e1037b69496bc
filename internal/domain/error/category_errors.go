package error

import "errors"

// Category and category group domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name required")

	// ErrCategoryTypeLocked is returned when changing the type of a category with transactions.
	ErrCategoryTypeLocked = errors.New("category type cannot change once transactions exist")

	// ErrCategoryHasTransactions is returned when deleting a category referenced by transactions.
	ErrCategoryHasTransactions = errors.New("category still referenced by transactions")

	// ErrCategoryGroupNotFound is returned when a category group is not found.
	ErrCategoryGroupNotFound = errors.New("category group not found")
)

const (
	ErrCodeInvalidCategoryType   ErrorCode = "CAT-010001"
	ErrCodeCategoryNameRequired  ErrorCode = "CAT-010002"
	ErrCodeCategoryTypeLocked    ErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound      ErrorCode = "CAT-020001"
	ErrCodeCategoryGroupNotFound ErrorCode = "CAT-020002"
	ErrCodeCategoryInUse         ErrorCode = "CAT-030001"
)
