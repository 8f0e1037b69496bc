package error

import "errors"

// Ordering errors.
var (
	// ErrInvalidOrderIndex is returned when a move index is outside the collection.
	ErrInvalidOrderIndex = errors.New("order index out of range")

	// ErrUnknownOrderedEntity is returned when the reorder target type is unknown.
	ErrUnknownOrderedEntity = errors.New("unknown ordered entity type")
)

const (
	ErrCodeInvalidOrderIndex    ErrorCode = "ORD-010001"
	ErrCodeUnknownOrderedEntity ErrorCode = "ORD-010002"
)
