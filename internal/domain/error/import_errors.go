package error

import "errors"

// Import domain errors.
var (
	// ErrInvalidImportRecord is returned when an external record cannot be mapped.
	ErrInvalidImportRecord = errors.New("invalid import record")

	// ErrInvalidTSV is returned when a tab-separated file is malformed.
	ErrInvalidTSV = errors.New("invalid tab-separated data")
)

const (
	ErrCodeInvalidImportRecord ErrorCode = "IMP-010001"
	ErrCodeInvalidTSV          ErrorCode = "IMP-010002"
)
