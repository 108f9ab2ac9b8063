package report

import "errors"

// Errors returned by the report stages. Callers match them with errors.Is;
// the returned values usually wrap them with the offending column or kind.
var (
	ErrInvalidFilter     = errors.New("invalid filter: at least one year is required")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidRank       = errors.New("invalid rank: n must be positive")
	ErrEmptyResult       = errors.New("empty result")
	ErrUnknownReportKind = errors.New("unknown report kind")
	ErrEmptyPartition    = errors.New("empty partition")
	ErrSchema            = errors.New("schema mismatch")
)
