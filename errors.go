package inspector

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds the engine can report. Sub-parsers
// wrap these with detail text; the dispatcher re-wraps everything in a
// *ParseError, so errors.Is still reaches the sentinel.
var (
	// ErrUnsupportedFormat is returned when an unknown format tag is
	// passed to the dispatcher.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrSizeLimit is returned when a JSON or XML input exceeds the
	// configured byte ceiling.
	ErrSizeLimit = errors.New("message too large")

	// ErrMalformedInput is returned when JSON or XML input fails to parse.
	ErrMalformedInput = errors.New("malformed input")
)

// ParseError is the uniform error shape returned by the dispatcher. Every
// sub-parser failure is wrapped exactly once, so callers never need to
// branch on which parser failed; they have a format tag and a
// human-readable detail string.
type ParseError struct {
	// Format is the format tag the parse was attempted as.
	Format Format

	// Detail is the inner failure message.
	Detail string

	err error
}

// NewParseError wraps err as the uniform dispatcher error for format.
func NewParseError(format Format, err error) *ParseError {
	return &ParseError{Format: format, Detail: err.Error(), err: err}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse %s message: %s", e.Format, e.Detail)
}

// Unwrap returns the inner error so errors.Is can match the sentinels.
func (e *ParseError) Unwrap() error {
	return e.err
}
