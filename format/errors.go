package format

import (
	"errors"
	"fmt"
)

// Sentinel errors for the text formats.
var (
	// ErrHeader is returned when a header line is missing or malformed.
	ErrHeader = errors.New("format: bad header")

	// ErrTruncated is returned when a decomposition lists fewer records
	// than its header announces.
	ErrTruncated = errors.New("format: truncated decomposition")
)

// SyntaxError reports a line whose tokens cannot be read.
// Line is 1-based and counts every physical line of the input.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("format: line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
