package vsop87

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoDataset is returned when a request does not name a dataset.
var ErrNoDataset = errors.New("no dataset provided")

// IOError reports a dataset which could not be opened or read.
type IOError struct {
	Name string // dataset identifier or path
	Op   string // "open" or "read"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a data line whose fields could not be converted.
type ParseError struct {
	Name  string // dataset name
	Line  int    // 1-based line number
	Field string // schema field name, empty when the line is too short
	Text  string // offending text
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: field %s %q: %s", e.Name, e.Line, e.Field, e.Text, e.Err)
}

// Unwrap returns the conversion error.
func (e *ParseError) Unwrap() error { return e.Err }

// TimeArgumentError reports a Julian Day which is unparseable or not finite.
type TimeArgumentError struct {
	Value string
	Err   error
}

func (e *TimeArgumentError) Error() string {
	return fmt.Sprintf("invalid julian day %q: %s", e.Value, e.Err)
}

// Unwrap returns the conversion error, if any.
func (e *TimeArgumentError) Unwrap() error { return e.Err }
