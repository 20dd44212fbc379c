// internal/fasta/errors.go
package fasta

import (
	"errors"
	"fmt"
)

// ErrNoHeader reports sequence text found before any '>' header line.
var ErrNoHeader = errors.New("sequence data before first '>' header")

// ParseError reports an alignment that could not be opened or parsed.
// Line is 0 when the failure is not tied to a line (e.g. open errors).
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "fasta"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", where, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func withPath(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = path
	}
	return err
}
