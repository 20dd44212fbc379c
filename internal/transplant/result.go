// internal/transplant/result.go
package transplant

import (
	"fmt"
	"strings"
)

// Kind tags the outcome of Run.
type Kind int

const (
	KindSuccess Kind = iota
	KindUsage
	KindMismatch
	KindParse
	KindIO
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindUsage:
		return "usage"
	case KindMismatch:
		return "mismatch"
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	case KindCanceled:
		return "canceled"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Result is the tagged outcome of a transplant run.
type Result struct {
	Kind    Kind
	Err     error
	Records int
}

// OK reports whether the run wrote its output.
func (r Result) OK() bool { return r.Kind == KindSuccess }

// ExitCode maps the result to a process exit status.
func (r Result) ExitCode() int {
	switch r.Kind {
	case KindSuccess:
		return 0
	case KindMismatch:
		return 1
	case KindUsage:
		return 2
	case KindCanceled:
		return 130
	default:
		return 3
	}
}

// UsageError reports required inputs that were not supplied.
type UsageError struct {
	Missing []string
}

func (e *UsageError) Error() string {
	flags := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		flags[i] = "--" + m
	}
	return fmt.Sprintf("missing required input: %s", strings.Join(flags, ", "))
}

// MismatchError reports alignments whose record counts differ.
type MismatchError struct {
	Headers   int
	Sequences int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("the lengths of the two alignments do not match: %d headers vs %d sequences", e.Headers, e.Sequences)
}

// OutputError reports a failure on the output destination. Op is "open",
// "write" or "close"; nothing has been written when Op is "open".
type OutputError struct {
	Op  string
	Err error
}

func (e *OutputError) Error() string { return e.Op + " output: " + e.Err.Error() }
func (e *OutputError) Unwrap() error { return e.Err }
