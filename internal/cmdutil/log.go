// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the stderr logger shared by the app. quiet keeps only
// errors; verbose enables debug output. quiet wins when both are set.
func NewLogger(dst io.Writer, name string, quiet, verbose bool) *log.Logger {
	l := log.NewWithOptions(dst, log.Options{
		Prefix:          name,
		ReportTimestamp: false,
	})
	switch {
	case quiet:
		l.SetLevel(log.ErrorLevel)
	case verbose:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return l
}

// Warnf logs a formatted warning unless quiet is set.
func Warnf(l *log.Logger, quiet bool, format string, a ...any) {
	if quiet || l == nil {
		return
	}
	l.Warnf(format, a...)
}
