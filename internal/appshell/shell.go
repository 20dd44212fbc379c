// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs a RunContext-style entry point with SIGINT/SIGTERM wired to
// context cancellation, then exits with its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(Exec(context.Background(), run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec is Main without the process exit, rooted at parent.
func Exec(parent context.Context, run func(context.Context, []string, io.Writer, io.Writer) int, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
