// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"alnheaders/internal/cli"
	"alnheaders/internal/cmdutil"
	"alnheaders/internal/fasta"
	"alnheaders/internal/transplant"
	"alnheaders/internal/writers"
)

// Name is the command name used in usage text and log prefixes.
const Name = "aln-replace-headers"

const orderWarning = "This tool assumes the records of the two input alignments are in IDENTICAL order. " +
	"If this is NOT true, the output will be incorrect."

// RunContext runs the tool and returns its exit code: 0 success, 1 record
// count mismatch, 2 usage, 3 read/write failure, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var (
		res transplant.Result
		ran bool
	)
	cmd := cli.NewCommand(Name, func(ctx context.Context, opts cli.Options) error {
		ran = true
		res = run(ctx, opts, stdout, stderr)
		return nil
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(argv)

	if len(argv) == 0 {
		_, _ = fmt.Fprintln(stderr, "error: --headers and --seqs are required")
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return 2
	}

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return 2
	}
	if !ran {
		// --help or --version
		return 0
	}
	return res.ExitCode()
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, opts cli.Options, stdout, stderr io.Writer) transplant.Result {
	logger := cmdutil.NewLogger(stderr, Name, opts.Quiet, opts.Verbose)
	cmdutil.Warnf(logger, opts.Quiet, orderWarning)
	logger.Debug("inputs", "headers", opts.HeadersPath, "seqs", opts.SeqsPath, "output", opts.Output)

	res := transplant.Run(ctx, opts.Request(), fasta.Reader{}, func() (io.WriteCloser, error) {
		return writers.OpenSink(opts.Output, stdout)
	})

	switch res.Kind {
	case transplant.KindSuccess:
		logger.Info("wrote alignment", "output", opts.Output, "records", res.Records)
	case transplant.KindIO:
		if opts.Output == writers.StdoutPath && writers.IsBrokenPipe(res.Err) {
			return transplant.Result{Kind: transplant.KindSuccess, Records: res.Records}
		}
		var oe *transplant.OutputError
		if errors.As(res.Err, &oe) && oe.Op == "open" {
			logger.Error("could not open output; nothing written", "output", opts.Output, "err", res.Err)
		} else {
			logger.Error("write failed; output may be incomplete", "output", opts.Output, "err", res.Err)
		}
	case transplant.KindMismatch:
		logger.Error("no output written", "headers", opts.HeadersPath, "seqs", opts.SeqsPath, "err", res.Err)
	case transplant.KindCanceled:
		logger.Warn("canceled")
	default:
		logger.Error("no output written", "kind", res.Kind, "err", res.Err)
	}
	return res
}
