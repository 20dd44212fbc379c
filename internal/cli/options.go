// internal/cli/options.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"alnheaders/internal/config"
	"alnheaders/internal/fasta"
	"alnheaders/internal/transplant"
	"alnheaders/internal/version"
)

// DefaultOutput is the output path used when --output is not given.
const DefaultOutput = "FixedHeaders.fa"

// Options holds the resolved command-line inputs.
type Options struct {
	HeadersPath string
	SeqsPath    string
	Output      string
	Quiet       bool
	Verbose     bool
}

// Request returns the transplant inputs named by o.
func (o Options) Request() transplant.Request {
	return transplant.Request{HeadersPath: o.HeadersPath, SeqsPath: o.SeqsPath}
}

// UsageError marks errors caused by how the command was invoked.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// StdinIsTerminal reports whether stdin is an interactive terminal.
var StdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RunFunc receives validated options.
type RunFunc func(ctx context.Context, opts Options) error

// NewCommand builds the root command. run is only invoked once the options
// pass validation; any error returned before that is a *UsageError.
func NewCommand(name string, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [--headers] HEADERS.fa [--seqs] SEQS.fa",
		Short: "Replace the headers of one alignment with the headers of another",
		Long: name + ` – copy alignment headers by record position

Takes the headers from one FASTA alignment and the sequences from another
and writes them out paired by position. Both files must list their records
in IDENTICAL order; only the record counts are checked.`,
		Example: `  # Put the full headers back on a Promals3D alignment
  ` + name + ` -r upstream.fa -s promals.fa -o fixed.fa

  # Positional form, write to stdout
  ` + name + ` upstream.fa promals.fa -o -`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := Resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), opts)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	Register(cmd.Flags())
	return cmd
}

// Register wires the flags onto fs. --sequences is accepted as a spelling
// of --seqs.
func Register(fs *pflag.FlagSet) {
	fs.StringP("headers", "r", "", "alignment providing the headers [*]")
	fs.StringP("seqs", "s", "", "alignment providing the sequences [*]")
	fs.StringP("output", "o", DefaultOutput, "output file ('-' for stdout)")
	fs.String(config.ConfigFlag, "", "YAML config file (keys: headers, seqs, output, quiet, verbose)")
	fs.BoolP("quiet", "q", false, "suppress the record-order warning and info logs")
	fs.Bool("verbose", false, "debug logging")
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "sequences" {
			name = "seqs"
		}
		return pflag.NormalizedName(name)
	})
}

// Resolve merges flags, environment and config file, fills missing inputs
// from positionals, and validates the result.
func Resolve(fs *pflag.FlagSet, args []string) (Options, error) {
	s, err := config.Load(fs)
	if err != nil {
		return Options{}, &UsageError{Err: err}
	}
	opts := Options{
		HeadersPath: s.Headers,
		SeqsPath:    s.Seqs,
		Output:      s.Output,
		Quiet:       s.Quiet,
		Verbose:     s.Verbose,
	}
	for _, a := range args {
		switch {
		case opts.HeadersPath == "":
			opts.HeadersPath = a
		case opts.SeqsPath == "":
			opts.SeqsPath = a
		default:
			return opts, usageErrorf("unexpected argument %q", a)
		}
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	return opts, Validate(opts)
}

// Validate applies the CLI invariants.
func Validate(o Options) error {
	if err := o.Request().Validate(); err != nil {
		return &UsageError{Err: err}
	}
	stdinH := o.HeadersPath == fasta.StdinPath
	stdinS := o.SeqsPath == fasta.StdinPath
	if stdinH && stdinS {
		return usageErrorf("--headers and --seqs cannot both read from stdin")
	}
	if (stdinH || stdinS) && StdinIsTerminal() {
		return usageErrorf("refusing to read an alignment from an interactive terminal")
	}
	return nil
}

// IsUsage reports whether err is a usage error from this package or from
// the transplant request.
func IsUsage(err error) bool {
	var ue *UsageError
	var te *transplant.UsageError
	return errors.As(err, &ue) || errors.As(err, &te)
}
