// internal/cli/options_test.go
package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alnheaders/internal/transplant"
)

func parse(t *testing.T, args ...string) (Options, bool, error) {
	t.Helper()
	var got Options
	ran := false
	cmd := NewCommand("aln-replace-headers", func(_ context.Context, o Options) error {
		got, ran = o, true
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return got, ran, err
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, ran, err := parse(t, args...)
	require.NoError(t, err)
	require.True(t, ran, "run was not invoked")
	return o
}

func TestLongFlags(t *testing.T) {
	o := mustParse(t, "--headers", "h.fa", "--seqs", "s.fa", "--output", "o.fa")
	assert.Equal(t, Options{HeadersPath: "h.fa", SeqsPath: "s.fa", Output: "o.fa"}, o)
}

func TestShortFlagsAndDefaultOutput(t *testing.T) {
	o := mustParse(t, "-r", "h.fa", "-s", "s.fa", "-q")
	assert.Equal(t, "h.fa", o.HeadersPath)
	assert.Equal(t, "s.fa", o.SeqsPath)
	assert.Equal(t, DefaultOutput, o.Output)
	assert.True(t, o.Quiet)
}

func TestSequencesSpelling(t *testing.T) {
	o := mustParse(t, "--headers", "h.fa", "--sequences", "s.fa")
	assert.Equal(t, "s.fa", o.SeqsPath)
}

func TestPositionals(t *testing.T) {
	o := mustParse(t, "h.fa", "s.fa")
	assert.Equal(t, "h.fa", o.HeadersPath)
	assert.Equal(t, "s.fa", o.SeqsPath)

	o = mustParse(t, "--headers", "h.fa", "s.fa")
	assert.Equal(t, "s.fa", o.SeqsPath)
}

func TestErrorMissingInputs(t *testing.T) {
	for _, args := range [][]string{
		{"--headers", "h.fa"},
		{"--seqs", "s.fa"},
		{"--output", "o.fa"},
	} {
		_, ran, err := parse(t, args...)
		assert.False(t, ran, "args %v", args)
		assert.True(t, IsUsage(err), "args %v: %v", args, err)
		var te *transplant.UsageError
		assert.True(t, errors.As(err, &te), "args %v", args)
	}
}

func TestErrorTooManyPositionals(t *testing.T) {
	_, ran, err := parse(t, "a.fa", "b.fa", "c.fa")
	assert.False(t, ran)
	assert.True(t, IsUsage(err))
}

func TestErrorUnknownFlag(t *testing.T) {
	_, ran, err := parse(t, "--nope")
	assert.False(t, ran)
	assert.True(t, IsUsage(err))
}

func TestStdinRules(t *testing.T) {
	orig := StdinIsTerminal
	defer func() { StdinIsTerminal = orig }()

	StdinIsTerminal = func() bool { return false }
	o := mustParse(t, "-r", "-", "-s", "s.fa")
	assert.Equal(t, "-", o.HeadersPath)

	_, _, err := parse(t, "-r", "-", "-s", "-")
	assert.True(t, IsUsage(err))

	StdinIsTerminal = func() bool { return true }
	_, _, err = parse(t, "-r", "h.fa", "-s", "-")
	assert.True(t, IsUsage(err))
}

func TestEnvSuppliesOutput(t *testing.T) {
	t.Setenv("ALN_REPLACE_HEADERS_OUTPUT", "env.fa")
	o := mustParse(t, "-r", "h.fa", "-s", "s.fa")
	assert.Equal(t, "env.fa", o.Output)
}

func TestHelpDoesNotRun(t *testing.T) {
	_, ran, err := parse(t, "--help")
	require.NoError(t, err)
	assert.False(t, ran)
}
