package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("headers", "", "")
	fs.String("seqs", "", "")
	fs.String("output", "FixedHeaders.fa", "")
	fs.String(ConfigFlag, "", "")
	fs.Bool("quiet", false, "")
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeYAML(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "aln.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newFlags(t, "--headers", "h.fa", "--seqs", "s.fa"))
	require.NoError(t, err)
	assert.Equal(t, Settings{Headers: "h.fa", Seqs: "s.fa", Output: "FixedHeaders.fa"}, s)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("ALN_REPLACE_HEADERS_OUTPUT", "from-env.fa")
	t.Setenv("ALN_REPLACE_HEADERS_QUIET", "true")

	s, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "from-env.fa", s.Output)
	assert.True(t, s.Quiet)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("ALN_REPLACE_HEADERS_OUTPUT", "from-env.fa")

	s, err := Load(newFlags(t, "--output", "from-flag.fa"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag.fa", s.Output)
}

func TestLoad_ConfigFile(t *testing.T) {
	cfg := writeYAML(t, "headers: up.fa\nseqs: promals.fa\noutput: fixed.fa\nverbose: true\n")

	s, err := Load(newFlags(t, "--config", cfg, "--seqs", "override.fa"))
	require.NoError(t, err)
	assert.Equal(t, "up.fa", s.Headers)
	assert.Equal(t, "override.fa", s.Seqs)
	assert.Equal(t, "fixed.fa", s.Output)
	assert.True(t, s.Verbose)
}

func TestLoad_BadConfigFile(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)

	_, err = Load(newFlags(t, "--config", writeYAML(t, "headers: [unterminated\n")))
	assert.Error(t, err)
}
