package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	fs := parsedFlagSet(t,
		"-s", "schema.yaml",
		"--format-checks",
		"-o", "json",
		"--show-values",
		"--no-color",
		"--log-level", "debug",
		"-c", "cfg.json",
	)

	cfg, err := parseFlags(fs)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{
		Schema:       Schema{Path: "schema.yaml", FormatChecks: true},
		Output:       Output{Format: OutputJSON, ShowValues: true, NoColor: true},
		Log:          Log{Level: "debug"},
		JSONFilePath: "cfg.json",
	}, cfg)
}

// TestParseFlags_UnsetFlagsStayZero verifies that only changed flags are read.
func TestParseFlags_UnsetFlagsStayZero(t *testing.T) {
	cfg, err := parseFlags(parsedFlagSet(t))

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_MissingRegistration verifies that a flag set without the
// config flags is reported instead of panicking.
func TestParseFlags_MissingRegistration(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	fs.Bool(FlagSchema, false, "wrong type")
	require.NoError(t, fs.Parse([]string{"--schema"}))

	_, err := parseFlags(fs)
	assert.Error(t, err)
}
