// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// EnvPrefix is prepended to every environment variable read by [Load].
const EnvPrefix = "ENVGUARD_"

// Supported report formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// StructuredConfig is the top-level configuration of the envguard command.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
//   - json:      key in the optional JSON config file.
type StructuredConfig struct {
	// Schema locates the schema document and tunes validation.
	Schema Schema `envPrefix:"SCHEMA_" json:"schema"`

	// Output controls how the validation report is rendered.
	Output Output `envPrefix:"OUTPUT_" json:"output"`

	// Log controls diagnostic logging on stderr.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: ENVGUARD_CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Schema holds settings for the schema being enforced.
type Schema struct {
	// Path is the YAML or JSON schema document.
	// Env: ENVGUARD_SCHEMA_PATH
	Path string `env:"PATH" envDefault:"env.schema.yaml" json:"path"`

	// FormatChecks enables intrinsic email and url format checks.
	// Env: ENVGUARD_SCHEMA_FORMAT_CHECKS
	FormatChecks bool `env:"FORMAT_CHECKS" json:"format_checks"`
}

// Output holds report rendering settings.
type Output struct {
	// Format is either "text" or "json".
	// Env: ENVGUARD_OUTPUT_FORMAT
	Format string `env:"FORMAT" envDefault:"text" json:"format"`

	// ShowValues includes resolved values in the report. Off by default
	// because environments usually carry secrets.
	// Env: ENVGUARD_OUTPUT_SHOW_VALUES
	ShowValues bool `env:"SHOW_VALUES" json:"show_values"`

	// NoColor disables styling of the text report.
	// Env: ENVGUARD_OUTPUT_NO_COLOR
	NoColor bool `env:"NO_COLOR" json:"no_color"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: ENVGUARD_LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info" json:"level"`
}

// Load merges configuration from environ, the parsed flag set and the
// optional JSON file, then validates the result. A nil environ means the
// process environment. fs must have been set up with [RegisterFlags].
func Load(environ map[string]string, fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(environ).
		withFlags(fs).
		withJSON().
		build()
}
