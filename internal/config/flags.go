package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagSchema       = "schema"
	FlagFormatChecks = "format-checks"
	FlagOutput       = "output"
	FlagShowValues   = "show-values"
	FlagNoColor      = "no-color"
	FlagLogLevel     = "log-level"
	FlagConfig       = "config"
)

// RegisterFlags declares the configuration flags on fs.
//
// Flags:
//
//	-s/--schema        schema document path
//	--format-checks    enable email/url format checks
//	-o/--output        report format: text or json
//	--show-values      include resolved values in the report
//	--no-color         disable text report styling
//	--log-level        log level (debug, info, warn, error)
//	-c/--config        json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagSchema, "s", "", "Schema document path (YAML or JSON)")
	fs.Bool(FlagFormatChecks, false, "Check email and url variables for a valid format")
	fs.StringP(FlagOutput, "o", "", "Report format: text or json")
	fs.Bool(FlagShowValues, false, "Include resolved values in the report")
	fs.Bool(FlagNoColor, false, "Disable report styling")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

// parseFlags reads the values of already-parsed flags into a config.
// Unset flags leave their fields zero so they do not override other sources.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if fs == nil {
		return cfg, nil
	}

	var err error
	getString := func(name string, dst *string) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetString(name)
		}
	}
	getBool := func(name string, dst *bool) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetBool(name)
		}
	}

	getString(FlagSchema, &cfg.Schema.Path)
	getBool(FlagFormatChecks, &cfg.Schema.FormatChecks)
	getString(FlagOutput, &cfg.Output.Format)
	getBool(FlagShowValues, &cfg.Output.ShowValues)
	getBool(FlagNoColor, &cfg.Output.NoColor)
	getString(FlagLogLevel, &cfg.Log.Level)
	getString(FlagConfig, &cfg.JSONFilePath)

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}
