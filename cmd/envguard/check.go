package main

import (
	"context"
	"fmt"

	envguard "github.com/MKhiriev/go-env-guard"
	"github.com/MKhiriev/go-env-guard/internal/config"
	"github.com/MKhiriev/go-env-guard/internal/logger"
	"github.com/MKhiriev/go-env-guard/internal/report"
	"github.com/MKhiriev/go-env-guard/internal/schemafile"
	"github.com/spf13/cobra"
)

func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the environment against a schema file",
		Long: `Loads the schema document and validates the current environment against it.
Every violation is reported. Exits with 1 when the environment is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.environ, cmd.Flags())
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			log := logger.NewLogger(a.stderr, "envguard", cfg.Log.Level).WithTraceID()
			log.Debug().Any("config", cfg).Msg("received configs")

			return a.runCheck(log.WithContext(cmd.Context()), cmd, cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func (a *app) runCheck(ctx context.Context, cmd *cobra.Command, cfg *config.StructuredConfig) error {
	log := logger.FromContext(ctx)

	schema, err := schemafile.Load(cfg.Schema.Path)
	if err != nil {
		return err
	}
	log.Debug().Str("schema", cfg.Schema.Path).Int("variables", schema.Len()).Msg("schema loaded")

	source := a.source
	if source == nil {
		source = envguard.Snapshot()
	}

	opts := []envguard.Option{
		envguard.WithSource(source),
		envguard.WithLogger(log.GetChildLogger().Logger),
	}
	if cfg.Schema.FormatChecks {
		opts = append(opts, envguard.WithFormatChecks())
	}

	result, validationErr := envguard.New(opts...).Validate(schema)

	rep := report.New(cfg.Schema.Path, schema, result, validationErr, cfg.Output.ShowValues)
	if cfg.Output.Format == config.OutputJSON {
		err = rep.WriteJSON(cmd.OutOrStdout())
	} else {
		err = rep.WriteText(cmd.OutOrStdout(), !cfg.Output.NoColor)
	}
	if err != nil {
		return err
	}

	if validationErr != nil {
		log.Info().Int("errors", len(rep.Errors)).Msg("environment is invalid")
		return errValidationFailed
	}

	log.Info().Int("variables", schema.Len()).Msg("environment is valid")
	return nil
}
