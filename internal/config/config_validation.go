// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] is usable. All
// problems are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Schema.Path == "" {
		errs = append(errs, ErrInvalidSchemaConfigs)
	}

	if cfg.Output.Format != OutputText && cfg.Output.Format != OutputJSON {
		errs = append(errs, ErrInvalidOutputConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, ErrInvalidLogConfigs)
	}

	return errors.Join(errs...)
}
