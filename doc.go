// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envguard validates and coerces environment variables against a
// declarative schema.
//
// A schema declares, per variable, its target type, whether it is required,
// an optional default, an optional set of allowed choices and an optional
// custom check:
//
//	schema := models.NewSchema().
//		Set("PORT", models.Definition{Type: models.Number, Default: 3000.0}).
//		Set("NODE_ENV", models.Definition{Choices: []any{"development", "production"}})
//
//	result, err := envguard.ValidateEnv(schema)
//
// Every variable is checked independently and all violations are collected.
// When at least one variable fails, no result is produced and the returned
// error is a *ValidationError listing every failure in declaration order.
//
// The source of raw values is injected with [WithSource]; by default the
// live process environment is read. Variables not declared in the schema are
// ignored.
package envguard
