// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envguard

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-env-guard/internal/validators"
	"github.com/MKhiriev/go-env-guard/models"
	"github.com/rs/zerolog"
)

// Validator resolves a schema against a Source. It holds no mutable state
// and may be shared between goroutines.
type Validator struct {
	source  Source
	logger  zerolog.Logger
	formats validators.FormatValidator
}

// New constructs a Validator reading the process environment unless
// WithSource is given.
func New(opts ...Option) *Validator {
	v := &Validator{
		source: OSEnv(),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// ValidateEnv validates schema against the live process environment.
func ValidateEnv(schema *models.Schema, opts ...Option) (models.Result, error) {
	return New(opts...).Validate(schema)
}

// Validate resolves every variable declared in schema.
//
// All variables are checked before returning. If any of them fails, the
// result is nil and the error is a *ValidationError holding one message per
// failed variable in declaration order. Otherwise the result holds exactly
// one entry per declared variable.
func (v *Validator) Validate(schema *models.Schema) (models.Result, error) {
	result := make(models.Result, schema.Len())
	var issues []*VariableError

	for _, key := range schema.Keys() {
		def, _ := schema.Get(key)

		value, issue := v.resolve(key, def)
		if issue != nil {
			v.logger.Debug().
				Str("key", key).
				Str("kind", issue.Kind.Error()).
				Msg("variable rejected")
			issues = append(issues, issue)
			continue
		}

		result[key] = value
	}

	if len(issues) > 0 {
		v.logger.Debug().
			Int("variables", schema.Len()).
			Int("errors", len(issues)).
			Msg("environment validation failed")
		return nil, newValidationError(issues)
	}

	v.logger.Debug().Int("variables", schema.Len()).Msg("environment validated")
	return result, nil
}

// resolve runs the per-variable pipeline: defaulting, coercion, format,
// choices and custom check. The first failing step ends the pipeline.
func (v *Validator) resolve(key string, def models.Definition) (any, *VariableError) {
	raw, ok := v.source.Lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		switch {
		case def.HasDefault():
			return def.Default, nil
		case !def.Optional:
			return nil, variableError(key, ErrMissingRequired, "Missing required variable: %s", key)
		default:
			return nil, nil
		}
	}

	value, err := coerce(raw, def.Type)
	if err != nil {
		return nil, variableError(key, ErrTypeCoercion, "Variable %s must be a number. Received: \"%s\"", key, raw)
	}

	if v.formats != nil && def.Type.IsStringLike() {
		if err = v.formats.Validate(def.Type, raw); err != nil {
			return nil, variableError(key, ErrInvalidFormat, "Variable %s must be a valid %s. Received: \"%s\"", key, def.Type, raw)
		}
	}

	if len(def.Choices) > 0 && !isChoice(value, def.Choices) {
		return nil, variableError(key, ErrChoiceViolation,
			"Variable %s must be one of [%s]. Received: \"%s\"", key, formatChoices(def.Choices), formatValue(value))
	}

	if def.Validate != nil {
		if issue := runCheck(key, def.Validate, value); issue != nil {
			return nil, issue
		}
	}

	return value, nil
}

// runCheck invokes a custom check and converts its verdict, or a panic
// raised by it, into a VariableError.
func runCheck(key string, check models.Check, value any) (issue *VariableError) {
	defer func() {
		if r := recover(); r != nil {
			issue = variableError(key, ErrCustomValidation, "Variable %s failed custom validation: panic: %v", key, r)
		}
	}()

	verdict := check(value)
	if verdict.OK() {
		return nil
	}

	if msg, ok := verdict.Message(); ok {
		return variableError(key, ErrCustomValidation, "Variable %s: %s", key, msg)
	}
	return variableError(key, ErrCustomValidation, "Variable %s failed custom validation", key)
}

func isChoice(value any, choices []any) bool {
	for _, c := range choices {
		if sameValue(value, c) {
			return true
		}
	}
	return false
}

func variableError(key string, kind error, format string, args ...any) *VariableError {
	return &VariableError{
		Key:     key,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
