// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envguard

import (
	"errors"
	"strings"
)

// Failure kinds. Every VariableError unwraps to exactly one of them.
var (
	// ErrMissingRequired indicates a required variable that is absent or
	// blank and has no default.
	ErrMissingRequired = errors.New("missing required variable")
	// ErrTypeCoercion indicates a value that cannot be parsed as its
	// declared type.
	ErrTypeCoercion = errors.New("type coercion failed")
	// ErrInvalidFormat indicates an email or url value that failed the
	// opt-in format check.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrChoiceViolation indicates a coerced value outside the declared
	// choices.
	ErrChoiceViolation = errors.New("value not in allowed choices")
	// ErrCustomValidation indicates a failed custom check.
	ErrCustomValidation = errors.New("custom validation failed")
)

const validationHeader = "Environment validation failed:"

// VariableError describes the failure of a single variable.
type VariableError struct {
	// Key is the variable name.
	Key string
	// Kind is one of the package's failure sentinels.
	Kind error
	// Message is the human-readable failure text.
	Message string
}

func (e *VariableError) Error() string {
	return e.Message
}

func (e *VariableError) Unwrap() error {
	return e.Kind
}

// ValidationError aggregates every variable failure from one validation pass.
// It is only returned when at least one variable failed.
type ValidationError struct {
	// Errors holds one message per failed variable in schema order.
	Errors []string
	// Issues holds the structured form of Errors, index for index.
	Issues []*VariableError
}

func newValidationError(issues []*VariableError) *ValidationError {
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}

	return &ValidationError{
		Errors: messages,
		Issues: issues,
	}
}

// Error joins all messages under a fixed header, one " - " bullet per line.
func (e *ValidationError) Error() string {
	return validationHeader + "\n - " + strings.Join(e.Errors, "\n - ")
}

// Unwrap exposes the individual VariableErrors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Issues))
	for _, issue := range e.Issues {
		errs = append(errs, issue)
	}
	return errs
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
