// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Definition describes the constraints of a single environment variable.
type Definition struct {
	// Type is the target type of the coerced value. Defaults to String.
	Type VarType

	// Optional marks the variable as not required. Variables are required
	// unless Optional is set or a Default is present.
	Optional bool

	// Default is returned verbatim when the variable is absent or blank.
	// A nil Default means "no default". No coercion, choices or custom check
	// is applied to it.
	Default any

	// Choices is the set of allowed coerced values. Empty means unrestricted.
	Choices []any

	// Validate is an optional custom check run on the coerced value.
	Validate Check
}

// HasDefault reports whether a default value is declared.
func (d Definition) HasDefault() bool {
	return d.Default != nil
}

// IsRequired reports whether a missing value must be reported as an error.
func (d Definition) IsRequired() bool {
	return !d.Optional && !d.HasDefault()
}

// Check is a custom validation hook. It receives the coerced value
// (string, float64 or bool depending on the Definition's Type).
type Check func(value any) Verdict

// Verdict is the outcome of a Check.
//
// A Verdict is either valid, invalid without a message (reported with a
// generic "failed custom validation" text) or invalid with a message that is
// reported verbatim.
type Verdict struct {
	invalid bool
	message string
}

// Valid returns a passing Verdict.
func Valid() Verdict {
	return Verdict{}
}

// Invalid returns a failing Verdict without a custom message.
func Invalid() Verdict {
	return Verdict{invalid: true}
}

// Invalidf returns a failing Verdict carrying a formatted message.
func Invalidf(format string, args ...any) Verdict {
	return Verdict{invalid: true, message: fmt.Sprintf(format, args...)}
}

// OK reports whether the Verdict passed.
func (v Verdict) OK() bool {
	return !v.invalid
}

// Message returns the custom failure message and whether one was set.
func (v Verdict) Message() (string, bool) {
	return v.message, v.invalid && v.message != ""
}

// Predicate adapts a boolean function into a Check: false becomes Invalid().
func Predicate(fn func(value any) bool) Check {
	return func(value any) Verdict {
		if fn(value) {
			return Valid()
		}
		return Invalid()
	}
}
