// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// VarType defines the target type an environment variable is coerced into.
// The zero value is String, so a Definition without an explicit type keeps
// the raw string.
type VarType int

const (
	// String keeps the raw value unchanged.
	String VarType = iota

	// Number parses the raw value as a float64.
	Number

	// Boolean maps "true" (any case) and "1" to true, everything else to false.
	Boolean

	// Email is a string tag. No format check is applied unless the validator
	// is built with format checks enabled.
	Email

	// URL is a string tag with the same semantics as Email.
	URL
)

var varTypeNames = map[VarType]string{
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
	Email:   "email",
	URL:     "url",
}

// String returns the schema-file name of the type.
func (t VarType) String() string {
	if name, ok := varTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("VarType(%d)", int(t))
}

// IsStringLike reports whether values of this type are carried as string.
func (t VarType) IsStringLike() bool {
	return t == String || t == Email || t == URL
}

// ParseVarType converts a schema-file type name into a VarType.
// An empty name resolves to String.
func ParseVarType(name string) (VarType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return String, nil
	}
	for t, n := range varTypeNames {
		if n == name {
			return t, nil
		}
	}
	return String, fmt.Errorf("%w: %q", ErrUnknownVarType, name)
}
