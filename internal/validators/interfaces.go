// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides intrinsic format checks for the string-like
// variable types.
//
// Core concepts:
//   - FormatValidator: checks a raw string against the format implied by a
//     models.VarType (email, url). Types without an intrinsic format pass.
//
// The checks are opt-in: the env validator consults a FormatValidator only
// when it is built with format checks enabled.
package validators

import "github.com/MKhiriev/go-env-guard/models"

// FormatValidator checks raw values against the format implied by their type.
type FormatValidator interface {

	// Validate returns nil when value is well-formed for t, or one of the
	// package's sentinel errors otherwise.
	Validate(t models.VarType, value string) error
}
