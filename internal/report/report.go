// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders the outcome of an environment check for the
// envguard command, either as styled text or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	envguard "github.com/MKhiriev/go-env-guard"
	"github.com/MKhiriev/go-env-guard/models"
	"github.com/charmbracelet/lipgloss"
)

// Report is the rendered outcome of one validation run.
type Report struct {
	Schema    string         `json:"schema"`
	Variables int            `json:"variables"`
	Valid     bool           `json:"valid"`
	Errors    []string       `json:"errors"`
	Values    map[string]any `json:"values,omitempty"`

	keys []string
}

// New builds a Report from a validation outcome. err must be nil or the
// error returned by envguard's Validate. Values are only included when
// showValues is set and validation succeeded.
func New(schemaPath string, schema *models.Schema, result models.Result, err error, showValues bool) Report {
	r := Report{
		Schema:    schemaPath,
		Variables: schema.Len(),
		Valid:     err == nil,
		Errors:    []string{},
		keys:      schema.Keys(),
	}

	if vErr, ok := envguard.AsValidationError(err); ok {
		r.Errors = vErr.Errors
	} else if err != nil {
		r.Errors = []string{err.Error()}
	}

	if r.Valid && showValues {
		r.Values = make(map[string]any, len(result))
		for _, key := range r.keys {
			r.Values[key] = result[key]
		}
	}

	return r
}

// WriteJSON writes the report as a single indented JSON document.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return nil
}

// WriteText writes a human-readable report. styled enables lipgloss styling.
func (r Report) WriteText(w io.Writer, styled bool) error {
	render := func(s lipgloss.Style, text string) string {
		if styled {
			return s.Render(text)
		}
		return text
	}

	var b strings.Builder
	if r.Valid {
		b.WriteString(render(okStyle, "✔ "+r.Schema))
		fmt.Fprintf(&b, ": %d variables valid\n", r.Variables)
	} else {
		b.WriteString(render(failStyle, "✘ "+r.Schema))
		fmt.Fprintf(&b, ": %d of %d variables invalid\n", len(r.Errors), r.Variables)
		for _, msg := range r.Errors {
			b.WriteString(render(bulletStyle, " - "))
			b.WriteString(msg)
			b.WriteString("\n")
		}
	}

	if len(r.Values) > 0 {
		var values strings.Builder
		for i, key := range r.keys {
			if i > 0 {
				values.WriteString("\n")
			}
			values.WriteString(render(keyStyle, key))
			values.WriteString(" = ")
			values.WriteString(render(valueStyle, formatValue(r.Values[key])))
		}
		if styled {
			b.WriteString(boxStyle.Render(values.String()))
		} else {
			b.WriteString(values.String())
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return "(unset)"
	}
	return fmt.Sprint(v)
}
