package envguard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-env-guard/models"
)

var errNotANumber = errors.New("not a number")

// coerce converts a non-blank raw value into the target type of t.
func coerce(raw string, t models.VarType) (any, error) {
	switch t {
	case models.Number:
		return parseNumber(raw)
	case models.Boolean:
		return strings.ToLower(raw) == "true" || raw == "1", nil
	default:
		return raw, nil
	}
}

// parseNumber accepts decimal and exponent notation, the literals
// "Infinity"/"-Infinity" and unsigned 0x, 0o and 0b integer literals.
// Surrounding whitespace is ignored.
func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "_") || strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, errNotANumber
	}

	if len(lower) > 2 && lower[0] == '0' {
		base := 0
		switch lower[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(lower[2:], base, 64)
			if err != nil {
				return 0, errNotANumber
			}
			return float64(n), nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errNotANumber
	}
	return f, nil
}

// sameValue compares a coerced value with a declared choice. Numbers are
// compared by value regardless of their Go numeric type.
func sameValue(value, choice any) bool {
	if vf, ok := models.ToFloat(value); ok {
		cf, ok := models.ToFloat(choice)
		return ok && vf == cf
	}
	return value == choice
}

// formatValue renders a value the way it appears in failure messages.
func formatValue(v any) string {
	f, ok := models.ToFloat(v)
	if !ok {
		return fmt.Sprint(v)
	}

	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21 || (f != 0 && math.Abs(f) < 1e-6):
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

func formatChoices(choices []any) string {
	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		parts = append(parts, formatValue(c))
	}
	return strings.Join(parts, ", ")
}
