package models

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Result maps each declared variable name to its resolved value.
//
// Values are string for String, Email and URL variables, float64 for Number
// and bool for Boolean, unless a Default of another type was used. An
// optional variable that was absent and had no default maps to nil.
type Result map[string]any

// Has reports whether key resolved to a non-nil value.
func (r Result) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the value of key if it is a string.
func (r Result) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Number returns the value of key if it is numeric.
func (r Result) Number(key string) (float64, bool) {
	return ToFloat(r[key])
}

// Int returns the value of key if it is a whole number that fits in an int.
func (r Result) Int(key string) (int, bool) {
	f, ok := ToFloat(r[key])
	if !ok || f != math.Trunc(f) || f > math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}

// Bool returns the value of key if it is a bool.
func (r Result) Bool(key string) (bool, bool) {
	b, ok := r[key].(bool)
	return b, ok
}

// Decode copies the result into the struct pointed to by target. Fields are
// matched by their `env:"NAME"` tag. Numeric values are converted to the
// field's numeric kind and nil values leave the field untouched.
func (r Result) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrDecodeTarget
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "env",
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("error creating result decoder: %w", err)
	}

	if err = decoder.Decode(map[string]any(r)); err != nil {
		return fmt.Errorf("error decoding result: %w", err)
	}

	return nil
}

// ToFloat reports v as a float64 when it holds any Go numeric type.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
