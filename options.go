package envguard

import (
	"github.com/MKhiriev/go-env-guard/internal/validators"
	"github.com/rs/zerolog"
)

// Option configures a Validator.
type Option func(*Validator)

// WithSource sets the Source raw values are read from.
// The default is the live process environment.
func WithSource(source Source) Option {
	return func(v *Validator) {
		if source != nil {
			v.source = source
		}
	}
}

// WithLogger sets the logger used for debug output. Only variable names and
// failure kinds are logged, never values.
func WithLogger(logger zerolog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithFormatChecks enables intrinsic format checks for email and url
// variables. Without it both types accept any non-blank string.
func WithFormatChecks() Option {
	return func(v *Validator) {
		v.formats = validators.NewFormatValidator()
	}
}
