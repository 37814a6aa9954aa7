package envguard

import (
	"os"

	"github.com/caarlos0/env/v11"
)

//go:generate mockgen -source=source.go -destination=internal/mock/source_mock.go -package=mock

// Source supplies raw variable values. Lookup reports false when the
// variable is not set. Implementations must not be mutated while a
// validation that reads them is in progress.
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource is a Source backed by a plain map.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// SourceFunc adapts a lookup function into a Source.
type SourceFunc func(key string) (string, bool)

// Lookup implements Source.
func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// OSEnv returns a Source reading the live process environment.
func OSEnv() Source {
	return SourceFunc(os.LookupEnv)
}

// Snapshot copies the current process environment into a MapSource so that
// later changes to the environment do not affect validation.
func Snapshot() MapSource {
	return EnvironSource(os.Environ())
}

// EnvironSource builds a MapSource from KEY=VALUE pairs as returned by
// os.Environ or exec.Cmd.Env.
func EnvironSource(environ []string) MapSource {
	return MapSource(env.ToMap(environ))
}
