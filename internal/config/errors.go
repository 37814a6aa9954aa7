package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidSchemaConfigs indicates a missing schema path.
	ErrInvalidSchemaConfigs = errors.New("invalid schema configuration")
	// ErrInvalidOutputConfigs indicates an unsupported report format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
