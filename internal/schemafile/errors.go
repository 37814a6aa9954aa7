package schemafile

import "errors"

var (
	// ErrNotMapping indicates a document whose root is not a mapping.
	ErrNotMapping = errors.New("schema document must be a mapping of variable names to definitions")
	// ErrInvalidDefinition indicates a definition that cannot be converted
	// into a models.Definition.
	ErrInvalidDefinition = errors.New("invalid variable definition")
)
