package models

// Schema is an ordered set of variable definitions keyed by variable name.
//
// Iteration order is declaration order. Validation reports failures in that
// order, so the order of Set calls is observable.
type Schema struct {
	keys []string
	defs map[string]Definition
}

// NewSchema constructs an empty Schema.
func NewSchema() *Schema {
	return &Schema{
		defs: make(map[string]Definition),
	}
}

// Set declares the variable name with def and returns the schema for chaining.
// Setting an existing name replaces its definition but keeps its position.
func (s *Schema) Set(name string, def Definition) *Schema {
	if s.defs == nil {
		s.defs = make(map[string]Definition)
	}
	if _, exists := s.defs[name]; !exists {
		s.keys = append(s.keys, name)
	}
	s.defs[name] = def
	return s
}

// Get returns the definition for name.
func (s *Schema) Get(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.defs[name]
	return def, ok
}

// Keys returns variable names in declaration order. The returned slice is a copy.
func (s *Schema) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of declared variables.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}
