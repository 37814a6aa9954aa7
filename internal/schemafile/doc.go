// Package schemafile loads envguard schemas from YAML or JSON documents.
//
// A schema document is a mapping from variable name to its definition:
//
//	PORT:
//	  type: number
//	  default: 3000
//	NODE_ENV:
//	  choices: [development, production]
//	API_KEY:
//	  pattern: "^sk-"
//	  message: must start with sk-
//	SENTRY_DSN:
//	  type: url
//	  required: false
//
// Declaration order in the document is preserved. Defaults and choices are
// converted to the variable's target type: float64 for number, bool for
// boolean and string otherwise. A pattern becomes a custom check matched
// against the coerced value's string form.
package schemafile
