package validators

import (
	"github.com/MKhiriev/go-env-guard/models"
	"github.com/go-playground/validator/v10"
)

// formatTags maps each format-bearing type to its go-playground validator tag.
var formatTags = map[models.VarType]struct {
	tag string
	err error
}{
	models.Email: {tag: "email", err: ErrInvalidEmail},
	models.URL:   {tag: "url", err: ErrInvalidURL},
}

// PlaygroundFormatValidator implements FormatValidator on top of
// go-playground/validator's built-in "email" and "url" tags.
type PlaygroundFormatValidator struct {
	validate *validator.Validate
}

// NewFormatValidator constructs a new PlaygroundFormatValidator
// and returns it as the FormatValidator interface.
func NewFormatValidator() FormatValidator {
	return &PlaygroundFormatValidator{
		validate: validator.New(),
	}
}

// Validate checks value against the format tag registered for t.
// Types without a registered format always pass.
func (v *PlaygroundFormatValidator) Validate(t models.VarType, value string) error {
	format, ok := formatTags[t]
	if !ok {
		return nil
	}

	if err := v.validate.Var(value, format.tag); err != nil {
		return format.err
	}

	return nil
}
