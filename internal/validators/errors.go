package validators

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidURL   = errors.New("invalid url")
)
