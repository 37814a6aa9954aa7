package models

import "errors"

var (
	// ErrUnknownVarType is returned by ParseVarType for unsupported type names.
	ErrUnknownVarType = errors.New("unknown variable type")

	// ErrDecodeTarget is returned by Result.Decode when target is not a
	// non-nil pointer to a struct.
	ErrDecodeTarget = errors.New("decode target must be a non-nil pointer to a struct")
)
