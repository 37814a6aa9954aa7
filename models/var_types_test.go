package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVarType(t *testing.T) {
	tests := []struct {
		in   string
		want VarType
	}{
		{"", String},
		{"string", String},
		{"number", Number},
		{"Boolean", Boolean},
		{" email ", Email},
		{"url", URL},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVarType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVarType_Unknown(t *testing.T) {
	_, err := ParseVarType("duration")
	assert.ErrorIs(t, err, ErrUnknownVarType)
}

func TestVarType_String(t *testing.T) {
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "url", URL.String())
	assert.Equal(t, "VarType(42)", VarType(42).String())
}

func TestVarType_IsStringLike(t *testing.T) {
	assert.True(t, String.IsStringLike())
	assert.True(t, Email.IsStringLike())
	assert.True(t, URL.IsStringLike())
	assert.False(t, Number.IsStringLike())
	assert.False(t, Boolean.IsStringLike())
}
