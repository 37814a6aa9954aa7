package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	envguard "github.com/MKhiriev/go-env-guard"
	"github.com/MKhiriev/go-env-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *models.Schema {
	return models.NewSchema().
		Set("PORT", models.Definition{Type: models.Number}).
		Set("NAME", models.Definition{Optional: true})
}

func failedValidation(t *testing.T) error {
	t.Helper()
	_, err := envguard.New(envguard.WithSource(envguard.MapSource{"PORT": "x"})).Validate(testSchema())
	require.Error(t, err)
	return err
}

func TestNew_Success(t *testing.T) {
	r := New("env.schema.yaml", testSchema(), models.Result{"PORT": 8080.0, "NAME": nil}, nil, true)

	assert.True(t, r.Valid)
	assert.Equal(t, 2, r.Variables)
	assert.Empty(t, r.Errors)
	assert.Equal(t, map[string]any{"PORT": 8080.0, "NAME": nil}, r.Values)
}

// TestNew_HidesValuesByDefault verifies values are omitted unless requested.
func TestNew_HidesValuesByDefault(t *testing.T) {
	r := New("env.schema.yaml", testSchema(), models.Result{"PORT": 8080.0, "NAME": nil}, nil, false)

	assert.Nil(t, r.Values)
}

func TestNew_ValidationFailure(t *testing.T) {
	r := New("env.schema.yaml", testSchema(), nil, failedValidation(t), true)

	assert.False(t, r.Valid)
	assert.Equal(t, []string{`Variable PORT must be a number. Received: "x"`}, r.Errors)
	assert.Nil(t, r.Values)
}

func TestNew_OtherError(t *testing.T) {
	r := New("env.schema.yaml", testSchema(), nil, errors.New("boom"), false)

	assert.False(t, r.Valid)
	assert.Equal(t, []string{"boom"}, r.Errors)
}

func TestWriteJSON(t *testing.T) {
	r := New("env.schema.yaml", testSchema(), nil, failedValidation(t), false)

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, false, got["valid"])
	assert.Equal(t, "env.schema.yaml", got["schema"])
	assert.Equal(t, 2.0, got["variables"])
	assert.Equal(t, []any{`Variable PORT must be a number. Received: "x"`}, got["errors"])
	assert.NotContains(t, got, "values")
}

func TestWriteText_Success(t *testing.T) {
	r := New("env.schema.yaml", testSchema(), models.Result{"PORT": 8080.0, "NAME": nil}, nil, true)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf, false))

	assert.Equal(t, "✔ env.schema.yaml: 2 variables valid\nPORT = 8080\nNAME = (unset)\n", buf.String())
}

func TestWriteText_Failure(t *testing.T) {
	r := New("env.schema.yaml", testSchema(), nil, failedValidation(t), false)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf, false))

	assert.Equal(t, "✘ env.schema.yaml: 1 of 2 variables invalid\n"+
		` - Variable PORT must be a number. Received: "x"`+"\n", buf.String())
}

// TestWriteText_Styled verifies styled output still carries the messages.
func TestWriteText_Styled(t *testing.T) {
	r := New("env.schema.yaml", testSchema(), nil, failedValidation(t), false)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf, true))

	assert.Contains(t, buf.String(), "env.schema.yaml")
	assert.Contains(t, buf.String(), `Variable PORT must be a number. Received: "x"`)
}
