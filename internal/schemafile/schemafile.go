// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schemafile

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-env-guard/models"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// definitionDTO is the document form of a single variable definition.
type definitionDTO struct {
	Type     string `mapstructure:"type"`
	Required *bool  `mapstructure:"required"`
	Default  any    `mapstructure:"default"`
	Choices  []any  `mapstructure:"choices"`
	Pattern  string `mapstructure:"pattern"`
	Message  string `mapstructure:"message"`
}

// Load reads and parses the schema document at path.
func Load(path string) (*models.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading schema file: %w", err)
	}

	schema, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing schema file %s: %w", path, err)
	}

	return schema, nil
}

// Parse decodes a YAML or JSON schema document.
func Parse(data []byte) (*models.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding schema document: %w", err)
	}

	schema := models.NewSchema()
	if len(doc.Content) == 0 {
		return schema, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		def, err := parseDefinition(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: variable %s: %w", ErrInvalidDefinition, name, err)
		}
		schema.Set(name, def)
	}

	return schema, nil
}

func parseDefinition(node *yaml.Node) (models.Definition, error) {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return models.Definition{}, err
	}

	var dto definitionDTO
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &dto,
	})
	if err != nil {
		return models.Definition{}, err
	}
	if err = decoder.Decode(raw); err != nil {
		return models.Definition{}, err
	}

	varType, err := models.ParseVarType(dto.Type)
	if err != nil {
		return models.Definition{}, err
	}

	def := models.Definition{
		Type:     varType,
		Optional: dto.Required != nil && !*dto.Required,
	}

	if dto.Default != nil {
		if def.Default, err = convert(dto.Default, varType); err != nil {
			return models.Definition{}, fmt.Errorf("default: %w", err)
		}
	}

	for _, c := range dto.Choices {
		choice, err := convert(c, varType)
		if err != nil {
			return models.Definition{}, fmt.Errorf("choices: %w", err)
		}
		def.Choices = append(def.Choices, choice)
	}

	if dto.Pattern != "" {
		if def.Validate, err = patternCheck(dto.Pattern, dto.Message); err != nil {
			return models.Definition{}, fmt.Errorf("pattern: %w", err)
		}
	}

	return def, nil
}

// convert brings a document scalar to the Go type produced by coercion for t.
func convert(v any, t models.VarType) (any, error) {
	switch t {
	case models.Number:
		if f, ok := models.ToFloat(v); ok {
			return f, nil
		}
		if s, ok := v.(string); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err == nil {
				return f, nil
			}
		}
		return nil, fmt.Errorf("%v is not a number", v)
	case models.Boolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("%v is not a boolean", v)
	default:
		switch v.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("%v is not a scalar", v)
		}
		return fmt.Sprint(v), nil
	}
}

func patternCheck(pattern, message string) (models.Check, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return func(value any) models.Verdict {
		if re.MatchString(fmt.Sprint(value)) {
			return models.Valid()
		}
		if message != "" {
			return models.Invalidf("%s", message)
		}
		return models.Invalidf("must match pattern %s", pattern)
	}, nil
}
