package itemgen

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchema constrains generator option files. Validation runs
// before defaulting, so a typoed key or out-of-range value fails the
// load instead of silently falling back to defaults.
const configSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"triangles": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"count": {"type": "integer", "minimum": 1},
				"minSide": {"type": "integer", "minimum": 1},
				"maxSide": {"type": "integer", "minimum": 3},
				"mix": {
					"type": "object",
					"additionalProperties": false,
					"properties": {
						"sides": {"type": "number", "minimum": 0, "maximum": 1}
					}
				},
				"withVisualAt": {"enum": ["never", "always", "medium+"]}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getConfigSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(configSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse options schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://itemgen-options.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Config carries per-generator options loaded from a JSON file. Absent
// fields keep their defaults; present fields are schema-checked and
// then validated by the generator they configure.
type Config struct {
	Triangles TriangleConfig `json:"triangles"`
}

// TriangleConfig is the file form of TriangleOptions. Pointer fields
// distinguish "absent" from zero.
type TriangleConfig struct {
	Count        *int         `json:"count,omitempty"`
	MinSide      *int         `json:"minSide,omitempty"`
	MaxSide      *int         `json:"maxSide,omitempty"`
	Mix          *TriangleMix `json:"mix,omitempty"`
	WithVisualAt *string      `json:"withVisualAt,omitempty"`
}

// TriangleMix weights the item families within a triangle bank.
type TriangleMix struct {
	Sides *float64 `json:"sides,omitempty"`
}

// TriangleOptions resolves the file form against defaults.
func (c Config) TriangleOptions() TriangleOptions {
	opts := DefaultTriangleOptions()
	tc := c.Triangles
	if tc.Count != nil {
		opts.Count = *tc.Count
	}
	if tc.MinSide != nil {
		opts.MinSide = *tc.MinSide
	}
	if tc.MaxSide != nil {
		opts.MaxSide = *tc.MaxSide
	}
	if tc.Mix != nil && tc.Mix.Sides != nil {
		opts.SidesMix = *tc.Mix.Sides
	}
	if tc.WithVisualAt != nil {
		opts.Visuals = VisualPolicy(*tc.WithVisualAt)
	}
	return opts
}

// ParseConfig validates raw JSON against the options schema and
// decodes it.
func ParseConfig(raw []byte) (Config, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Config{}, fmt.Errorf("options: invalid JSON: %w", err)
	}

	schema, err := getConfigSchema()
	if err != nil {
		return Config{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return Config{}, fmt.Errorf("options: schema validation failed: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("options: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses an options file. An empty path yields
// the zero Config, which resolves to all defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("options: %w", err)
	}
	return ParseConfig(raw)
}
