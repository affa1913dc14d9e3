// Package schema validates configuration documents against embedded JSON
// schemas. Schemas are authored in YAML and converted to JSON before
// compilation.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed embedded_schemas/*.yaml
var schemaFS embed.FS

// ValidationError represents a single validation error.
type ValidationError struct {
	Path    string `json:"path,omitempty"` // Single string path (e.g., "vignettes.head_lines")
	Message string `json:"message"`
}

// Result holds the validation result.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// registry holds pre-compiled schemas for known schema names.
var registry = make(map[string]*gojsonschema.Schema)

func init() {
	known := map[string]string{
		"preflight-policy-v1.0.0": "embedded_schemas/preflight-policy-v1.0.0.yaml",
	}
	for name, path := range known {
		schemaBytes, err := schemaFS.ReadFile(path)
		if err != nil {
			continue
		}

		var schemaData interface{}
		if err := yaml.Unmarshal(schemaBytes, &schemaData); err != nil {
			continue
		}
		jsonBytes, err := json.Marshal(schemaData)
		if err != nil {
			continue
		}

		compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(jsonBytes))
		if err != nil {
			continue
		}
		registry[name] = compiled
	}
}

// Validate validates data against the named embedded schema.
func Validate(data interface{}, schemaName string) (*Result, error) {
	compiled, ok := registry[schemaName]
	if !ok {
		return nil, fmt.Errorf("schema %s not found in registry", schemaName)
	}

	result, err := compiled.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	res := &Result{Valid: result.Valid()}
	if !result.Valid() {
		for _, verr := range result.Errors() {
			field := verr.Field()
			if field == "" {
				field = "root"
			}
			res.Errors = append(res.Errors, ValidationError{
				Path:    field,
				Message: verr.Description(),
			})
		}
	}
	return res, nil
}
