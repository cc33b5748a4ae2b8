package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Manifest describes the provenance of a benchmark dataset. It lives next
// to the CSV as <dataset>.manifest.json and is optional.
type Manifest struct {
	Source   string `json:"source"`
	Currency string `json:"currency"`
	AsOf     string `json:"as_of"`
	Notes    string `json:"notes,omitempty"`
}

const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["source", "currency", "as_of"],
  "properties": {
    "source":   {"type": "string", "minLength": 1},
    "currency": {"type": "string", "pattern": "^[A-Z]{3}$"},
    "as_of":    {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "notes":    {"type": "string"}
  },
  "additionalProperties": false
}`

// ManifestPath returns the manifest location for a dataset path.
func ManifestPath(datasetPath string) string {
	return datasetPath + ".manifest.json"
}

// LoadManifest reads and validates the manifest next to datasetPath.
// A missing manifest returns (nil, nil); an invalid one is an error.
func LoadManifest(datasetPath string) (*Manifest, error) {
	path := ManifestPath(datasetPath)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := ParseManifest(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest validates manifest bytes against the embedded schema and
// decodes them.
func ParseManifest(raw []byte) (*Manifest, error) {
	schema, err := compileManifestSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func compileManifestSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(manifestSchema))
	if err != nil {
		return nil, fmt.Errorf("parse manifest schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("manifest.schema.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("manifest.schema.json")
}
