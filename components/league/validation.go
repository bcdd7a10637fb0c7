package league

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const dateKeyPattern = `^\d{4}-\d{2}-\d{2}$`

// snapshotSchema describes the inbound data contract: raw cumulative daily
// gross series per movie, cumulative profit totals per owner. Date keys
// must be zero-padded so lexicographic order equals chronological order.
var snapshotSchema = map[string]any{
	"type":     "object",
	"required": []string{"movies", "owners"},
	"properties": map[string]any{
		"fetched_at": map[string]any{"type": "string"},
		"movies": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []string{"movie_title"},
				"properties": map[string]any{
					"movie_title":  map[string]any{"type": "string"},
					"owner":        map[string]any{"type": "string"},
					"pick_type":    map[string]any{"type": "string"},
					"release_date": map[string]any{"type": "string"},
					"budget":       map[string]any{"type": "number", "minimum": 0},
					"daily_gross": map[string]any{
						"type": "object",
						"patternProperties": map[string]any{
							dateKeyPattern: map[string]any{"type": "number"},
						},
						"additionalProperties": false,
					},
				},
			},
		},
		"owners": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"total": map[string]any{
						"type": "object",
						"patternProperties": map[string]any{
							dateKeyPattern: map[string]any{"type": "number"},
						},
						"additionalProperties": false,
					},
				},
			},
		},
	},
}

// JSONSchemaValidator validates snapshots against the embedded schema,
// compiled once.
type JSONSchemaValidator struct {
	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{}
}

// Validate ensures the snapshot satisfies the data contract. Structural
// violations (wrong types, malformed date keys) are rejected here so the
// derivation layer never has to raise errors of its own.
func (v *JSONSchemaValidator) Validate(snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("league: snapshot is required")
	}
	schema, err := v.schema()
	if err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("league: marshal snapshot: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("league: normalize snapshot: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("league: snapshot failed validation: %w", err)
	}
	return nil
}

func (v *JSONSchemaValidator) schema() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		data, err := json.Marshal(snapshotSchema)
		if err != nil {
			v.err = fmt.Errorf("league: marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("snapshot.json", bytes.NewReader(data)); err != nil {
			v.err = fmt.Errorf("league: load schema: %w", err)
			return
		}
		v.compiled, v.err = compiler.Compile("snapshot.json")
	})
	return v.compiled, v.err
}

type noopValidator struct{}

func (noopValidator) Validate(*Snapshot) error { return nil }
