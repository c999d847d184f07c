// Package bench wires the matching primitives into one evaluator per
// document type. Each evaluator is a single-pass transform from a
// ground-truth/predicted document pair to a result record.
package bench

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/extraction-bench/internal/common"
)

// Document is an opaque nested mapping, read-only to the evaluators.
// The only shape rule is the one below: the top level must be an object.
// Fields are accessed by path; anything malformed inside reads as absent.
type Document map[string]any

// BuildDocumentSchema returns the input contract as a JSON-Schema
// (draft 2020-12 subset) generic map. Deliberately minimal: validating
// individual fields is the evaluators' job, scored rather than rejected.
func BuildDocumentSchema() map[string]any {
	return map[string]any{"type": "object"}
}

// ParseDocument decodes raw JSON and validates the top-level shape.
// A violation is the only hard failure an evaluation run can produce.
func ParseDocument(raw []byte) (Document, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, common.SchemaError("not valid JSON", err)
	}
	if err := validateAgainstSchema(BuildDocumentSchema(), v); err != nil {
		return nil, common.SchemaError("expected JSON object at top-level", err)
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, common.SchemaErrorf("expected JSON object at top-level, got %T", v)
	}
	return Document(doc), nil
}

// LoadDocument reads and parses one document from disk. Thin boundary glue;
// the evaluators themselves never touch I/O.
func LoadDocument(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, fmt.Sprintf("read %s", path))
	}
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, common.WrapError(err, path)
	}
	return doc, nil
}

// validateAgainstSchema validates v against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, v any) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// items returns the list under key, treating absent, null or any non-array
// value as empty.
func (d Document) items(key string) []any {
	list, _ := d[key].([]any)
	return list
}

// get returns the value under key, nil when absent.
func (d Document) get(key string) any {
	return d[key]
}

// asMap coerces one list entry to a mapping; anything else reads as empty.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
