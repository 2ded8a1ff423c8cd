package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const bankSchemaURL = "schema://question-bank.json"

// bankSchema describes a JSON bank: an array of objects keyed by the same
// column names as the CSV header. respuesta_correcta may be a number or text.
var bankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			ColCategory:     map[string]any{"type": "string"},
			ColPrompt:       map[string]any{"type": "string"},
			ColOption1:      map[string]any{"type": "string"},
			ColOption2:      map[string]any{"type": "string"},
			ColOption3:      map[string]any{"type": "string"},
			ColCorrect:      map[string]any{"type": []any{"integer", "string"}},
			ColExplanation1: map[string]any{"type": "string"},
			ColExplanation2: map[string]any{"type": "string"},
			ColExplanation3: map[string]any{"type": "string"},
		},
		"required": []any{
			ColCategory, ColPrompt,
			ColOption1, ColOption2, ColOption3,
			ColCorrect,
			ColExplanation1, ColExplanation2, ColExplanation3,
		},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func getBankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, bankSchema); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(bankSchemaURL)
	})
	return compiledSchema, schemaErr
}

// decodeJSON reads a JSON bank, validating its shape before conversion.
func decodeJSON(path string, r io.Reader) ([]QuestionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read: %w", err)}
	}

	// UnmarshalJSON keeps numbers as json.Number so "integer" checks are exact.
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := getBankSchema()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: schema validation failed: %v", ErrInvalidRow, err)}
	}

	items, _ := parsed.([]any)
	records := make([]QuestionRecord, 0, len(items))
	for i, item := range items {
		obj, _ := item.(map[string]any)
		raw := row{
			Category:     stringField(obj, ColCategory),
			Prompt:       stringField(obj, ColPrompt),
			Option1:      stringField(obj, ColOption1),
			Option2:      stringField(obj, ColOption2),
			Option3:      stringField(obj, ColOption3),
			Correct:      stringField(obj, ColCorrect),
			Explanation1: stringField(obj, ColExplanation1),
			Explanation2: stringField(obj, ColExplanation2),
			Explanation3: stringField(obj, ColExplanation3),
		}

		rec, col, err := raw.toRecord(len(records))
		if err != nil {
			return nil, &LoadError{Path: path, Row: i + 1, Column: col, Err: err}
		}
		records = append(records, rec)
	}

	return records, nil
}

// stringField renders a decoded JSON scalar as text.
func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
