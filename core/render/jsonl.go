// Package render — JSONL renderer.
// Writes one JSON object per record, each terminated by "\n", with no
// enclosing array. This is the corpus format consumed by downstream indexers.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/corpuspipe/core"
)

// JSONLRenderer produces line-delimited JSON output from records.
type JSONLRenderer struct{}

// NewJSONLRenderer creates a JSONLRenderer.
func NewJSONLRenderer() *JSONLRenderer {
	return &JSONLRenderer{}
}

// Render encodes each record on its own line.
func (r *JSONLRenderer) Render(records []core.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Titles such as "MITRE ATT&CK" stay readable.
	enc.SetEscapeHTML(false)

	for i, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return nil, fmt.Errorf("encoding record %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for JSONL output.
func (r *JSONLRenderer) Extension() string {
	return ".jsonl"
}
