// Package output handles writing rendered corpus files to disk.
// The corpus is written once per run; an existing file at the path is overwritten.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct{}

// New creates a Writer.
func New() *Writer {
	return &Writer{}
}

// Write creates the parent directories of path if needed and writes data,
// replacing any existing file. There is no atomic rename: a failed write
// may leave a truncated file.
func (w *Writer) Write(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}

	// Ensure parent directories exist.
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// SiblingPath returns path with its extension replaced by ext.
// Example: out/corpus.jsonl, ".pdf" → out/corpus.pdf
func SiblingPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
