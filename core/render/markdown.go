// Package render provides output renderers for the corpuspipe pipeline.
// This file implements the Markdown preview, a human-readable view of the
// corpus grouped by domain and page. It is also the input to the PDF preview.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/corpuspipe/core"
)

// MarkdownRenderer writes the corpus as a Markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render groups consecutive records under domain (##) and page (###) headings.
func (r *MarkdownRenderer) Render(records []core.Record) ([]byte, error) {
	var buf strings.Builder
	fmt.Fprintf(&buf, "# Corpus preview\n\n")
	fmt.Fprintf(&buf, "%d paragraphs\n", len(records))

	var domain, title string
	for i, rec := range records {
		if i == 0 || rec.Domain != domain {
			domain = rec.Domain
			title = ""
			fmt.Fprintf(&buf, "\n## %s\n", domain)
		}
		if rec.Title != title || rec.ParaIndex == 0 {
			title = rec.Title
			fmt.Fprintf(&buf, "\n### %s\n\n", title)
			fmt.Fprintf(&buf, "Source: %s\n", rec.URL)
		}
		fmt.Fprintf(&buf, "\n[%d] %s\n", rec.ParaIndex, rec.Contents)
	}

	return []byte(buf.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
