package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/corpuspipe/core"
)

// Preview formats accepted by ForPreview.
const (
	PreviewNone     = ""
	PreviewMarkdown = "markdown"
	PreviewPDF      = "pdf"
)

// ForPreview returns the renderer for a preview format name,
// or nil for PreviewNone.
func ForPreview(name string) (core.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PreviewNone:
		return nil, nil
	case PreviewMarkdown, "md":
		return NewMarkdownRenderer(), nil
	case PreviewPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown preview format %q (want %q or %q)", name, PreviewMarkdown, PreviewPDF)
	}
}
