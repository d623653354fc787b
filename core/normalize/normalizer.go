// Package normalize implements the Normalizer interface.
// It converts a cleaned HTML extract into Markdown, then strips the Markdown
// down to plain text that keeps blank-line paragraph breaks.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// TextNormalizer converts HTML to plain text via html-to-markdown.
type TextNormalizer struct{}

// New creates a TextNormalizer.
func New() *TextNormalizer {
	return &TextNormalizer{}
}

// Normalize converts a cleaned HTML fragment into plain text.
func (n *TextNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return StripMarkdown(markdown), nil
}

var (
	headingRegex  = regexp.MustCompile(`(?m)^#{1,6}\s+(.+?)\s*#*$`)
	listItemRegex = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`)
	emphasisRegex = regexp.MustCompile(`(\*{1,3}|_{1,3})([^*_\n]+)(\*{1,3}|_{1,3})`)
	linkRegex     = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	codeRegex     = regexp.MustCompile("`([^`]+)`")
	escapeRegex   = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!|<>~])")
	blankRunRegex = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown removes common Markdown formatting to produce plain text.
func StripMarkdown(md string) string {
	text := md
	text = headingRegex.ReplaceAllString(text, "$1")
	text = listItemRegex.ReplaceAllString(text, "")
	text = linkRegex.ReplaceAllString(text, "$1")
	text = emphasisRegex.ReplaceAllString(text, "$2")
	text = strings.ReplaceAll(text, "```", "")
	text = codeRegex.ReplaceAllString(text, "$1")
	text = escapeRegex.ReplaceAllString(text, "$1")
	text = blankRunRegex.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
