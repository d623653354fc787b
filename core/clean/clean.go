// Package clean normalizes paragraph text before it is stored in the corpus.
// Uses a simple whitespace tokenizer (words ≈ tokens) for length checks.
package clean

import (
	"regexp"
	"strings"
)

var (
	footnoteRegex   = regexp.MustCompile(`\[\d+\]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Clean strips bracketed numeric footnote markers like [12] and collapses
// every whitespace run into a single space. Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	// Removing "[2]" from "[1[2]]" exposes "[1]", so strip to a fixed point.
	for footnoteRegex.MatchString(s) {
		s = footnoteRegex.ReplaceAllString(s, "")
	}
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens returns the number of whitespace-separated tokens in s.
func Tokens(s string) int {
	return len(strings.Fields(s))
}
