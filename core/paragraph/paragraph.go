// Package paragraph splits page text into paragraphs.
package paragraph

import (
	"regexp"
	"strings"
)

// DefaultTopN is the number of lead paragraphs kept per page.
const DefaultTopN = 3

// blankLineRegex matches one or more blank lines, including whitespace-only ones.
var blankLineRegex = regexp.MustCompile(`\n\s*\n`)

// Top returns the first n non-empty paragraphs of text, in order.
// Paragraphs are delimited by blank lines and trimmed.
func Top(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	var paras []string
	for _, p := range blankLineRegex.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		paras = append(paras, p)
		if len(paras) == n {
			break
		}
	}
	return paras
}
