// Package extract implements the Extractor interface.
// It cleans an HTML page extract by:
//  1. Removing noise elements (reference superscripts, tables, styles, edit links)
//  2. Returning the remaining body fragment
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before normalization.
// These contribute no prose to a lead paragraph.
var noiseSelectors = []string{
	"script", "style", "noscript", "link", "meta",
	"sup.reference", "sup.noprint", ".reference", ".mw-ref",
	".mw-editsection", ".mw-empty-elt", ".noprint",
	"table", "figure", "figcaption", "img", "picture",
	".hatnote", ".shortdescription", ".navbox",
}

// HTMLExtractor strips noise from an HTML extract and returns the cleaned fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes an HTML extract and returns the cleaned inner HTML of its body.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Fragments are wrapped in <html><body> by the parser, so body always exists.
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", fmt.Errorf("no body found in HTML")
	}

	result, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return strings.TrimSpace(result), nil
}
