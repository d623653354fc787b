// Package core defines the pipeline types and interfaces for corpuspipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"errors"
)

// Fixed record values. Every paragraph comes from the lead of a Wikipedia page.
const (
	SectionLead     = "lead"
	SourceWikipedia = "wikipedia"
)

var (
	// ErrPageNotFound is returned by a PageSource when the title has no page.
	ErrPageNotFound = errors.New("page not found")

	// ErrUnresolved is returned by the resolver when neither the exact title
	// nor its capitalized form exists.
	ErrUnresolved = errors.New("title did not resolve")
)

// Page is a resolved encyclopedia page.
type Page struct {
	Title string // canonical casing
	Text  string // plain text, paragraphs separated by blank lines
	URL   string
}

// Record is one retained lead paragraph, written as one JSONL line.
type Record struct {
	ID        string `json:"id"`
	Domain    string `json:"domain"`
	Title     string `json:"title"`
	Section   string `json:"section"`
	ParaIndex int    `json:"para_index"`
	URL       string `json:"url"`
	Contents  string `json:"contents"`
	Source    string `json:"source"`
}

// PageSource looks up a single page by title.
// It returns ErrPageNotFound when the page does not exist.
type PageSource interface {
	Page(ctx context.Context, title string) (*Page, error)
}

// Extractor pulls the readable content out of an HTML extract, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into plain text with blank-line paragraph breaks.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts records into a final output format.
type Renderer interface {
	Render(records []Record) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".jsonl", ".pdf").
	Extension() string
}
