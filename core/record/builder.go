// Package record turns resolved page paragraphs into corpus records.
package record

import (
	"github.com/google/uuid"

	"github.com/gaurav-prasanna/corpuspipe/core"
	"github.com/gaurav-prasanna/corpuspipe/core/clean"
)

// MinTokens is the smallest cleaned paragraph, in whitespace tokens, that is kept.
const MinTokens = 20

// Builder assembles records for one page at a time.
type Builder struct {
	newID func() string
}

// New creates a Builder that stamps each record with a random UUID.
func New() *Builder {
	return &Builder{newID: uuid.NewString}
}

// NewWithIDFunc creates a Builder with a custom ID generator.
func NewWithIDFunc(newID func() string) *Builder {
	return &Builder{newID: newID}
}

// Build cleans paragraphs, drops those shorter than MinTokens, and returns
// one record per kept paragraph. ParaIndex counts kept paragraphs from 0.
func (b *Builder) Build(domain string, page core.Page, paragraphs []string) []core.Record {
	var records []core.Record
	for _, p := range paragraphs {
		text := clean.Clean(p)
		if clean.Tokens(text) < MinTokens {
			continue
		}
		records = append(records, core.Record{
			ID:        b.newID(),
			Domain:    domain,
			Title:     page.Title,
			Section:   core.SectionLead,
			ParaIndex: len(records),
			URL:       page.URL,
			Contents:  text,
			Source:    core.SourceWikipedia,
		})
	}
	return records
}
