// Package resolve maps seed titles to existing pages.
// An exact lookup is tried first; if the page is not found, the title is
// retried once in sentence case: first character title-cased, rest lower-cased.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gaurav-prasanna/corpuspipe/core"
)

// Resolver resolves seed titles against a PageSource.
type Resolver struct {
	source core.PageSource
}

// New creates a Resolver backed by source.
func New(source core.PageSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve returns the page for title, falling back to Capitalize(title).
// It returns an error wrapping core.ErrUnresolved when neither exists.
// Any other lookup error is returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, title string) (*core.Page, error) {
	page, err := r.source.Page(ctx, title)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, core.ErrPageNotFound) {
		return nil, err
	}

	alt := Capitalize(title)
	if alt != title {
		page, err = r.source.Page(ctx, alt)
		if err == nil {
			return page, nil
		}
		if !errors.Is(err, core.ErrPageNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %q", core.ErrUnresolved, title)
}

// Capitalize title-cases the first character of s and lower-cases the rest,
// so "Penetration Test" becomes "Penetration test".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
