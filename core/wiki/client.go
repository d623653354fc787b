// Package wiki implements core.PageSource against the MediaWiki action API.
// Each lookup is one GET of action=query with the extracts and info props.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gaurav-prasanna/corpuspipe/core"
	"github.com/gaurav-prasanna/corpuspipe/core/extract"
	"github.com/gaurav-prasanna/corpuspipe/core/normalize"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultLanguage  = "en"
	DefaultUserAgent = "corpuspipe/0.2 (https://github.com/gaurav-prasanna/corpuspipe; academic)"
)

// Format selects how page extracts are requested and turned into text.
type Format string

const (
	// FormatWiki requests plain-text extracts with wiki-style section headings.
	FormatWiki Format = "wiki"
	// FormatHTML requests HTML extracts and converts them to plain text locally.
	FormatHTML Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatWiki, FormatHTML:
		return f, nil
	case "":
		return FormatWiki, nil
	default:
		return "", fmt.Errorf("unknown extract format %q (want %q or %q)", s, FormatWiki, FormatHTML)
	}
}

// Config configures a Client.
type Config struct {
	Language  string        // e.g. "en"
	UserAgent string        // identifying client label, required by the API etiquette
	Endpoint  string        // defaults to https://{Language}.wikipedia.org/w/api.php
	Format    Format        // defaults to FormatWiki
	Timeout   time.Duration // defaults to 30s
}

// Client looks up pages on one language edition of Wikipedia.
type Client struct {
	client     *http.Client
	endpoint   string
	language   string
	userAgent  string
	format     Format
	extractor  core.Extractor
	normalizer core.Normalizer
}

// New creates a Client, filling unset Config fields with defaults.
func New(cfg Config) *Client {
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", cfg.Language)
	}
	if cfg.Format == "" {
		cfg.Format = FormatWiki
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		client:     &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		language:   cfg.Language,
		userAgent:  cfg.UserAgent,
		format:     cfg.Format,
		extractor:  extract.New(),
		normalizer: normalize.New(),
	}
}

// queryResponse is the formatversion=2 response body for action=query.
type queryResponse struct {
	Query struct {
		Pages []apiPage `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type apiPage struct {
	PageID  int    `json:"pageid"`
	Title   string `json:"title"`
	Missing bool   `json:"missing"`
	Invalid bool   `json:"invalid"`
	Extract string `json:"extract"`
	FullURL string `json:"fullurl"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// Page fetches the title's text and canonical URL.
// It returns core.ErrPageNotFound for missing or invalid titles.
func (c *Client) Page(ctx context.Context, title string) (*core.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(title), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d for %q: %s", resp.StatusCode, title, strings.TrimSpace(string(body)))
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("decoding response for %q: %w", title, err)
	}
	if qr.Error != nil {
		return nil, fmt.Errorf("API error for %q: %s: %s", title, qr.Error.Code, qr.Error.Info)
	}

	if len(qr.Query.Pages) == 0 {
		return nil, fmt.Errorf("%q: %w", title, core.ErrPageNotFound)
	}
	p := qr.Query.Pages[0]
	if p.Missing || p.Invalid || p.PageID == 0 {
		return nil, fmt.Errorf("%q: %w", title, core.ErrPageNotFound)
	}

	text, err := c.text(p.Extract)
	if err != nil {
		return nil, fmt.Errorf("converting extract for %q: %w", p.Title, err)
	}

	pageURL := p.FullURL
	if pageURL == "" {
		pageURL = PageURL(c.language, p.Title)
	}

	return &core.Page{
		Title: p.Title,
		Text:  text,
		URL:   pageURL,
	}, nil
}

// queryURL builds the action=query request URL for title.
func (c *Client) queryURL(title string) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("prop", "extracts|info")
	params.Set("inprop", "url")
	params.Set("redirects", "1")
	params.Set("titles", title)
	if c.format == FormatWiki {
		params.Set("explaintext", "1")
		params.Set("exsectionformat", "wiki")
	}
	return c.endpoint + "?" + params.Encode()
}

// text turns a raw extract into plain text with blank-line paragraph breaks.
func (c *Client) text(extract string) (string, error) {
	if c.format != FormatHTML {
		return extract, nil
	}

	content, err := c.extractor.Extract(extract)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	text, err := c.normalizer.Normalize(content)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	return text, nil
}

// PageURL builds the canonical article URL for a title.
// Example: ("en", "Form 10-K") → https://en.wikipedia.org/wiki/Form_10-K
func PageURL(language, title string) string {
	path := url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s", language, path)
}
