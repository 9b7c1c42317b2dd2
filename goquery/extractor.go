// Package goquery provides CSS-selector based content extraction for job
// posting pages. It strips boilerplate and cookie banners from HTML and
// probes an ordered list of content selectors, taking the first one that
// yields enough text.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobcoach/jobcoach"
)

// Selector is a named CSS query probed for main content.
type Selector struct {
	Name  string
	Query string
}

// DefaultSelectors returns the content selector candidates, probed in order.
// Generic containers come first, then class and attribute names common on
// job boards, with body as the catch-all. New site patterns are added here
// without touching the probing control flow.
func DefaultSelectors() []Selector {
	return []Selector{
		{Name: "article", Query: "article"},
		{Name: "role-main", Query: `[role="main"]`},
		{Name: "main", Query: "main"},
		{Name: "job-description", Query: `.job-description, .jobDescription, #job-description, [class*="job-description"], [data-testid="jobDescriptionText"], .jobsearch-JobComponent-description, .description__text`},
		{Name: "job-details", Query: ".job-details, .job-posting, .posting, #job-details, #content"},
		{Name: "body", Query: "body"},
	}
}

// Elements that never contain posting content.
const noiseSelector = "script, style, nav, header, footer, iframe, noscript"

// Cookie and consent banner containers, removed before probing.
const bannerSelector = `#onetrust-consent-sdk, #onetrust-banner-sdk, #cookie-banner, .cookie-banner, .cookie-consent, .cookie-notice, .cc-window, .gdpr-banner, [aria-label="cookie banner"]`

// Default extraction limits.
const (
	// DefaultMinSelectorText is the minimum text length for a selector
	// probe to win.
	DefaultMinSelectorText = 200

	// DefaultMaxTextLength caps the extracted text.
	DefaultMaxTextLength = 15000
)

// Ensure Extractor implements jobcoach.Extractor at compile time.
var _ jobcoach.Extractor = (*Extractor)(nil)

// Extractor extracts the main text of a job posting page using CSS
// selector probing.
type Extractor struct {
	selectors []Selector
	minText   int
	maxText   int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors replaces the default content selector candidates.
func WithSelectors(selectors []Selector) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// WithMinSelectorText sets the text length a selector probe must exceed to
// win. Defaults to DefaultMinSelectorText.
func WithMinSelectorText(n int) Option {
	return func(e *Extractor) {
		e.minText = n
	}
}

// WithMaxTextLength sets the extracted text cap.
// Defaults to DefaultMaxTextLength.
func WithMaxTextLength(n int) Option {
	return func(e *Extractor) {
		e.maxText = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors: DefaultSelectors(),
		minText:   DefaultMinSelectorText,
		maxText:   DefaultMaxTextLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract probes the selector candidates in order and returns the first
// result whose normalized text exceeds the minimum length. When no selector
// clears the threshold, the body text is returned as-is; the caller decides
// whether it is viable.
func (e *Extractor) Extract(rawHTML string) (*jobcoach.ExtractResult, error) {
	if rawHTML == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(noiseSelector).Remove()
	doc.Find(bannerSelector).Remove()

	for _, sel := range e.selectors {
		selection := doc.Find(sel.Query).First()
		if selection.Length() == 0 {
			continue
		}

		text := jobcoach.NormalizeWhitespace(selection.Text())
		if utf8.RuneCountInString(text) <= e.minText {
			continue
		}

		capped, truncated := jobcoach.Truncate(text, e.maxText)
		contentHTML, _ := goquery.OuterHtml(selection)

		return &jobcoach.ExtractResult{
			Title:       title,
			Text:        capped,
			ContentHTML: contentHTML,
			Truncated:   truncated,
		}, nil
	}

	// Nothing cleared the threshold; hand back whatever the body holds.
	text := jobcoach.NormalizeWhitespace(doc.Find("body").Text())
	capped, truncated := jobcoach.Truncate(text, e.maxText)

	return &jobcoach.ExtractResult{
		Title:     title,
		Text:      capped,
		Truncated: truncated,
	}, nil
}
