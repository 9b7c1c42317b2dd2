// Package fetch orchestrates the two-phase retrieval of job posting text.
// A cheap static HTTP fetch is tried first; a headless-browser render is
// attempted only when the static result is missing or too thin to be a real
// posting. The two phases are strictly sequential per call and are never
// raced against each other.
package fetch

import (
	"context"
	"unicode/utf8"

	"github.com/jobcoach/jobcoach"
)

// Content thresholds.
const (
	// DefaultMinContent is the minimum viable text length. Anything
	// shorter is treated as a failed phase.
	DefaultMinContent = 100

	// DefaultQualityThreshold is the text length below which the
	// fallback extractor gets a chance to do better. Selector probing
	// can clear the viability bar on pure boilerplate (cookie prompts,
	// "enable JavaScript" shells); the fallback recovers real article
	// content on such pages.
	DefaultQualityThreshold = 200
)

// RendererFactory creates a rendered-page fetcher. The ContentFetcher
// launches one per call so each call owns its browser instance, and closes
// it on every exit path.
type RendererFactory func() (jobcoach.Fetcher, error)

// Ensure ContentFetcher implements jobcoach.ContentFetcher at compile time.
var _ jobcoach.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher converts a URL into cleaned posting text.
type ContentFetcher struct {
	// Static performs the phase-1 plain HTTP fetch.
	Static jobcoach.Fetcher

	// Rendered creates the phase-2 browser fetcher. Optional; when nil,
	// only the static phase runs.
	Rendered RendererFactory

	// Extractor extracts posting text from fetched HTML.
	Extractor jobcoach.Extractor

	// Fallback, if set, is tried when Extractor under-delivers.
	Fallback jobcoach.Extractor

	// Meta, if set, enriches results with page metadata when the
	// extractor found no title.
	Meta jobcoach.MetadataExtractor

	// MinContent overrides DefaultMinContent when > 0.
	MinContent int

	// QualityThreshold overrides DefaultQualityThreshold when > 0.
	QualityThreshold int
}

// FetchContent retrieves and cleans the page at url.
//
// The static result is final once it clears the viability threshold, even
// if the rendered page would have had more content; the browser launch is
// paid only when necessary.
func (c *ContentFetcher) FetchContent(ctx context.Context, url string) (*jobcoach.FetchResult, error) {
	minContent := c.MinContent
	if minContent <= 0 {
		minContent = DefaultMinContent
	}

	var staticErr error
	if html, err := c.Static.Fetch(ctx, url); err != nil {
		staticErr = err
	} else if result := c.extract(html); textLen(result) >= minContent {
		return fetchResult(result, "static"), nil
	}

	if c.Rendered == nil {
		if staticErr != nil {
			return nil, staticErr
		}
		return nil, insufficientErr(url)
	}

	result, err := c.fetchRendered(ctx, url)
	if err != nil {
		return nil, err
	}
	if textLen(result) < minContent {
		return nil, insufficientErr(url)
	}

	return fetchResult(result, "rendered"), nil
}

// fetchRendered runs the phase-2 browser fetch. The browser is launched per
// call and closed on every exit path, including fetch errors.
func (c *ContentFetcher) fetchRendered(ctx context.Context, url string) (*jobcoach.ExtractResult, error) {
	renderer, err := c.Rendered()
	if err != nil {
		return nil, err
	}
	defer renderer.Close()

	html, err := renderer.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return c.extract(html), nil
}

// extract runs the primary extractor and, when it under-delivers, gives the
// quality fallback a chance. The longer result wins. Extraction errors are
// treated as empty results; viability is judged by the caller.
func (c *ContentFetcher) extract(html string) *jobcoach.ExtractResult {
	quality := c.QualityThreshold
	if quality <= 0 {
		quality = DefaultQualityThreshold
	}

	result, err := c.Extractor.Extract(html)
	if err != nil {
		result = &jobcoach.ExtractResult{}
	}

	if textLen(result) < quality && c.Fallback != nil {
		if fb, err := c.Fallback.Extract(html); err == nil && textLen(fb) > textLen(result) {
			if fb.Title == "" {
				fb.Title = result.Title
			}
			result = fb
		}
	}

	if result.Title == "" && c.Meta != nil {
		if meta, err := c.Meta.ExtractMetadata(html); err == nil {
			result.Title = meta.Title
		}
	}

	return result
}

func textLen(result *jobcoach.ExtractResult) int {
	if result == nil {
		return 0
	}
	return utf8.RuneCountInString(result.Text)
}

func fetchResult(result *jobcoach.ExtractResult, source string) *jobcoach.FetchResult {
	return &jobcoach.FetchResult{
		Text:      result.Text,
		Title:     result.Title,
		Source:    source,
		Truncated: result.Truncated,
	}
}

func insufficientErr(url string) error {
	return jobcoach.Errorf(jobcoach.EUNAVAILABLE,
		"insufficient content extracted from %s; the page may be access-restricted, paywalled, or empty", url)
}
