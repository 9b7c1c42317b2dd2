// Package ingest discovers job posting URLs on careers sites and imports
// them in bulk through the posting parser.
package ingest

import (
	"context"
	"log/slog"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/bloom"
	"github.com/jobcoach/jobcoach/goquery"
)

// Bloom filter sizing for discovery dedup.
const (
	discoveryExpectedURLs      = 10000
	discoveryFalsePositiveRate = 0.01
)

// Discoverer finds posting URLs for a careers site. Sitemaps are consulted
// first; when a site publishes none, the careers page itself is fetched and
// scanned for posting links.
type Discoverer struct {
	Sitemaps jobcoach.SitemapService

	// Fetcher retrieves the careers listing page for the link-scan
	// fallback. Optional; without it, discovery is sitemap-only.
	Fetcher jobcoach.Fetcher

	Logger *slog.Logger
}

// Discover returns deduplicated posting URLs for the careers site at
// baseURL. An empty result with a nil error means the site exposed nothing
// that looks like a posting.
func (d *Discoverer) Discover(ctx context.Context, baseURL string, filter *jobcoach.URLFilter) ([]string, error) {
	if baseURL == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "careers URL required")
	}

	urls, err := d.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		return dedupe(urls), nil
	}

	if d.Fetcher == nil {
		return []string{}, nil
	}

	if d.Logger != nil {
		d.Logger.Info("no sitemap URLs, scanning careers page for posting links", "url", baseURL)
	}

	html, err := d.Fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	links, err := goquery.PostingLinks(html, baseURL)
	if err != nil {
		return nil, err
	}

	if filter != nil {
		filtered := links[:0]
		for _, link := range links {
			if filter.Match(link) {
				filtered = append(filtered, link)
			}
		}
		links = filtered
	}

	return dedupe(links), nil
}

// dedupe removes duplicate URLs preserving order. A Bloom filter keeps the
// memory cost flat for large careers sites; the false positive rate only
// risks dropping a URL, never importing one twice.
func dedupe(urls []string) []string {
	seen := bloom.NewFilter(discoveryExpectedURLs, discoveryFalsePositiveRate)
	result := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Test(u) {
			continue
		}
		seen.Add(u)
		result = append(result, u)
	}
	return result
}
