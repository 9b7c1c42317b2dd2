package jobcoach

import "context"

// FetchResult holds cleaned page text produced by a ContentFetcher.
type FetchResult struct {
	// Text is whitespace-normalized, length-capped plain text.
	Text string

	// Title is the page title, if one could be determined.
	Title string

	// Source indicates which fetch phase produced the text:
	// "static" or "rendered".
	Source string

	// Truncated reports whether Text was cut at the length cap.
	Truncated bool
}

// ContentFetcher converts a URL into plain text suitable for prompting an
// LLM. Implementations try a cheap static fetch first and fall back to a
// headless-browser render when the static result is too thin.
type ContentFetcher interface {
	// FetchContent retrieves and cleans the page at url.
	// Returns ETIMEOUT when the page load timed out and EUNAVAILABLE when
	// no viable content could be extracted (the page is likely
	// access-restricted, paywalled, or empty).
	FetchContent(ctx context.Context, url string) (*FetchResult, error)
}

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch retrieves the HTML at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher (e.g., a browser
	// process). Must be called when the Fetcher is no longer needed.
	Close() error
}

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main content as plain text with boilerplate removed.
	Text string

	// ContentHTML is the main content as HTML, when the extractor
	// preserves structure. May be empty.
	ContentHTML string

	// Truncated reports whether Text was cut at the extractor's
	// length cap.
	Truncated bool
}

// Extractor extracts main content from HTML pages, removing boilerplate
// such as navigation, scripts, and cookie banners.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// PageMeta holds document metadata recovered from an HTML page.
type PageMeta struct {
	Title     string
	Byline    string
	SiteName  string
	Excerpt   string
	Published string
}

// MetadataExtractor recovers page metadata (title, site name, byline) used
// to enrich parsed postings.
type MetadataExtractor interface {
	ExtractMetadata(html string) (*PageMeta, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
