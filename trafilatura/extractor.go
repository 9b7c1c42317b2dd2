// Package trafilatura provides a content-quality fallback extractor.
// When selector probing under-delivers on a page, go-trafilatura's
// main-content detection often still recovers the posting text.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/jobcoach/jobcoach"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements jobcoach.Extractor at compile time.
var _ jobcoach.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*jobcoach.ExtractResult, error) {
	if rawHTML == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &jobcoach.ExtractResult{
		Title:       result.Metadata.Title,
		Text:        jobcoach.NormalizeWhitespace(result.ContentText),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
