// Package readability recovers page metadata used to enrich parsed
// postings, such as the site name a posting came from.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/jobcoach/jobcoach"
)

// Ensure Extractor implements jobcoach.MetadataExtractor at compile time.
var _ jobcoach.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract page metadata from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata parses the page and returns its metadata.
func (e *Extractor) ExtractMetadata(rawHTML string) (*jobcoach.PageMeta, error) {
	if rawHTML == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	meta := &jobcoach.PageMeta{
		Title:    article.Title,
		Byline:   article.Byline,
		SiteName: article.SiteName,
		Excerpt:  article.Excerpt,
	}
	if article.PublishedTime != nil {
		meta.Published = article.PublishedTime.Format("2006-01-02")
	}
	return meta, nil
}
