package mock

import "github.com/jobcoach/jobcoach"

var _ jobcoach.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobcoach.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*jobcoach.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*jobcoach.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ jobcoach.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of jobcoach.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*jobcoach.PageMeta, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*jobcoach.PageMeta, error) {
	return e.ExtractMetadataFn(html)
}

var _ jobcoach.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobcoach.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
