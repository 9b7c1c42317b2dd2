package mock

import (
	"context"

	"github.com/jobcoach/jobcoach"
)

var _ jobcoach.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobcoach.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ jobcoach.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher is a mock implementation of jobcoach.ContentFetcher.
type ContentFetcher struct {
	FetchContentFn func(ctx context.Context, url string) (*jobcoach.FetchResult, error)
}

func (f *ContentFetcher) FetchContent(ctx context.Context, url string) (*jobcoach.FetchResult, error) {
	return f.FetchContentFn(ctx, url)
}
