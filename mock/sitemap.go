package mock

import (
	"context"

	"github.com/jobcoach/jobcoach"
)

var _ jobcoach.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of jobcoach.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *jobcoach.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *jobcoach.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ jobcoach.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of jobcoach.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
