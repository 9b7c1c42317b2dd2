// Package slog provides logging decorators for jobcoach services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobcoach/jobcoach"
)

// Ensure LoggingContentFetcher implements jobcoach.ContentFetcher.
var _ jobcoach.ContentFetcher = (*LoggingContentFetcher)(nil)

// LoggingContentFetcher wraps a ContentFetcher with operation logging.
type LoggingContentFetcher struct {
	next   jobcoach.ContentFetcher
	logger *slog.Logger
}

// NewLoggingContentFetcher creates a new LoggingContentFetcher.
func NewLoggingContentFetcher(next jobcoach.ContentFetcher, logger *slog.Logger) *LoggingContentFetcher {
	return &LoggingContentFetcher{next: next, logger: logger}
}

// FetchContent delegates to the wrapped fetcher and logs the operation.
func (f *LoggingContentFetcher) FetchContent(ctx context.Context, url string) (result *jobcoach.FetchResult, err error) {
	defer func(begin time.Time) {
		source, chars := "", 0
		if result != nil {
			source = result.Source
			chars = len(result.Text)
		}
		f.logger.Info("content fetch",
			"url", url,
			"source", source,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchContent(ctx, url)
}

// Ensure LoggingFetcher implements jobcoach.Fetcher.
var _ jobcoach.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   jobcoach.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next jobcoach.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("page fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
