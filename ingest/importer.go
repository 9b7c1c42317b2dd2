package ingest

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/jobcoach/jobcoach"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of postings parsed at once.
const DefaultConcurrency = 4

// Importer runs the batch import pipeline: discovered URL → rate limit →
// retry-wrapped posting parse → duplicate skip → persisted posting.
// The parser must not persist postings itself; the Importer owns storage so
// it can deduplicate before writing.
type Importer struct {
	Discoverer  *Discoverer
	Parser      jobcoach.PostingParser
	Postings    jobcoach.PostingService
	RateLimiter jobcoach.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of an import operation.
type Result struct {
	Imported int
	Skipped  int
	Failed   int
}

// ProgressEvent reports progress during an import operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressImported
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// importOutcome classifies what happened to a single URL.
type importOutcome int

const (
	outcomeImported importOutcome = iota
	outcomeSkipped
	outcomeFailed
)

type importResult struct {
	url     string
	outcome importOutcome
	err     error
}

// ImportSite discovers posting URLs for a careers site and imports each one.
// The progress callback, if provided, receives events as importing proceeds.
func (im *Importer) ImportSite(ctx context.Context, careersURL string, filter *jobcoach.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := im.Discoverer.Discover(ctx, careersURL, filter)
	if err != nil {
		return nil, err
	}

	return im.ImportURLs(ctx, urls, progress)
}

// ImportURLs imports the given posting URLs with bounded concurrency.
// Individual failures are counted, not fatal; only discovery-level errors
// abort the whole import.
func (im *Importer) ImportURLs(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	if total == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished})
		}
		return &Result{}, nil
	}

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan importResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range urls {
			u := u
			g.Go(func() error {
				resultCh <- im.importURL(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	var completed atomic.Int64
	for r := range resultCh {
		completed.Add(1)
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       r.url,
			Error:     r.err,
		}
		switch r.outcome {
		case outcomeImported:
			result.Imported++
			event.Type = ProgressImported
		case outcomeSkipped:
			result.Skipped++
			event.Type = ProgressSkipped
		case outcomeFailed:
			result.Failed++
			event.Type = ProgressFailed
		}
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// importURL processes one posting URL end to end.
func (im *Importer) importURL(ctx context.Context, postingURL string) importResult {
	r := importResult{url: postingURL}

	if im.RateLimiter != nil {
		parsed, err := url.Parse(postingURL)
		if err != nil {
			r.outcome = outcomeFailed
			r.err = jobcoach.Errorf(jobcoach.EINVALID, "invalid posting URL: %v", err)
			return r
		}
		if err := im.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			r.outcome = outcomeFailed
			r.err = err
			return r
		}
	}

	// Skip URLs imported on a previous run.
	if existing, err := im.Postings.FindPostings(ctx, jobcoach.PostingFilter{SourceURL: &postingURL}); err == nil && len(existing) > 0 {
		r.outcome = outcomeSkipped
		return r
	}

	posting, err := im.parseWithRetry(ctx, postingURL)
	if err != nil {
		r.outcome = outcomeFailed
		r.err = err
		return r
	}

	// The same posting is often reachable under several URLs; skip
	// content-identical duplicates.
	hash := jobcoach.HashContent(posting.Description)
	if existing, err := im.Postings.FindPostings(ctx, jobcoach.PostingFilter{ContentHash: &hash}); err == nil && len(existing) > 0 {
		r.outcome = outcomeSkipped
		return r
	}

	if err := im.Postings.CreatePosting(ctx, posting); err != nil {
		r.outcome = outcomeFailed
		r.err = err
		return r
	}

	r.outcome = outcomeImported
	return r
}

// parseWithRetry wraps the posting parser in the shared backoff policy.
func (im *Importer) parseWithRetry(ctx context.Context, postingURL string) (*jobcoach.JobPosting, error) {
	delays := im.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var posting *jobcoach.JobPosting
	parseFn := func(ctx context.Context, u string) (string, error) {
		p, err := im.Parser.ParsePosting(ctx, u)
		if err != nil {
			return "", err
		}
		posting = p
		return "", nil
	}
	if _, err := FetchWithRetryDelays(ctx, postingURL, parseFn, nil, delays); err != nil {
		return nil, err
	}

	return posting, nil
}
