package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jobcoach/jobcoach"
	main "github.com/jobcoach/jobcoach/cmd/jobcoach"
	"github.com/jobcoach/jobcoach/ingest"
	"github.com/jobcoach/jobcoach/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("imports discovered postings and prints summary", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, _ *jobcoach.URLFilter) ([]string, error) {
				assert.Equal(t, "https://acme.com/careers", baseURL)
				return []string{
					"https://acme.com/jobs/1",
					"https://acme.com/jobs/2",
				}, nil
			},
		}

		parser := &mock.PostingParser{
			ParsePostingFn: func(_ context.Context, url string) (*jobcoach.JobPosting, error) {
				return &jobcoach.JobPosting{
					SourceURL:   url,
					Title:       "Backend Engineer",
					Description: "Description for " + url,
				}, nil
			},
		}

		var created []*jobcoach.JobPosting
		postings := &mock.PostingService{
			FindPostingsFn: func(_ context.Context, _ jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
				return nil, nil
			},
			CreatePostingFn: func(_ context.Context, p *jobcoach.JobPosting) error {
				p.ID = "id-" + p.SourceURL
				created = append(created, p)
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Importer: &ingest.Importer{
				Discoverer:  &ingest.Discoverer{Sitemaps: sitemaps},
				Parser:      parser,
				Postings:    postings,
				Concurrency: 1,
			},
		}

		cmd := &main.ImportCmd{URL: "https://acme.com/careers"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Len(t, created, 2)
		assert.Contains(t, stdout.String(), "Found 2 posting URLs")
		assert.Contains(t, stdout.String(), "Imported 2 postings (0 skipped, 0 failed)")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints per-URL failures to stderr", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *jobcoach.URLFilter) ([]string, error) {
				return []string{"https://acme.com/jobs/broken"}, nil
			},
		}

		parser := &mock.PostingParser{
			ParsePostingFn: func(_ context.Context, _ string) (*jobcoach.JobPosting, error) {
				return nil, jobcoach.Errorf(jobcoach.EINVALID, "posting title required")
			},
		}

		postings := &mock.PostingService{
			FindPostingsFn: func(_ context.Context, _ jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Importer: &ingest.Importer{
				Discoverer:  &ingest.Discoverer{Sitemaps: sitemaps},
				Parser:      parser,
				Postings:    postings,
				Concurrency: 1,
			},
		}

		cmd := &main.ImportCmd{URL: "https://acme.com/careers"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip https://acme.com/jobs/broken")
		assert.Contains(t, stdout.String(), "(0 skipped, 1 failed)")
	})

	t.Run("rejects invalid filter regex before fetching", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *jobcoach.URLFilter) ([]string, error) {
				t.Fatal("discovery should not run with an invalid filter")
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Importer: &ingest.Importer{
				Discoverer: &ingest.Discoverer{Sitemaps: sitemaps},
			},
		}

		cmd := &main.ImportCmd{URL: "https://acme.com/careers", Filter: []string{"[invalid"}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid filter pattern")
		assert.Empty(t, stdout.String())
	})

	t.Run("returns error when discovery fails", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *jobcoach.URLFilter) ([]string, error) {
				return nil, jobcoach.Errorf(jobcoach.EUNAVAILABLE, "sitemap fetch failed")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Importer: &ingest.Importer{
				Discoverer: &ingest.Discoverer{Sitemaps: sitemaps},
			},
		}

		cmd := &main.ImportCmd{URL: "https://acme.com/careers"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
