package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jobcoach/jobcoach"
	main "github.com/jobcoach/jobcoach/cmd/jobcoach"
	"github.com/jobcoach/jobcoach/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists postings with ID, company, title, and URL", func(t *testing.T) {
		t.Parallel()

		postings := &mock.PostingService{
			FindPostingsFn: func(_ context.Context, _ jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
				return []*jobcoach.JobPosting{
					{ID: "posting-1", Company: "Acme", Title: "Backend Engineer", SourceURL: "https://acme.com/jobs/1"},
					{ID: "posting-2", Company: "Globex", Title: "SRE", SourceURL: "https://globex.com/jobs/2"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Postings: postings,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "posting-1")
		assert.Contains(t, output, "posting-2")
		assert.Contains(t, output, "Acme")
		assert.Contains(t, output, "Backend Engineer")
		assert.Contains(t, output, "https://globex.com/jobs/2")
	})

	t.Run("passes company filter to the service", func(t *testing.T) {
		t.Parallel()

		var receivedFilter jobcoach.PostingFilter
		postings := &mock.PostingService{
			FindPostingsFn: func(_ context.Context, filter jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
				receivedFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Postings: postings,
		}

		cmd := &main.ListCmd{Company: "Acme"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, receivedFilter.Company)
		assert.Equal(t, "Acme", *receivedFilter.Company)
	})

	t.Run("shows placeholder for postings without a company", func(t *testing.T) {
		t.Parallel()

		postings := &mock.PostingService{
			FindPostingsFn: func(_ context.Context, _ jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
				return []*jobcoach.JobPosting{
					{ID: "posting-1", Title: "Backend Engineer", SourceURL: "https://acme.com/jobs/1"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Postings: postings,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "(unknown)")
	})

	t.Run("shows helpful message when no postings exist", func(t *testing.T) {
		t.Parallel()

		postings := &mock.PostingService{
			FindPostingsFn: func(_ context.Context, _ jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
				return []*jobcoach.JobPosting{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Postings: postings,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No postings")
	})

	t.Run("returns error when FindPostings fails", func(t *testing.T) {
		t.Parallel()

		postings := &mock.PostingService{
			FindPostingsFn: func(_ context.Context, _ jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
				return nil, jobcoach.Errorf(jobcoach.EINTERNAL, "database error")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Postings: postings,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}
