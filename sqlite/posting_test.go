package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPosting(t *testing.T, db *sqlite.DB) *jobcoach.JobPosting {
	t.Helper()
	svc := sqlite.NewPostingService(db)
	posting := &jobcoach.JobPosting{
		SourceURL:   "https://acme.example/jobs/backend",
		Company:     "Acme",
		Title:       "Backend Engineer",
		Description: "We are looking for a backend engineer.",
	}
	require.NoError(t, svc.CreatePosting(context.Background(), posting))
	return posting
}

func TestPostingService_CreatePosting(t *testing.T) {
	t.Parallel()

	t.Run("creates posting with generated ID, hash and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)
		ctx := context.Background()

		posting := &jobcoach.JobPosting{
			SourceURL:    "https://acme.example/jobs/backend",
			Company:      "Acme",
			Title:        "Backend Engineer",
			Description:  "We build things.",
			Skills:       []string{"Go", "SQL"},
			Requirements: []string{"5 years experience"},
		}

		err := svc.CreatePosting(ctx, posting)
		require.NoError(t, err)

		assert.NotEmpty(t, posting.ID, "ID should be generated")
		assert.NotEmpty(t, posting.ContentHash, "ContentHash should be generated")
		assert.False(t, posting.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, posting.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns error for invalid posting", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)
		ctx := context.Background()

		posting := &jobcoach.JobPosting{} // missing required fields

		err := svc.CreatePosting(ctx, posting)
		require.Error(t, err)
		assert.Equal(t, jobcoach.EINVALID, jobcoach.ErrorCode(err))
	})

	t.Run("same description yields same content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)
		ctx := context.Background()

		a := &jobcoach.JobPosting{SourceURL: "https://a.example/1", Title: "A", Description: "identical"}
		b := &jobcoach.JobPosting{SourceURL: "https://b.example/2", Title: "B", Description: "identical"}
		require.NoError(t, svc.CreatePosting(ctx, a))
		require.NoError(t, svc.CreatePosting(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
	})
}

func TestPostingService_FindPostingByID(t *testing.T) {
	t.Parallel()

	t.Run("returns posting when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)
		ctx := context.Background()

		posting := &jobcoach.JobPosting{
			SourceURL:      "https://acme.example/jobs/backend",
			Company:        "Acme",
			Title:          "Backend Engineer",
			Location:       "Remote",
			Salary:         "$150k-$180k",
			EmploymentType: "full-time",
			Description:    "We are looking for a backend engineer.",
			Skills:         []string{"Go", "PostgreSQL"},
			Requirements:   []string{"5 years experience", "CS degree or equivalent"},
		}
		require.NoError(t, svc.CreatePosting(ctx, posting))

		found, err := svc.FindPostingByID(ctx, posting.ID)
		require.NoError(t, err)
		assert.Equal(t, posting.ID, found.ID)
		assert.Equal(t, posting.SourceURL, found.SourceURL)
		assert.Equal(t, posting.Company, found.Company)
		assert.Equal(t, posting.Title, found.Title)
		assert.Equal(t, posting.Location, found.Location)
		assert.Equal(t, posting.Salary, found.Salary)
		assert.Equal(t, posting.EmploymentType, found.EmploymentType)
		assert.Equal(t, posting.Description, found.Description)
		assert.Equal(t, posting.Skills, found.Skills)
		assert.Equal(t, posting.Requirements, found.Requirements)
		assert.Equal(t, posting.ContentHash, found.ContentHash)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)

		_, err := svc.FindPostingByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, jobcoach.ENOTFOUND, jobcoach.ErrorCode(err))
	})
}

func TestPostingService_FindPostings(t *testing.T) {
	t.Parallel()

	t.Run("filters by company", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)
		ctx := context.Background()

		for i, company := range []string{"Acme", "Globex", "Acme"} {
			posting := &jobcoach.JobPosting{
				SourceURL:   fmt.Sprintf("https://%s.example/jobs/%d", company, i),
				Company:     company,
				Title:       "Engineer",
				Description: fmt.Sprintf("posting %d", i),
			}
			require.NoError(t, svc.CreatePosting(ctx, posting))
		}

		company := "Acme"
		postings, err := svc.FindPostings(ctx, jobcoach.PostingFilter{Company: &company})
		require.NoError(t, err)
		require.Len(t, postings, 2)
		for _, p := range postings {
			assert.Equal(t, "Acme", p.Company)
		}
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)
		ctx := context.Background()

		posting := createTestPosting(t, db)
		other := &jobcoach.JobPosting{
			SourceURL:   "https://acme.example/jobs/frontend",
			Title:       "Frontend Engineer",
			Description: "A different posting entirely.",
		}
		require.NoError(t, svc.CreatePosting(ctx, other))

		postings, err := svc.FindPostings(ctx, jobcoach.PostingFilter{ContentHash: &posting.ContentHash})
		require.NoError(t, err)
		require.Len(t, postings, 1)
		assert.Equal(t, posting.ID, postings[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			posting := &jobcoach.JobPosting{
				SourceURL:   fmt.Sprintf("https://acme.example/jobs/%d", i),
				Title:       "Engineer",
				Description: fmt.Sprintf("posting %d", i),
			}
			require.NoError(t, svc.CreatePosting(ctx, posting))
		}

		postings, err := svc.FindPostings(ctx, jobcoach.PostingFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, postings, 2)
	})
}

func TestPostingService_UpdatePosting(t *testing.T) {
	t.Parallel()

	t.Run("updates fields and recomputes hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)
		ctx := context.Background()

		posting := createTestPosting(t, db)
		oldHash := posting.ContentHash

		location := "Berlin"
		description := "A completely rewritten description."
		updated, err := svc.UpdatePosting(ctx, posting.ID, jobcoach.PostingUpdate{
			Location:    &location,
			Description: &description,
		})
		require.NoError(t, err)
		assert.Equal(t, "Berlin", updated.Location)
		assert.Equal(t, description, updated.Description)
		assert.NotEqual(t, oldHash, updated.ContentHash)

		found, err := svc.FindPostingByID(ctx, posting.ID)
		require.NoError(t, err)
		assert.Equal(t, "Berlin", found.Location)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)

		title := "New Title"
		_, err := svc.UpdatePosting(context.Background(), "no-such-id", jobcoach.PostingUpdate{Title: &title})
		require.Error(t, err)
		assert.Equal(t, jobcoach.ENOTFOUND, jobcoach.ErrorCode(err))
	})

	t.Run("rejects update that empties required field", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)

		posting := createTestPosting(t, db)

		empty := ""
		_, err := svc.UpdatePosting(context.Background(), posting.ID, jobcoach.PostingUpdate{Title: &empty})
		require.Error(t, err)
		assert.Equal(t, jobcoach.EINVALID, jobcoach.ErrorCode(err))
	})
}

func TestPostingService_DeletePosting(t *testing.T) {
	t.Parallel()

	t.Run("deletes posting and cascades to artifacts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		postings := sqlite.NewPostingService(db)
		artifacts := sqlite.NewArtifactService(db)
		ctx := context.Background()

		posting := createTestPosting(t, db)
		artifact := &jobcoach.Artifact{
			PostingID: posting.ID,
			Kind:      jobcoach.ArtifactCoverLetter,
			Content:   "Dear hiring manager...",
		}
		require.NoError(t, artifacts.CreateArtifact(ctx, artifact))

		require.NoError(t, postings.DeletePosting(ctx, posting.ID))

		_, err := postings.FindPostingByID(ctx, posting.ID)
		assert.Equal(t, jobcoach.ENOTFOUND, jobcoach.ErrorCode(err))

		_, err = artifacts.FindArtifactByID(ctx, artifact.ID)
		assert.Equal(t, jobcoach.ENOTFOUND, jobcoach.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPostingService(db)

		err := svc.DeletePosting(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, jobcoach.ENOTFOUND, jobcoach.ErrorCode(err))
	})
}
