package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobcoach/jobcoach"
)

// Compile-time interface verification.
var _ jobcoach.ArtifactService = (*ArtifactService)(nil)

// ArtifactService implements jobcoach.ArtifactService using SQLite.
type ArtifactService struct {
	db *DB
}

// NewArtifactService creates a new ArtifactService.
func NewArtifactService(db *DB) *ArtifactService {
	return &ArtifactService{db: db}
}

// CreateArtifact creates a new artifact.
func (s *ArtifactService) CreateArtifact(ctx context.Context, artifact *jobcoach.Artifact) error {
	if err := artifact.Validate(); err != nil {
		return err
	}

	artifact.ID = uuid.New().String()
	artifact.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO artifacts (id, posting_id, kind, content, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, artifact.ID, artifact.PostingID, artifact.Kind, artifact.Content, artifact.Model,
		artifact.CreatedAt.Format(time.RFC3339))

	return err
}

// FindArtifactByID retrieves an artifact by ID.
func (s *ArtifactService) FindArtifactByID(ctx context.Context, id string) (*jobcoach.Artifact, error) {
	var artifact jobcoach.Artifact
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, posting_id, kind, content, model, created_at
		FROM artifacts
		WHERE id = ?
	`, id).Scan(&artifact.ID, &artifact.PostingID, &artifact.Kind, &artifact.Content,
		&artifact.Model, &createdAt)

	if err == sql.ErrNoRows {
		return nil, jobcoach.Errorf(jobcoach.ENOTFOUND, "artifact not found")
	}
	if err != nil {
		return nil, err
	}

	if artifact.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &artifact, nil
}

// FindArtifacts retrieves artifacts matching the filter.
func (s *ArtifactService) FindArtifacts(ctx context.Context, filter jobcoach.ArtifactFilter) ([]*jobcoach.Artifact, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, posting_id, kind, content, model, created_at FROM artifacts WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.PostingID != nil {
		query.WriteString(" AND posting_id = ?")
		args = append(args, *filter.PostingID)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artifacts []*jobcoach.Artifact
	for rows.Next() {
		var artifact jobcoach.Artifact
		var createdAt string

		if err := rows.Scan(&artifact.ID, &artifact.PostingID, &artifact.Kind,
			&artifact.Content, &artifact.Model, &createdAt); err != nil {
			return nil, err
		}

		if artifact.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		artifacts = append(artifacts, &artifact)
	}

	return artifacts, rows.Err()
}

// DeleteArtifact permanently removes an artifact.
func (s *ArtifactService) DeleteArtifact(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM artifacts WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return jobcoach.Errorf(jobcoach.ENOTFOUND, "artifact not found")
	}

	return nil
}

// DeleteArtifactsByPosting removes all artifacts for a posting.
func (s *ArtifactService) DeleteArtifactsByPosting(ctx context.Context, postingID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM artifacts WHERE posting_id = ?", postingID)
	return err
}
