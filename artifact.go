package jobcoach

import (
	"context"
	"time"
)

// Artifact kinds produced by the coaching agents.
const (
	ArtifactCoverLetter        = "cover_letter"
	ArtifactTailoredResume     = "tailored_resume"
	ArtifactInterviewQuestions = "interview_questions"
	ArtifactInterviewFeedback  = "interview_feedback"
)

// Artifact represents generated coaching content attached to a posting.
type Artifact struct {
	ID        string    `json:"id"`
	PostingID string    `json:"postingId"`
	Kind      string    `json:"kind"`
	Content   string    `json:"content"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the artifact contains invalid fields.
func (a *Artifact) Validate() error {
	if a.PostingID == "" {
		return Errorf(EINVALID, "artifact posting ID required")
	}
	if a.Kind == "" {
		return Errorf(EINVALID, "artifact kind required")
	}
	if a.Content == "" {
		return Errorf(EINVALID, "artifact content required")
	}
	return nil
}

// ArtifactService represents a service for managing artifacts.
type ArtifactService interface {
	// CreateArtifact creates a new artifact.
	CreateArtifact(ctx context.Context, artifact *Artifact) error

	// FindArtifactByID retrieves an artifact by ID.
	// Returns ENOTFOUND if artifact does not exist.
	FindArtifactByID(ctx context.Context, id string) (*Artifact, error)

	// FindArtifacts retrieves artifacts matching the filter.
	FindArtifacts(ctx context.Context, filter ArtifactFilter) ([]*Artifact, error)

	// DeleteArtifact permanently removes an artifact.
	// Returns ENOTFOUND if artifact does not exist.
	DeleteArtifact(ctx context.Context, id string) error

	// DeleteArtifactsByPosting removes all artifacts for a posting.
	DeleteArtifactsByPosting(ctx context.Context, postingID string) error
}

// ArtifactFilter represents a filter for FindArtifacts.
type ArtifactFilter struct {
	ID        *string `json:"id"`
	PostingID *string `json:"postingId"`
	Kind      *string `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
