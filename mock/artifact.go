package mock

import (
	"context"

	"github.com/jobcoach/jobcoach"
)

var _ jobcoach.ArtifactService = (*ArtifactService)(nil)

// ArtifactService is a mock implementation of jobcoach.ArtifactService.
type ArtifactService struct {
	CreateArtifactFn           func(ctx context.Context, artifact *jobcoach.Artifact) error
	FindArtifactByIDFn         func(ctx context.Context, id string) (*jobcoach.Artifact, error)
	FindArtifactsFn            func(ctx context.Context, filter jobcoach.ArtifactFilter) ([]*jobcoach.Artifact, error)
	DeleteArtifactFn           func(ctx context.Context, id string) error
	DeleteArtifactsByPostingFn func(ctx context.Context, postingID string) error
}

func (s *ArtifactService) CreateArtifact(ctx context.Context, artifact *jobcoach.Artifact) error {
	return s.CreateArtifactFn(ctx, artifact)
}

func (s *ArtifactService) FindArtifactByID(ctx context.Context, id string) (*jobcoach.Artifact, error) {
	return s.FindArtifactByIDFn(ctx, id)
}

func (s *ArtifactService) FindArtifacts(ctx context.Context, filter jobcoach.ArtifactFilter) ([]*jobcoach.Artifact, error) {
	return s.FindArtifactsFn(ctx, filter)
}

func (s *ArtifactService) DeleteArtifact(ctx context.Context, id string) error {
	return s.DeleteArtifactFn(ctx, id)
}

func (s *ArtifactService) DeleteArtifactsByPosting(ctx context.Context, postingID string) error {
	return s.DeleteArtifactsByPostingFn(ctx, postingID)
}
