package mock

import (
	"context"

	"github.com/jobcoach/jobcoach"
)

var _ jobcoach.PostingService = (*PostingService)(nil)

// PostingService is a mock implementation of jobcoach.PostingService.
type PostingService struct {
	CreatePostingFn   func(ctx context.Context, posting *jobcoach.JobPosting) error
	FindPostingByIDFn func(ctx context.Context, id string) (*jobcoach.JobPosting, error)
	FindPostingsFn    func(ctx context.Context, filter jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error)
	UpdatePostingFn   func(ctx context.Context, id string, upd jobcoach.PostingUpdate) (*jobcoach.JobPosting, error)
	DeletePostingFn   func(ctx context.Context, id string) error
}

func (s *PostingService) CreatePosting(ctx context.Context, posting *jobcoach.JobPosting) error {
	return s.CreatePostingFn(ctx, posting)
}

func (s *PostingService) FindPostingByID(ctx context.Context, id string) (*jobcoach.JobPosting, error) {
	return s.FindPostingByIDFn(ctx, id)
}

func (s *PostingService) FindPostings(ctx context.Context, filter jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
	return s.FindPostingsFn(ctx, filter)
}

func (s *PostingService) UpdatePosting(ctx context.Context, id string, upd jobcoach.PostingUpdate) (*jobcoach.JobPosting, error) {
	return s.UpdatePostingFn(ctx, id, upd)
}

func (s *PostingService) DeletePosting(ctx context.Context, id string) error {
	return s.DeletePostingFn(ctx, id)
}

var _ jobcoach.PostingParser = (*PostingParser)(nil)

// PostingParser is a mock implementation of jobcoach.PostingParser.
type PostingParser struct {
	ParsePostingFn func(ctx context.Context, url string) (*jobcoach.JobPosting, error)
}

func (p *PostingParser) ParsePosting(ctx context.Context, url string) (*jobcoach.JobPosting, error) {
	return p.ParsePostingFn(ctx, url)
}
