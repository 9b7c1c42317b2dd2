package jobcoach

import (
	"context"
	"time"
)

// JobPosting represents a job posting parsed from a careers page.
type JobPosting struct {
	ID             string    `json:"id"`
	SourceURL      string    `json:"sourceUrl"`
	Company        string    `json:"company"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	Salary         string    `json:"salary"`
	EmploymentType string    `json:"employmentType"`
	Description    string    `json:"description"`
	Skills         []string  `json:"skills"`
	Requirements   []string  `json:"requirements"`
	ContentHash    string    `json:"contentHash"`
	FetchedAt      time.Time `json:"fetchedAt"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Validate returns an error if the posting contains invalid fields.
func (p *JobPosting) Validate() error {
	if p.SourceURL == "" {
		return Errorf(EINVALID, "posting source URL required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "posting title required")
	}
	return nil
}

// PostingParser turns a posting URL into a structured JobPosting.
// Implementations fetch the page, prompt an LLM, and validate its output.
type PostingParser interface {
	// ParsePosting fetches url and extracts a structured posting.
	// Returns ETIMEOUT or EUNAVAILABLE for fetch failures and EINTERNAL
	// when the model response could not be understood.
	ParsePosting(ctx context.Context, url string) (*JobPosting, error)
}

// PostingService represents a service for managing job postings.
type PostingService interface {
	// CreatePosting creates a new posting.
	CreatePosting(ctx context.Context, posting *JobPosting) error

	// FindPostingByID retrieves a posting by ID.
	// Returns ENOTFOUND if posting does not exist.
	FindPostingByID(ctx context.Context, id string) (*JobPosting, error)

	// FindPostings retrieves postings matching the filter.
	FindPostings(ctx context.Context, filter PostingFilter) ([]*JobPosting, error)

	// UpdatePosting updates an existing posting.
	// Returns ENOTFOUND if posting does not exist.
	UpdatePosting(ctx context.Context, id string, upd PostingUpdate) (*JobPosting, error)

	// DeletePosting permanently removes a posting and all associated
	// artifacts. Returns ENOTFOUND if posting does not exist.
	DeletePosting(ctx context.Context, id string) error
}

// PostingFilter represents a filter for FindPostings.
type PostingFilter struct {
	ID          *string `json:"id"`
	Company     *string `json:"company"`
	SourceURL   *string `json:"sourceUrl"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PostingUpdate represents fields that can be updated on a posting.
type PostingUpdate struct {
	Company        *string   `json:"company"`
	Title          *string   `json:"title"`
	Location       *string   `json:"location"`
	Salary         *string   `json:"salary"`
	EmploymentType *string   `json:"employmentType"`
	Description    *string   `json:"description"`
	Skills         *[]string `json:"skills"`
	Requirements   *[]string `json:"requirements"`
}
