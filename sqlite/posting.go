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
var _ jobcoach.PostingService = (*PostingService)(nil)

// PostingService implements jobcoach.PostingService using SQLite.
type PostingService struct {
	db *DB
}

// NewPostingService creates a new PostingService.
func NewPostingService(db *DB) *PostingService {
	return &PostingService{db: db}
}

const postingColumns = "id, source_url, company, title, location, salary, employment_type, description, skills, requirements, content_hash, fetched_at, created_at, updated_at"

// CreatePosting creates a new posting.
func (s *PostingService) CreatePosting(ctx context.Context, posting *jobcoach.JobPosting) error {
	if err := posting.Validate(); err != nil {
		return err
	}

	posting.ID = uuid.New().String()
	posting.ContentHash = jobcoach.HashContent(posting.Description)
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	if posting.FetchedAt.IsZero() {
		posting.FetchedAt = now
	}

	skills, err := marshalStrings(posting.Skills)
	if err != nil {
		return err
	}
	requirements, err := marshalStrings(posting.Requirements)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO postings (`+postingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, posting.ID, posting.SourceURL, posting.Company, posting.Title, posting.Location,
		posting.Salary, posting.EmploymentType, posting.Description, skills, requirements,
		posting.ContentHash, posting.FetchedAt.Format(time.RFC3339),
		posting.CreatedAt.Format(time.RFC3339), posting.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindPostingByID retrieves a posting by ID.
func (s *PostingService) FindPostingByID(ctx context.Context, id string) (*jobcoach.JobPosting, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+postingColumns+`
		FROM postings
		WHERE id = ?
	`, id)

	posting, err := scanPosting(row.Scan)
	if err == sql.ErrNoRows {
		return nil, jobcoach.Errorf(jobcoach.ENOTFOUND, "posting not found")
	}
	if err != nil {
		return nil, err
	}

	return posting, nil
}

// FindPostings retrieves postings matching the filter.
func (s *PostingService) FindPostings(ctx context.Context, filter jobcoach.PostingFilter) ([]*jobcoach.JobPosting, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + postingColumns + " FROM postings WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Company != nil {
		query.WriteString(" AND company = ?")
		args = append(args, *filter.Company)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []*jobcoach.JobPosting
	for rows.Next() {
		posting, err := scanPosting(rows.Scan)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}

	return postings, rows.Err()
}

// UpdatePosting updates an existing posting.
func (s *PostingService) UpdatePosting(ctx context.Context, id string, upd jobcoach.PostingUpdate) (*jobcoach.JobPosting, error) {
	posting, err := s.FindPostingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Company != nil {
		posting.Company = *upd.Company
	}
	if upd.Title != nil {
		posting.Title = *upd.Title
	}
	if upd.Location != nil {
		posting.Location = *upd.Location
	}
	if upd.Salary != nil {
		posting.Salary = *upd.Salary
	}
	if upd.EmploymentType != nil {
		posting.EmploymentType = *upd.EmploymentType
	}
	if upd.Description != nil {
		posting.Description = *upd.Description
		posting.ContentHash = jobcoach.HashContent(posting.Description)
	}
	if upd.Skills != nil {
		posting.Skills = *upd.Skills
	}
	if upd.Requirements != nil {
		posting.Requirements = *upd.Requirements
	}
	posting.UpdatedAt = time.Now().UTC()

	if err := posting.Validate(); err != nil {
		return nil, err
	}

	skills, err := marshalStrings(posting.Skills)
	if err != nil {
		return nil, err
	}
	requirements, err := marshalStrings(posting.Requirements)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE postings
		SET company = ?, title = ?, location = ?, salary = ?, employment_type = ?,
			description = ?, skills = ?, requirements = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, posting.Company, posting.Title, posting.Location, posting.Salary, posting.EmploymentType,
		posting.Description, skills, requirements, posting.ContentHash,
		posting.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return posting, nil
}

// DeletePosting permanently removes a posting. Associated artifacts are
// removed by the foreign key cascade.
func (s *PostingService) DeletePosting(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM postings WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return jobcoach.Errorf(jobcoach.ENOTFOUND, "posting not found")
	}

	return nil
}

// scanPosting reads a posting row using the given scan function.
func scanPosting(scan func(dest ...any) error) (*jobcoach.JobPosting, error) {
	var posting jobcoach.JobPosting
	var skills, requirements, fetchedAt, createdAt, updatedAt string

	if err := scan(&posting.ID, &posting.SourceURL, &posting.Company, &posting.Title,
		&posting.Location, &posting.Salary, &posting.EmploymentType, &posting.Description,
		&skills, &requirements, &posting.ContentHash, &fetchedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if posting.Skills, err = unmarshalStrings(skills, "skills"); err != nil {
		return nil, err
	}
	if posting.Requirements, err = unmarshalStrings(requirements, "requirements"); err != nil {
		return nil, err
	}
	if posting.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	if posting.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if posting.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &posting, nil
}
