// Package agent implements the coaching agents that sit between the domain
// and the LLM. Each agent builds a prompt from domain data, sends it through
// a jobcoach.Generator, and recovers structure from the free-text response
// with the parse package. Model output is never trusted: every agent guards
// the parsed shape before handing it to the rest of the system.
package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/parse"
)

// postingPrompt instructs the model to return a strict JSON object. The
// schema keys mirror the JobPosting fields; null marks absent information so
// the guard below can distinguish "missing" from "empty".
const postingPrompt = `Extract the job posting details from the page content below.

Respond with a single JSON object and nothing else. Use exactly these keys:
- "company": the hiring company name (string or null)
- "title": the job title (string or null)
- "location": the job location (string or null)
- "salary": the salary or salary range as written (string or null)
- "employment_type": e.g. "full-time", "contract" (string or null)
- "description": a concise summary of the role and responsibilities (string or null)
- "skills": key skills mentioned (array of strings, empty if none)
- "requirements": stated requirements and qualifications (array of strings, empty if none)

Use null for any detail the page does not state. Do not invent information.

Page content:
%s`

// requiredPostingFields must be present and non-null in the model response.
var requiredPostingFields = []string{"title", "description"}

// Ensure PostingAgent implements jobcoach.PostingParser at compile time.
var _ jobcoach.PostingParser = (*PostingAgent)(nil)

// PostingAgent turns a posting URL into a structured JobPosting by fetching
// the page and asking the model to extract its details.
type PostingAgent struct {
	Fetcher   jobcoach.ContentFetcher
	Generator jobcoach.Generator

	// Postings, if set, persists the parsed posting.
	Postings jobcoach.PostingService

	// Logger, if set, receives parse failure diagnostics.
	Logger *slog.Logger
}

// postingPayload is the JSON shape the model is asked for.
type postingPayload struct {
	Company        *string  `json:"company"`
	Title          *string  `json:"title"`
	Location       *string  `json:"location"`
	Salary         *string  `json:"salary"`
	EmploymentType *string  `json:"employment_type"`
	Description    *string  `json:"description"`
	Skills         []string `json:"skills"`
	Requirements   []string `json:"requirements"`
}

// ParsePosting fetches url and extracts a structured posting.
func (a *PostingAgent) ParsePosting(ctx context.Context, url string) (*jobcoach.JobPosting, error) {
	if url == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "posting URL required")
	}

	content, err := a.Fetcher.FetchContent(ctx, url)
	if err != nil {
		return nil, err
	}

	response, err := a.Generator.Generate(ctx, fmt.Sprintf(postingPrompt, content.Text))
	if err != nil {
		return nil, err
	}

	// Parse into a raw map first so the required-field guard can tell
	// explicit null from a key the model dropped entirely.
	raw := parse.JSON[map[string]any](response)
	if !raw.Success {
		logParseFailure(a.Logger, "posting extraction", raw.Err)
		return nil, jobcoach.Errorf(jobcoach.EINTERNAL, "could not understand the model response")
	}
	if missing := parse.MissingFields(raw.Data, requiredPostingFields); len(missing) > 0 {
		if a.Logger != nil {
			a.Logger.Warn("posting extraction incomplete", "missing", missing)
		}
		return nil, jobcoach.Errorf(jobcoach.EINTERNAL, "could not understand the model response")
	}

	payload := parse.JSON[postingPayload](response)
	if !payload.Success {
		logParseFailure(a.Logger, "posting extraction", payload.Err)
		return nil, jobcoach.Errorf(jobcoach.EINTERNAL, "could not understand the model response")
	}

	posting := &jobcoach.JobPosting{
		SourceURL:      url,
		Company:        deref(payload.Data.Company),
		Title:          deref(payload.Data.Title),
		Location:       deref(payload.Data.Location),
		Salary:         deref(payload.Data.Salary),
		EmploymentType: deref(payload.Data.EmploymentType),
		Description:    deref(payload.Data.Description),
		Skills:         payload.Data.Skills,
		Requirements:   payload.Data.Requirements,
	}
	if posting.Title == "" {
		posting.Title = content.Title
	}

	if err := posting.Validate(); err != nil {
		return nil, err
	}

	if a.Postings != nil {
		if err := a.Postings.CreatePosting(ctx, posting); err != nil {
			return nil, err
		}
	}

	return posting, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// logParseFailure logs a parse error with its diagnostic snippets. The
// snippets never travel further than the log.
func logParseFailure(logger *slog.Logger, op string, err *parse.Error) {
	if logger == nil || err == nil {
		return
	}
	logger.Warn(op+" failed",
		"code", err.Code,
		"cause", err.Cause,
		"head", err.Head,
		"tail", err.Tail,
	)
}
