package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/parse"
)

const tailorPrompt = `Rewrite the candidate's resume to best match the job posting below. Keep it truthful: reorder, reword, and emphasize, but never invent experience.

Respond with a single JSON object and nothing else. Use exactly these keys:
- "tailored_resume": the rewritten resume as markdown (string)
- "match_score": how well the candidate matches the role, as "N/100" (string)
- "missing_skills": skills the posting asks for that the resume lacks (array of strings)
- "summary": one paragraph explaining the changes made (string)

Job posting:
%s

Candidate resume:
%s`

// TailorResult is a resume rewritten against a specific posting.
type TailorResult struct {
	Resume        string             `json:"resume"`
	MatchScore    *parse.RatingValue `json:"matchScore,omitempty"`
	MissingSkills []string           `json:"missingSkills"`
	Summary       string             `json:"summary"`
}

// TailorAgent rewrites resumes to match stored postings.
type TailorAgent struct {
	Generator jobcoach.Generator
	Postings  jobcoach.PostingService

	// Artifacts, if set, persists the tailored resume.
	Artifacts jobcoach.ArtifactService

	// Model is recorded on persisted artifacts.
	Model string

	Logger *slog.Logger
}

// tailorPayload is the JSON shape the model is asked for.
type tailorPayload struct {
	TailoredResume string   `json:"tailored_resume"`
	MatchScore     string   `json:"match_score"`
	MissingSkills  []string `json:"missing_skills"`
	Summary        string   `json:"summary"`
}

// Tailor rewrites the resume against the posting.
func (a *TailorAgent) Tailor(ctx context.Context, postingID, resume string) (*TailorResult, error) {
	if resume == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "resume required")
	}

	posting, err := a.Postings.FindPostingByID(ctx, postingID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(tailorPrompt, jobcoach.FormatPosting(posting), resume)
	response, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload := parse.JSON[tailorPayload](response)
	if !payload.Success || payload.Data.TailoredResume == "" {
		logParseFailure(a.Logger, "resume tailoring", payload.Err)
		return nil, jobcoach.Errorf(jobcoach.EINTERNAL, "could not understand the model response")
	}

	result := &TailorResult{
		Resume:        payload.Data.TailoredResume,
		MatchScore:    parse.Rating(payload.Data.MatchScore),
		MissingSkills: payload.Data.MissingSkills,
		Summary:       payload.Data.Summary,
	}

	if a.Artifacts != nil {
		artifact := &jobcoach.Artifact{
			PostingID: posting.ID,
			Kind:      jobcoach.ArtifactTailoredResume,
			Content:   result.Resume,
			Model:     a.Model,
		}
		if err := a.Artifacts.CreateArtifact(ctx, artifact); err != nil {
			return nil, err
		}
	}

	return result, nil
}
