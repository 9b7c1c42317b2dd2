package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/parse"
)

const coverLetterPrompt = `Write a cover letter for the job posting below, tailored to the candidate's resume.

Structure your response with exactly two sections:

LETTER:
The full cover letter, ready to send.

TALKING POINTS:
A numbered list of the strongest points connecting the candidate to this role.

Job posting:
%s

Candidate resume:
%s`

var coverLetterHeaders = []string{"LETTER", "TALKING POINTS"}

// CoverLetter is a generated cover letter with supporting talking points.
type CoverLetter struct {
	Letter        string   `json:"letter"`
	TalkingPoints []string `json:"talkingPoints"`
}

// CoverLetterAgent generates cover letters for stored postings.
type CoverLetterAgent struct {
	Generator jobcoach.Generator
	Postings  jobcoach.PostingService

	// Artifacts, if set, persists the generated letter.
	Artifacts jobcoach.ArtifactService

	// Model is recorded on persisted artifacts.
	Model string

	Logger *slog.Logger
}

// Generate writes a cover letter for the posting using the given resume.
func (a *CoverLetterAgent) Generate(ctx context.Context, postingID, resume string) (*CoverLetter, error) {
	if resume == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "resume required")
	}

	posting, err := a.Postings.FindPostingByID(ctx, postingID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(coverLetterPrompt, jobcoach.FormatPosting(posting), resume)
	response, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	sections := parse.Sections(response, coverLetterHeaders)
	letter := sections["LETTER"]
	if letter == "" {
		// Unsectioned responses still usually contain only the letter.
		letter = strings.TrimSpace(response)
	}
	if letter == "" {
		if a.Logger != nil {
			a.Logger.Warn("cover letter generation returned no content", "posting_id", postingID)
		}
		return nil, jobcoach.Errorf(jobcoach.EINTERNAL, "could not understand the model response")
	}

	result := &CoverLetter{
		Letter:        letter,
		TalkingPoints: parse.ListItems(sections["TALKING POINTS"]),
	}

	if a.Artifacts != nil {
		artifact := &jobcoach.Artifact{
			PostingID: posting.ID,
			Kind:      jobcoach.ArtifactCoverLetter,
			Content:   formatCoverLetter(result),
			Model:     a.Model,
		}
		if err := a.Artifacts.CreateArtifact(ctx, artifact); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func formatCoverLetter(letter *CoverLetter) string {
	var b strings.Builder
	b.WriteString(letter.Letter)
	if len(letter.TalkingPoints) > 0 {
		b.WriteString("\n\n## Talking points\n\n")
		for _, p := range letter.TalkingPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	return b.String()
}
