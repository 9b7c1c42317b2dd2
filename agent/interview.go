package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/parse"
)

// DefaultQuestionCount is the number of interview questions generated when
// the caller does not specify one.
const DefaultQuestionCount = 10

const questionsPrompt = `Generate %d interview questions a candidate should prepare for when applying to the job posting below. Mix technical and behavioral questions appropriate for the role.

Respond with a numbered list, one question per line, and nothing else.

Job posting:
%s`

const feedbackPrompt = `Evaluate the candidate's answer to an interview question for the job posting below.

Structure your response with exactly these sections:

RATING:
A score as "N/10".

VERDICT:
"Yes" if the answer would satisfy an interviewer, "No" if not, with one sentence of justification.

STRENGTHS:
A bulleted list of what works in the answer.

IMPROVEMENTS:
A bulleted list of concrete ways to strengthen the answer.

Job posting:
%s

Question: %s

Candidate's answer:
%s`

var feedbackHeaders = []string{"RATING", "VERDICT", "STRENGTHS", "IMPROVEMENTS"}

// Feedback is an evaluation of an interview answer.
type Feedback struct {
	Rating       *parse.RatingValue `json:"rating,omitempty"`
	Pass         *bool              `json:"pass,omitempty"`
	Verdict      string             `json:"verdict"`
	Strengths    []string           `json:"strengths"`
	Improvements []string           `json:"improvements"`
}

// InterviewAgent generates interview preparation material for stored
// postings.
type InterviewAgent struct {
	Generator jobcoach.Generator
	Postings  jobcoach.PostingService

	// Artifacts, if set, persists generated questions and feedback.
	Artifacts jobcoach.ArtifactService

	// Model is recorded on persisted artifacts.
	Model string

	Logger *slog.Logger
}

// Questions generates n interview questions for the posting.
// n <= 0 uses DefaultQuestionCount.
func (a *InterviewAgent) Questions(ctx context.Context, postingID string, n int) ([]string, error) {
	if n <= 0 {
		n = DefaultQuestionCount
	}

	posting, err := a.Postings.FindPostingByID(ctx, postingID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(questionsPrompt, n, jobcoach.FormatPosting(posting))
	response, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions := parse.ListItems(response)
	if len(questions) == 0 {
		if a.Logger != nil {
			a.Logger.Warn("question generation returned no list", "posting_id", postingID)
		}
		return nil, jobcoach.Errorf(jobcoach.EINTERNAL, "could not understand the model response")
	}

	if a.Artifacts != nil {
		artifact := &jobcoach.Artifact{
			PostingID: posting.ID,
			Kind:      jobcoach.ArtifactInterviewQuestions,
			Content:   formatQuestions(questions),
			Model:     a.Model,
		}
		if err := a.Artifacts.CreateArtifact(ctx, artifact); err != nil {
			return nil, err
		}
	}

	return questions, nil
}

// Feedback evaluates the candidate's answer to an interview question.
func (a *InterviewAgent) Feedback(ctx context.Context, postingID, question, answer string) (*Feedback, error) {
	if question == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "question required")
	}
	if answer == "" {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "answer required")
	}

	posting, err := a.Postings.FindPostingByID(ctx, postingID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(feedbackPrompt, jobcoach.FormatPosting(posting), question, answer)
	response, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	sections := parse.Sections(response, feedbackHeaders)
	if len(sections) == 0 {
		if a.Logger != nil {
			a.Logger.Warn("feedback response had no recognizable sections", "posting_id", postingID)
		}
		return nil, jobcoach.Errorf(jobcoach.EINTERNAL, "could not understand the model response")
	}

	feedback := &Feedback{
		Rating:       parse.Rating(sections["RATING"]),
		Pass:         parse.Boolean(sections["VERDICT"]),
		Verdict:      sections["VERDICT"],
		Strengths:    parse.ListItems(sections["STRENGTHS"]),
		Improvements: parse.ListItems(sections["IMPROVEMENTS"]),
	}

	if a.Artifacts != nil {
		artifact := &jobcoach.Artifact{
			PostingID: posting.ID,
			Kind:      jobcoach.ArtifactInterviewFeedback,
			Content:   formatFeedback(question, answer, feedback),
			Model:     a.Model,
		}
		if err := a.Artifacts.CreateArtifact(ctx, artifact); err != nil {
			return nil, err
		}
	}

	return feedback, nil
}

func formatQuestions(questions []string) string {
	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return b.String()
}

func formatFeedback(question, answer string, feedback *Feedback) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Question\n\n%s\n\n## Answer\n\n%s\n\n## Feedback\n\n", question, answer)
	if feedback.Rating != nil {
		fmt.Fprintf(&b, "Rating: %g/%g\n\n", feedback.Rating.Score, feedback.Rating.Max)
	}
	if feedback.Verdict != "" {
		fmt.Fprintf(&b, "Verdict: %s\n\n", feedback.Verdict)
	}
	if len(feedback.Strengths) > 0 {
		b.WriteString("Strengths:\n")
		for _, s := range feedback.Strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	if len(feedback.Improvements) > 0 {
		b.WriteString("Improvements:\n")
		for _, s := range feedback.Improvements {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return b.String()
}
