package agent_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/agent"
	"github.com/jobcoach/jobcoach/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterviewAgent_Questions(t *testing.T) {
	t.Parallel()

	t.Run("parses numbered list", func(t *testing.T) {
		t.Parallel()

		a := agent.InterviewAgent{
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (string, error) {
					return "1. Tell me about a Go service you built.\n2. How do you handle database migrations?\n3. Describe a production incident you resolved.", nil
				},
			},
			Postings: postingService(),
		}

		questions, err := a.Questions(context.Background(), "posting-1", 3)
		require.NoError(t, err)
		require.Len(t, questions, 3)
		assert.Equal(t, "Tell me about a Go service you built.", questions[0])
	})

	t.Run("uses default count when n is zero", func(t *testing.T) {
		t.Parallel()

		var prompt string
		a := agent.InterviewAgent{
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, p string) (string, error) {
					prompt = p
					return "1. A question", nil
				},
			},
			Postings: postingService(),
		}

		_, err := a.Questions(context.Background(), "posting-1", 0)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(prompt, "Generate 10 interview questions"))
	})

	t.Run("persists questions artifact", func(t *testing.T) {
		t.Parallel()

		var created *jobcoach.Artifact
		a := agent.InterviewAgent{
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (string, error) {
					return "1. First question\n2. Second question", nil
				},
			},
			Postings: postingService(),
			Artifacts: &mock.ArtifactService{
				CreateArtifactFn: func(ctx context.Context, artifact *jobcoach.Artifact) error {
					created = artifact
					return nil
				},
			},
		}

		_, err := a.Questions(context.Background(), "posting-1", 2)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, jobcoach.ArtifactInterviewQuestions, created.Kind)
		assert.Contains(t, created.Content, "1. First question")
	})

	t.Run("returns EINTERNAL for empty response", func(t *testing.T) {
		t.Parallel()

		a := agent.InterviewAgent{
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (string, error) {
					return "", nil
				},
			},
			Postings: postingService(),
		}

		_, err := a.Questions(context.Background(), "posting-1", 3)
		require.Error(t, err)
		assert.Equal(t, jobcoach.EINTERNAL, jobcoach.ErrorCode(err))
	})
}

func TestInterviewAgent_Feedback(t *testing.T) {
	t.Parallel()

	t.Run("parses sectioned feedback", func(t *testing.T) {
		t.Parallel()

		a := agent.InterviewAgent{
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (string, error) {
					return `RATING:
8/10

VERDICT:
Yes, this answer demonstrates solid experience.

STRENGTHS:
- Concrete example
- Clear structure

IMPROVEMENTS:
- Quantify the impact`, nil
				},
			},
			Postings: postingService(),
		}

		feedback, err := a.Feedback(context.Background(), "posting-1", "Describe a project.", "I built a billing service in Go.")
		require.NoError(t, err)
		require.NotNil(t, feedback.Rating)
		assert.Equal(t, 8.0, feedback.Rating.Score)
		assert.Equal(t, 10.0, feedback.Rating.Max)
		require.NotNil(t, feedback.Pass)
		assert.True(t, *feedback.Pass)
		assert.Equal(t, []string{"Concrete example", "Clear structure"}, feedback.Strengths)
		assert.Equal(t, []string{"Quantify the impact"}, feedback.Improvements)
	})

	t.Run("negative verdict resolves to false", func(t *testing.T) {
		t.Parallel()

		a := agent.InterviewAgent{
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (string, error) {
					return "RATING:\n3/10\n\nVERDICT:\nNo, the answer lacks specifics.", nil
				},
			},
			Postings: postingService(),
		}

		feedback, err := a.Feedback(context.Background(), "posting-1", "q", "a")
		require.NoError(t, err)
		require.NotNil(t, feedback.Pass)
		assert.False(t, *feedback.Pass)
	})

	t.Run("persists feedback artifact", func(t *testing.T) {
		t.Parallel()

		var created *jobcoach.Artifact
		a := agent.InterviewAgent{
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (string, error) {
					return "RATING:\n7/10\n\nVERDICT:\nYes.", nil
				},
			},
			Postings: postingService(),
			Artifacts: &mock.ArtifactService{
				CreateArtifactFn: func(ctx context.Context, artifact *jobcoach.Artifact) error {
					created = artifact
					return nil
				},
			},
		}

		_, err := a.Feedback(context.Background(), "posting-1", "q", "a")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, jobcoach.ArtifactInterviewFeedback, created.Kind)
		assert.Contains(t, created.Content, "Rating: 7/10")
	})

	t.Run("returns EINTERNAL for unsectioned response", func(t *testing.T) {
		t.Parallel()

		a := agent.InterviewAgent{
			Generator: &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt string) (string, error) {
					return "Sounds good to me!", nil
				},
			},
			Postings: postingService(),
		}

		_, err := a.Feedback(context.Background(), "posting-1", "q", "a")
		require.Error(t, err)
		assert.Equal(t, jobcoach.EINTERNAL, jobcoach.ErrorCode(err))
	})

	t.Run("requires question and answer", func(t *testing.T) {
		t.Parallel()

		a := agent.InterviewAgent{}

		_, err := a.Feedback(context.Background(), "posting-1", "", "a")
		assert.Equal(t, jobcoach.EINVALID, jobcoach.ErrorCode(err))

		_, err = a.Feedback(context.Background(), "posting-1", "q", "")
		assert.Equal(t, jobcoach.EINVALID, jobcoach.ErrorCode(err))
	})
}
