package main

import (
	"fmt"

	"github.com/jobcoach/jobcoach"
)

// Run executes the feedback command.
func (c *FeedbackCmd) Run(deps *Dependencies) error {
	feedback, err := deps.Interview.Feedback(deps.Ctx, c.ID, c.Question, c.Answer)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	if feedback.Rating != nil {
		fmt.Fprintf(deps.Stdout, "Rating: %g/%g\n", feedback.Rating.Score, feedback.Rating.Max)
	}
	if feedback.Verdict != "" {
		fmt.Fprintf(deps.Stdout, "Verdict: %s\n", feedback.Verdict)
	}
	if len(feedback.Strengths) > 0 {
		fmt.Fprintf(deps.Stdout, "\nStrengths:\n")
		for _, s := range feedback.Strengths {
			fmt.Fprintf(deps.Stdout, "- %s\n", s)
		}
	}
	if len(feedback.Improvements) > 0 {
		fmt.Fprintf(deps.Stdout, "\nImprovements:\n")
		for _, s := range feedback.Improvements {
			fmt.Fprintf(deps.Stdout, "- %s\n", s)
		}
	}

	return nil
}
