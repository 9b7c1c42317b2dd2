package main

import (
	"fmt"

	"github.com/jobcoach/jobcoach"
)

// Run executes the interview command.
func (c *InterviewCmd) Run(deps *Dependencies) error {
	questions, err := deps.Interview.Questions(deps.Ctx, c.ID, c.Count)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	for i, q := range questions {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, q)
	}

	return nil
}
