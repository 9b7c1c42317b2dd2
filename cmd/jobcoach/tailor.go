package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jobcoach/jobcoach"
)

// Run executes the tailor command.
func (c *TailorCmd) Run(deps *Dependencies) error {
	resume, err := os.ReadFile(c.Resume)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read resume file: %v\n", err)
		return err
	}

	result, err := deps.Tailor.Tailor(deps.Ctx, c.ID, string(resume))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Resume)

	if result.MatchScore != nil {
		fmt.Fprintf(deps.Stderr, "\nMatch score: %g/%g\n", result.MatchScore.Score, result.MatchScore.Max)
	}
	if len(result.MissingSkills) > 0 {
		fmt.Fprintf(deps.Stderr, "Missing skills: %s\n", strings.Join(result.MissingSkills, ", "))
	}
	if result.Summary != "" {
		fmt.Fprintf(deps.Stderr, "\n%s\n", result.Summary)
	}

	return nil
}
