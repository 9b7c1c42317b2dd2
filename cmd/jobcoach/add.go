package main

import (
	"fmt"

	"github.com/jobcoach/jobcoach"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Preview mode: show what the fetcher extracts without involving the
	// model or the database.
	if c.Preview {
		result, err := deps.Fetcher.FetchContent(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
			return err
		}
		if result.Title != "" {
			fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
		}
		fmt.Fprintln(deps.Stdout, result.Text)
		fmt.Fprintf(deps.Stderr, "(%d chars via %s fetch)\n", len(result.Text), result.Source)
		return nil
	}

	posting, err := deps.Parser.ParsePosting(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added posting %q at %s (%s)\n", posting.Title, posting.Company, posting.ID)
	return nil
}
