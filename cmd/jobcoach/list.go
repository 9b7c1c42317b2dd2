package main

import (
	"fmt"

	"github.com/jobcoach/jobcoach"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := jobcoach.PostingFilter{}
	if c.Company != "" {
		filter.Company = &c.Company
	}

	postings, err := deps.Postings.FindPostings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	if len(postings) == 0 {
		fmt.Fprintln(deps.Stdout, "No postings found. Use 'jobcoach add' to create one.")
		return nil
	}

	for _, p := range postings {
		company := p.Company
		if company == "" {
			company = "(unknown)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", p.ID, company, p.Title, p.SourceURL)
	}

	return nil
}
