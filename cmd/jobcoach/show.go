package main

import (
	"fmt"
	"strings"

	"github.com/jobcoach/jobcoach"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	posting, err := deps.Postings.FindPostingByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:        %s\n", posting.ID)
	fmt.Fprintf(deps.Stdout, "Title:     %s\n", posting.Title)
	if posting.Company != "" {
		fmt.Fprintf(deps.Stdout, "Company:   %s\n", posting.Company)
	}
	if posting.Location != "" {
		fmt.Fprintf(deps.Stdout, "Location:  %s\n", posting.Location)
	}
	if posting.Salary != "" {
		fmt.Fprintf(deps.Stdout, "Salary:    %s\n", posting.Salary)
	}
	if posting.EmploymentType != "" {
		fmt.Fprintf(deps.Stdout, "Type:      %s\n", posting.EmploymentType)
	}
	fmt.Fprintf(deps.Stdout, "URL:       %s\n", posting.SourceURL)
	fmt.Fprintf(deps.Stdout, "Fetched:   %s\n", posting.FetchedAt.Format("2006-01-02"))
	if len(posting.Skills) > 0 {
		fmt.Fprintf(deps.Stdout, "Skills:    %s\n", strings.Join(posting.Skills, ", "))
	}

	if c.Full && posting.Description != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", posting.Description)
	}

	artifacts, err := deps.Artifacts.FindArtifacts(deps.Ctx, jobcoach.ArtifactFilter{PostingID: &posting.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	if len(artifacts) > 0 {
		fmt.Fprintf(deps.Stdout, "\nArtifacts:\n")
		for _, a := range artifacts {
			fmt.Fprintf(deps.Stdout, "  %s  %s  %s\n", a.ID, a.Kind, a.CreatedAt.Format("2006-01-02"))
			if c.Full {
				fmt.Fprintf(deps.Stdout, "\n%s\n\n", a.Content)
			}
		}
	}

	return nil
}
