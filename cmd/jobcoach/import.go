package main

import (
	"fmt"
	"regexp"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/ingest"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	// Compile filters early so a bad pattern fails before any fetching.
	var urlFilter *jobcoach.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &jobcoach.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d posting URLs\n", event.Total)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := deps.Importer.ImportSite(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Imported %d postings (%d skipped, %d failed)\n",
		result.Imported, result.Skipped, result.Failed)
	return nil
}
