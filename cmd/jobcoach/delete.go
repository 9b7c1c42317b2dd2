package main

import (
	"fmt"

	"github.com/jobcoach/jobcoach"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Postings.DeletePosting(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted posting %s\n", c.ID)
	return nil
}
