package main

import (
	"fmt"
	"path/filepath"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var postings []*jobcoach.JobPosting
	if c.ID != "" {
		posting, err := deps.Postings.FindPostingByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
			return err
		}
		postings = append(postings, posting)
	} else {
		var err error
		postings, err = deps.Postings.FindPostings(deps.Ctx, jobcoach.PostingFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
			return err
		}
	}

	store := fs.NewExportStore(filepath.Dir(c.Out), filepath.Base(c.Out))

	saved := 0
	for _, posting := range postings {
		artifacts, err := deps.Artifacts.FindArtifacts(deps.Ctx, jobcoach.ArtifactFilter{PostingID: &posting.ID})
		if err != nil {
			store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
			return err
		}

		for _, artifact := range artifacts {
			if err := store.Save(deps.Ctx, posting, artifact); err != nil {
				store.Abort()
				fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
				return err
			}
			saved++
		}
	}

	if saved == 0 {
		store.Abort()
		fmt.Fprintln(deps.Stdout, "No artifacts to export.")
		return nil
	}

	if err := store.Commit(); err != nil {
		store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d artifacts to %s\n", saved, c.Out)
	return nil
}
