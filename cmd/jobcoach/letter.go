package main

import (
	"fmt"
	"os"

	"github.com/jobcoach/jobcoach"
)

// Run executes the letter command.
func (c *LetterCmd) Run(deps *Dependencies) error {
	resume, err := os.ReadFile(c.Resume)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read resume file: %v\n", err)
		return err
	}

	letter, err := deps.Letters.Generate(deps.Ctx, c.ID, string(resume))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, letter.Letter)
	if len(letter.TalkingPoints) > 0 {
		fmt.Fprintf(deps.Stdout, "\nTalking points:\n")
		for _, p := range letter.TalkingPoints {
			fmt.Fprintf(deps.Stdout, "- %s\n", p)
		}
	}

	return nil
}
