package jobcoach

import "context"

// Generator produces text from a prompt using a large-language-model
// provider. The provider is treated as an opaque text-in/text-out service;
// no assumption is made about response determinism or formatting. Responses
// are handed to the parse package for structured extraction.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
