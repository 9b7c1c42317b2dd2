// Package gemini implements text generation using Google Gemini.
package gemini

import (
	"context"

	"github.com/jobcoach/jobcoach"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature keeps generation fairly deterministic; parsing the
// response downstream depends on the model following format instructions.
const DefaultTemperature = 0.4

// Ensure Generator implements jobcoach.Generator at compile time.
var _ jobcoach.Generator = (*Generator)(nil)

// Generator implements jobcoach.Generator using the Gemini API.
type Generator struct {
	client            *genai.Client
	model             string
	temperature       float32
	systemInstruction string
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the default Gemini model.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(t float32) Option {
	return func(g *Generator) {
		g.temperature = t
	}
}

// WithSystemInstruction sets a system instruction sent with every request.
func WithSystemInstruction(instruction string) Option {
	return func(g *Generator) {
		g.systemInstruction = instruction
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{
		client:      client,
		model:       DefaultModel,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends prompt to the model and returns the response text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", jobcoach.Errorf(jobcoach.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		g.buildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", jobcoach.Errorf(jobcoach.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

func (g *Generator) buildConfig() *genai.GenerateContentConfig {
	temp := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if g.systemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: g.systemInstruction}},
		}
	}
	return config
}
