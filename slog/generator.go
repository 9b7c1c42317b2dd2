package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobcoach/jobcoach"
)

// Ensure LoggingGenerator implements jobcoach.Generator.
var _ jobcoach.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with operation logging. Prompts and
// responses are logged by size only; their content may hold resume text.
type LoggingGenerator struct {
	next   jobcoach.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next jobcoach.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (response string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generation",
			"prompt_chars", len(prompt),
			"response_chars", len(response),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}
