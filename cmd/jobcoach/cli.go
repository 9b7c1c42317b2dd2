package main

import (
	"context"
	"io"

	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/agent"
	"github.com/jobcoach/jobcoach/ingest"
	"github.com/jobcoach/jobcoach/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Postings  jobcoach.PostingService
	Artifacts jobcoach.ArtifactService
	Sitemaps  jobcoach.SitemapService
	Fetcher   jobcoach.ContentFetcher
	Parser    jobcoach.PostingParser
	Letters   *agent.CoverLetterAgent
	Tailor    *agent.TailorAgent
	Interview *agent.InterviewAgent
	Importer  *ingest.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Add       AddCmd       `cmd:"" help:"Fetch, parse, and store a job posting"`
	Import    ImportCmd    `cmd:"" help:"Discover and import postings from a careers site"`
	List      ListCmd      `cmd:"" help:"List stored postings"`
	Show      ShowCmd      `cmd:"" help:"Show a posting and its artifacts"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a posting and its artifacts"`
	Letter    LetterCmd    `cmd:"" help:"Generate a cover letter for a posting"`
	Tailor    TailorCmd    `cmd:"" help:"Tailor a resume to a posting"`
	Interview InterviewCmd `cmd:"" help:"Generate interview questions for a posting"`
	Feedback  FeedbackCmd  `cmd:"" help:"Evaluate an interview answer for a posting"`
	Export    ExportCmd    `cmd:"" help:"Export artifacts as markdown files"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URL     string `arg:"" help:"Job posting URL"`
	Preview bool   `short:"p" help:"Print extracted text without parsing or storing"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URL         string   `arg:"" help:"Careers site URL"`
	Filter      []string `short:"F" name:"filter" help:"Filter posting URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent import limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Company string `help:"Filter by company name"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Posting ID"`
	Full bool   `help:"Show full description and artifact contents"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Posting ID"`
}

// LetterCmd is the "letter" subcommand.
type LetterCmd struct {
	ID     string `arg:"" help:"Posting ID"`
	Resume string `short:"r" required:"" help:"Path to resume file"`
}

// TailorCmd is the "tailor" subcommand.
type TailorCmd struct {
	ID     string `arg:"" help:"Posting ID"`
	Resume string `short:"r" required:"" help:"Path to resume file"`
}

// InterviewCmd is the "interview" subcommand.
type InterviewCmd struct {
	ID    string `arg:"" help:"Posting ID"`
	Count int    `short:"n" default:"10" help:"Number of questions"`
}

// FeedbackCmd is the "feedback" subcommand.
type FeedbackCmd struct {
	ID       string `arg:"" help:"Posting ID"`
	Question string `short:"q" required:"" help:"Interview question"`
	Answer   string `short:"a" required:"" help:"Your answer"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" optional:"" help:"Posting ID (all postings when omitted)"`
	Out string `short:"o" default:"jobcoach-export" help:"Output directory"`
}
