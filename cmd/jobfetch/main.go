// Command jobfetch fetches a job posting page and prints the extracted
// content. It is a debugging companion to jobcoach: it runs the same fetch
// and extraction pipeline but stores nothing, so extraction problems can be
// inspected one URL at a time.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/goquery"
	"github.com/jobcoach/jobcoach/htmltomarkdown"
	jchttp "github.com/jobcoach/jobcoach/http"
	"github.com/jobcoach/jobcoach/rod"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface for jobfetch.
type CLI struct {
	URL      string `arg:"" help:"Page URL to fetch"`
	Rendered bool   `short:"r" help:"Fetch with a headless browser instead of plain HTTP"`
	Markdown bool   `short:"m" help:"Print the extracted content as Markdown"`
}

// Main represents the program. The service fields exist so tests can inject
// fakes; when nil, Run wires the real implementations.
type Main struct {
	Fetcher   jobcoach.Fetcher
	Extractor jobcoach.Extractor
	Converter jobcoach.Converter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes jobfetch with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobfetch"),
		kong.Description("Fetch a job posting page and print the extracted content."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 || args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		if len(args) == 0 {
			return fmt.Errorf("no URL specified")
		}
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		if cli.Rendered {
			f, err := rod.NewFetcher()
			if err != nil {
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = jchttp.NewFetcher()
		}
	}
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, cli.URL)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	extractor := m.Extractor
	if extractor == nil {
		extractor = goquery.NewExtractor()
	}

	result, err := extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	if cli.Markdown {
		return m.printMarkdown(result, stdout, stderr)
	}

	if result.Title != "" {
		fmt.Fprintf(stdout, "# %s\n\n", result.Title)
	}
	fmt.Fprintln(stdout, result.Text)
	if result.Truncated {
		fmt.Fprintln(stderr, "(content truncated at length cap)")
	}

	return nil
}

// printMarkdown converts the winning content element to Markdown.
func (m *Main) printMarkdown(result *jobcoach.ExtractResult, stdout, stderr io.Writer) error {
	if result.ContentHTML == "" {
		err := jobcoach.Errorf(jobcoach.EUNAVAILABLE, "extractor kept no HTML to convert")
		fmt.Fprintf(stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	converter := m.Converter
	if converter == nil {
		converter = htmltomarkdown.NewConverter()
	}

	markdown, err := converter.Convert(result.ContentHTML)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", jobcoach.ErrorMessage(err))
		return err
	}

	if result.Title != "" {
		fmt.Fprintf(stdout, "# %s\n\n", result.Title)
	}
	fmt.Fprintln(stdout, markdown)
	return nil
}
