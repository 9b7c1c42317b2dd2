package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/jobcoach/jobcoach"
	"github.com/jobcoach/jobcoach/agent"
	"github.com/jobcoach/jobcoach/fetch"
	"github.com/jobcoach/jobcoach/gemini"
	"github.com/jobcoach/jobcoach/goquery"
	jchttp "github.com/jobcoach/jobcoach/http"
	"github.com/jobcoach/jobcoach/ingest"
	"github.com/jobcoach/jobcoach/readability"
	"github.com/jobcoach/jobcoach/rod"
	jcslog "github.com/jobcoach/jobcoach/slog"
	"github.com/jobcoach/jobcoach/sqlite"
	"github.com/jobcoach/jobcoach/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PostingService  jobcoach.PostingService
	ArtifactService jobcoach.ArtifactService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobcoach"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobcoach --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set JOBCOACH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PostingService = sqlite.NewPostingService(m.DB)
	m.ArtifactService = sqlite.NewArtifactService(m.DB)
	deps.DB = m.DB
	deps.Postings = m.PostingService
	deps.Artifacts = m.ArtifactService
	deps.Sitemaps = jcslog.NewLoggingSitemapService(jchttp.NewSitemapService(nil), logger)

	// Commands touching the web get the content fetcher. The browser only
	// launches when a static fetch falls short: add launches one per call,
	// import shares a recycled browser across the whole run.
	switch cmd {
	case "add":
		rendered := func() (jobcoach.Fetcher, error) {
			return rod.NewFetcher()
		}
		deps.Fetcher = jcslog.NewLoggingContentFetcher(newContentFetcher(logger, rendered), logger)
	case "import":
		renderer := &sharedRenderer{}
		defer renderer.Close()
		deps.Fetcher = jcslog.NewLoggingContentFetcher(newContentFetcher(logger, renderer.Fetcher), logger)
	}

	// Commands talking to the model get a generator.
	var generator jobcoach.Generator
	if needsGenerator(cmd, cli) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		generator = jcslog.NewLoggingGenerator(gemini.NewGenerator(client), logger)
	}

	switch cmd {
	case "add":
		if !cli.Add.Preview {
			deps.Parser = &agent.PostingAgent{
				Fetcher:   deps.Fetcher,
				Generator: generator,
				Postings:  deps.Postings,
				Logger:    logger,
			}
		}
	case "import":
		deps.Importer = &ingest.Importer{
			Discoverer: &ingest.Discoverer{
				Sitemaps: deps.Sitemaps,
				Fetcher:  jchttp.NewFetcher(),
				Logger:   logger,
			},
			Parser: &agent.PostingAgent{
				Fetcher:   deps.Fetcher,
				Generator: generator,
				Logger:    logger,
			},
			Postings:    deps.Postings,
			RateLimiter: ingest.NewDomainLimiter(1.0),
			Concurrency: cli.Import.Concurrency,
		}
	case "letter":
		deps.Letters = &agent.CoverLetterAgent{
			Generator: generator,
			Postings:  deps.Postings,
			Artifacts: deps.Artifacts,
			Model:     gemini.DefaultModel,
			Logger:    logger,
		}
	case "tailor":
		deps.Tailor = &agent.TailorAgent{
			Generator: generator,
			Postings:  deps.Postings,
			Artifacts: deps.Artifacts,
			Model:     gemini.DefaultModel,
			Logger:    logger,
		}
	case "interview", "feedback":
		deps.Interview = &agent.InterviewAgent{
			Generator: generator,
			Postings:  deps.Postings,
			Artifacts: deps.Artifacts,
			Model:     gemini.DefaultModel,
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

// needsGenerator reports whether the command talks to the model.
func needsGenerator(cmd string, cli *CLI) bool {
	switch cmd {
	case "add":
		return !cli.Add.Preview
	case "import", "letter", "tailor", "interview", "feedback":
		return true
	}
	return false
}

// newContentFetcher builds the two-phase fetcher used by add and import.
func newContentFetcher(logger *slog.Logger, rendered fetch.RendererFactory) *fetch.ContentFetcher {
	return &fetch.ContentFetcher{
		Static:    jcslog.NewLoggingFetcher(jchttp.NewFetcher(), logger),
		Rendered:  rendered,
		Extractor: goquery.NewExtractor(),
		Fallback:  trafilatura.NewExtractor(),
		Meta:      readability.NewExtractor(),
	}
}

// sharedRenderer lazily launches one recycled browser for a batch run, so an
// import does not pay a Chrome start per posting. The ManagedFetchers it
// hands out have no-op Close; the renderer owns the browser.
type sharedRenderer struct {
	once    sync.Once
	manager *rod.BrowserManager
	err     error
}

func (r *sharedRenderer) Fetcher() (jobcoach.Fetcher, error) {
	r.once.Do(func() {
		r.manager, r.err = rod.NewBrowserManager()
	})
	if r.err != nil {
		return nil, r.err
	}
	return rod.NewManagedFetcher(r.manager), nil
}

func (r *sharedRenderer) Close() error {
	if r.manager != nil {
		return r.manager.Close()
	}
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("JOBCOACH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobcoach.db"
	}
	dir := filepath.Join(home, ".jobcoach")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobcoach.db")
}
