// Package rod provides browser-based implementations of jobcoach.Fetcher
// using headless Chrome. It renders JavaScript-heavy job boards that serve
// empty shells to plain HTTP clients.
package rod

import (
	"context"
	"errors"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jobcoach/jobcoach"
)

// Rendered-fetch defaults.
const (
	// DefaultNavigateTimeout bounds navigation plus network settling.
	DefaultNavigateTimeout = 30 * time.Second

	// DefaultSettleDelay is the flat fallback raced against the content
	// selector waits after navigation.
	DefaultSettleDelay = 5 * time.Second

	defaultViewportWidth  = 1920
	defaultViewportHeight = 1080
)

// DefaultContentSelectors are raced after navigation to detect that the
// posting content has rendered. Failure to find any of them is non-fatal.
func DefaultContentSelectors() []string {
	return []string{"article", `[role="main"]`, ".job-description", "main"}
}

// config holds the page-level settings shared by Fetcher and ManagedFetcher.
type config struct {
	userAgent        string
	navigateTimeout  time.Duration
	settleDelay      time.Duration
	contentSelectors []string
}

func defaultConfig() config {
	return config{
		navigateTimeout:  DefaultNavigateTimeout,
		settleDelay:      DefaultSettleDelay,
		contentSelectors: DefaultContentSelectors(),
	}
}

// Option configures a Fetcher or ManagedFetcher.
type Option func(*config)

// WithUserAgent sets the User-Agent used by rendered fetches.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithNavigateTimeout sets the navigation timeout.
// Defaults to DefaultNavigateTimeout.
func WithNavigateTimeout(d time.Duration) Option {
	return func(c *config) {
		c.navigateTimeout = d
	}
}

// WithSettleDelay sets the flat delay raced against the content selector
// waits. Defaults to DefaultSettleDelay.
func WithSettleDelay(d time.Duration) Option {
	return func(c *config) {
		c.settleDelay = d
	}
}

// WithContentSelectors replaces the selectors raced after navigation.
func WithContentSelectors(selectors []string) Option {
	return func(c *config) {
		c.contentSelectors = selectors
	}
}

// Ensure Fetcher implements jobcoach.Fetcher at compile time.
var _ jobcoach.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using a dedicated headless Chrome
// instance. Each Fetcher owns one browser process; Close must be called on
// every exit path, including errors, or the process leaks.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	cfg      config
}

// NewFetcher launches a headless Chrome browser with the GPU disabled and
// returns a Fetcher bound to it.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	lnchr := launcher.New().
		NoSandbox(true).
		Set("disable-gpu").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, jobcoach.Errorf(jobcoach.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, jobcoach.Errorf(jobcoach.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	return &Fetcher{browser: browser, launcher: lnchr, cfg: cfg}, nil
}

// Fetch navigates to the URL, waits for the content to render, and returns
// the full rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return fetchPage(ctx, f.browser, url, f.cfg)
}

// Close shuts down the browser process. Safe to call after a failed Fetch.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// fetchPage runs the rendered-fetch flow on a page of the given browser.
// The page is closed before returning on every path.
func fetchPage(ctx context.Context, browser *rod.Browser, url string, cfg config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", wrapBrowserError(err)
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, cfg.navigateTimeout)
	defer cancel()
	page = page.Context(navCtx)

	if cfg.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: cfg.userAgent}); err != nil {
			return "", wrapBrowserError(err)
		}
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             defaultViewportWidth,
		Height:            defaultViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return "", wrapBrowserError(err)
	}

	// Navigate and wait until the network has mostly gone idle.
	wait := page.WaitNavigation(proto.PageLifecycleEventNameNetworkAlmostIdle)
	if err := page.Navigate(url); err != nil {
		return "", wrapBrowserError(err)
	}
	wait()
	if err := navCtx.Err(); err != nil {
		return "", wrapBrowserError(err)
	}

	waitForContent(page, cfg)

	html, err := page.HTML()
	if err != nil {
		return "", wrapBrowserError(err)
	}

	return html, nil
}

// waitForContent races the content selector waits against the flat settle
// delay; whichever resolves first wins. Losing waiters are abandoned and a
// miss on all selectors is non-fatal, so errors are discarded.
func waitForContent(page *rod.Page, cfg config) {
	if len(cfg.contentSelectors) == 0 || cfg.settleDelay <= 0 {
		return
	}

	race := page.Timeout(cfg.settleDelay).Race()
	for _, selector := range cfg.contentSelectors {
		race = race.Element(selector)
	}
	_, _ = race.Do()
}

// wrapBrowserError maps browser failures onto the domain error taxonomy.
// Deadline errors become ETIMEOUT so callers can tell the user the page
// load timed out rather than reporting a generic failure.
func wrapBrowserError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return jobcoach.Errorf(jobcoach.ETIMEOUT, "page load timed out; the site may be slow or blocking automated browsers")
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return jobcoach.Errorf(jobcoach.EINTERNAL, "failed to fetch job posting with browser: %v", err)
}
