package rod

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/jobcoach/jobcoach"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// BrowserManager manages a shared browser with automatic recycling to
// prevent memory accumulation. Chrome's baseline memory grows under load
// and never returns to initial levels even with proper page cleanup, so the
// browser is replaced after a page quota. Used by batch import, where a
// browser per posting would be wasteful.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	mu        sync.Mutex
	closed    atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the page quota before the browser is recycled.
// Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless Chrome browser shared across
// fetches. Close must be called when the manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}

	if err := bm.launchBrowser(); err != nil {
		return nil, err
	}

	return bm, nil
}

// Browser returns the current browser instance, recycling it first if the
// page quota has been reached. Callers should call IncrementPageCount after
// processing a page.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if atomic.LoadInt64(&bm.pageCount) >= bm.maxPages {
		bm.recycleBrowser()
	}

	return bm.browser
}

// IncrementPageCount records a processed page toward the recycling quota.
func (bm *BrowserManager) IncrementPageCount() {
	atomic.AddInt64(&bm.pageCount, 1)
}

// Close releases browser resources. Safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	return bm.closeBrowser()
}

// launchBrowser starts a new browser instance with stability flags.
func (bm *BrowserManager) launchBrowser() error {
	lnchr := launcher.New().
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-background-timer-throttling").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return jobcoach.Errorf(jobcoach.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return jobcoach.Errorf(jobcoach.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	bm.browser = browser
	bm.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (bm *BrowserManager) closeBrowser() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (bm *BrowserManager) recycleBrowser() {
	oldBrowser := bm.browser
	oldLauncher := bm.launcher
	bm.browser = nil
	bm.launcher = nil

	if err := bm.launchBrowser(); err != nil {
		bm.browser = oldBrowser
		bm.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&bm.pageCount, 0)
}

// Ensure ManagedFetcher implements jobcoach.Fetcher at compile time.
var _ jobcoach.Fetcher = (*ManagedFetcher)(nil)

// ManagedFetcher is a jobcoach.Fetcher over a shared BrowserManager. It is
// substitutable for Fetcher wherever per-call browser launches are too
// expensive; Close is a no-op because the manager owns the browser.
type ManagedFetcher struct {
	manager *BrowserManager
	cfg     config
}

// NewManagedFetcher creates a fetcher that borrows pages from manager.
func NewManagedFetcher(manager *BrowserManager, opts ...Option) *ManagedFetcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ManagedFetcher{manager: manager, cfg: cfg}
}

// Fetch renders the URL on a page of the shared browser.
func (f *ManagedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := fetchPage(ctx, f.manager.Browser(), url, f.cfg)
	if err == nil {
		f.manager.IncrementPageCount()
	}
	return html, err
}

// Close is a no-op; the BrowserManager owns the browser lifecycle.
func (f *ManagedFetcher) Close() error {
	return nil
}
