// Package rod provides a headless Chrome implementation of concursos.Fetcher
// for when the listing site refuses plain HTTP clients.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/concursos"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default timeout for loading one page.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements concursos.Fetcher at compile time.
var _ concursos.Fetcher = (*Fetcher)(nil)

// Fetcher loads listing pages in a headless Chrome browser with the browser
// cache disabled.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	timeout   time.Duration
	baseURL   string
	userAgent string

	mu     sync.RWMutex
	closed bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for loading one page.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the listing root state codes are appended to.
// Defaults to concursos.DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

// WithUserAgent overrides the browser's user agent.
// Defaults to concursos.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		baseURL:   concursos.DefaultBaseURL,
		userAgent: concursos.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch loads the listing page for state and returns the rendered HTML.
// A document response outside the 2xx range is reported as a
// *concursos.FetchError carrying its status.
func (f *Fetcher) Fetch(ctx context.Context, state string) (string, error) {
	url := concursos.StateURL(f.baseURL, state)

	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return "", concursos.Errorf(concursos.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := (proto.NetworkEnable{}).Call(page); err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}
	if err := (proto.NetworkSetCacheDisabled{CacheDisabled: true}).Call(page); err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}
	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}

	var status int
	var statusText string
	waitResponse := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		statusText = e.Response.StatusText
		return true
	})

	if err := page.Navigate(url); err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}
	waitResponse()
	if err := ctx.Err(); err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}

	if status < 200 || status > 299 {
		return "", &concursos.FetchError{URL: url, StatusCode: status, Status: statusText}
	}

	if err := page.WaitLoad(); err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}

	html, err := page.HTML()
	if err != nil {
		return "", &concursos.FetchError{URL: url, Err: err}
	}

	return html, nil
}

// Close releases browser resources, including the launched Chrome process.
// Calling Close more than once is a no-op.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true

	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.launcher.PID()
}
