package fetch

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// BrowserOptions configures the headless-browser fetcher.
type BrowserOptions struct {
	UserAgent string
	// SettleDelay is the fixed wait after navigation before reading the DOM.
	SettleDelay time.Duration
	// SelectorTimeout bounds the wait for a site's expected selector.
	SelectorTimeout time.Duration
	MinDelay        time.Duration
	MaxDelay        time.Duration
}

// BrowserFetcher drives a headless browser for JS-rendered pages. One
// browser process serves the whole run: it is launched lazily on the first
// fetch and torn down by Close. A failed launch poisons the fetcher: every
// subsequent fetch returns the launch error, so browser-dependent sites
// degrade to zero results instead of crashing the run.
type BrowserFetcher struct {
	opts BrowserOptions

	once    sync.Once
	browser *rod.Browser
	initErr error
}

// NewBrowserFetcher creates a BrowserFetcher. The browser is not launched
// until the first Fetch.
func NewBrowserFetcher(opts BrowserOptions) *BrowserFetcher {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUA
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = 2 * time.Second
	}
	if opts.SelectorTimeout == 0 {
		opts.SelectorTimeout = 15 * time.Second
	}
	if opts.MinDelay == 0 {
		opts.MinDelay = 1 * time.Second
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay + 2*time.Second
	}
	return &BrowserFetcher{opts: opts}
}

func (b *BrowserFetcher) init() {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("window-size", "1920,1080")

	controlURL, err := l.Launch()
	if err != nil {
		b.initErr = eris.Wrap(err, "fetch: launch browser")
		return
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		b.initErr = eris.Wrap(err, "fetch: connect browser")
		return
	}

	b.browser = browser
	zap.L().Info("fetch: browser launched", zap.String("control_url", controlURL))
}

// Fetch navigates to the URL, waits for the expected selector (bounded),
// scrolls to the bottom to trigger lazy-loaded content, and returns the
// rendered DOM.
func (b *BrowserFetcher) Fetch(ctx context.Context, req Request) (*Page, error) {
	b.once.Do(b.init)
	if b.initErr != nil {
		return nil, b.initErr
	}

	if err := b.politeWait(ctx); err != nil {
		return nil, eris.Wrap(err, "fetch: politeness wait")
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, eris.Wrap(err, "fetch: open page")
	}
	defer func() { _ = page.Close() }()

	p := page.Context(ctx)
	if err := p.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: b.opts.UserAgent}); err != nil {
		zap.L().Debug("fetch: set user agent failed", zap.Error(err))
	}

	if err := p.Navigate(req.URL); err != nil {
		return nil, eris.Wrapf(err, "fetch: navigate %s", req.URL)
	}

	// Fixed settle delay, then a bounded wait for the selector the site is
	// expected to render. A missing selector is not fatal: some pages render
	// everything without it.
	time.Sleep(b.opts.SettleDelay)
	if req.WaitSelector != "" {
		if _, err := p.Timeout(b.opts.SelectorTimeout).Element(req.WaitSelector); err != nil {
			zap.L().Warn("fetch: wait selector not found, reading DOM anyway",
				zap.String("url", req.URL),
				zap.String("selector", req.WaitSelector),
			)
		}
	}

	if _, err := p.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
		zap.L().Debug("fetch: scroll failed", zap.Error(err))
	}
	time.Sleep(time.Second)

	html, err := p.HTML()
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: read DOM %s", req.URL)
	}

	finalURL := req.URL
	if info, err := p.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &Page{
		URL:        req.URL,
		FinalURL:   finalURL,
		HTML:       html,
		StatusCode: 200,
	}, nil
}

func (b *BrowserFetcher) politeWait(ctx context.Context) error {
	delta := b.opts.MaxDelay - b.opts.MinDelay
	delay := b.opts.MinDelay
	if delta > 0 {
		delay += time.Duration(rand.Int64N(int64(delta)))
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Close tears down the browser process. Safe to call when the browser was
// never launched or failed to launch.
func (b *BrowserFetcher) Close() {
	if b.browser == nil {
		return
	}
	if err := b.browser.Close(); err != nil {
		zap.L().Warn("fetch: browser close failed", zap.Error(err))
	}
	b.browser = nil
}
