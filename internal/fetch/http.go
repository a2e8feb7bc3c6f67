package fetch

import (
	"context"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPOptions configures the static fetcher.
type HTTPOptions struct {
	UserAgent string
	Timeout   time.Duration
	// MinDelay/MaxDelay bound the random politeness sleep applied before
	// every request.
	MinDelay time.Duration
	MaxDelay time.Duration
	// RequestsPerSecond caps the overall request rate on top of the jitter.
	RequestsPerSecond float64
}

// HTTPFetcher fetches pages with a plain GET. Before every request it sleeps
// a random politeness delay and waits on a shared rate limiter, so the run
// never hammers a third-party server even when the jitter comes up short.
type HTTPFetcher struct {
	client  *http.Client
	opts    HTTPOptions
	limiter *rate.Limiter
}

// NewHTTPFetcher creates an HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUA
	}
	if opts.MinDelay == 0 {
		opts.MinDelay = 1 * time.Second
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay + 2*time.Second
	}
	if opts.RequestsPerSecond == 0 {
		opts.RequestsPerSecond = 1
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
	}
}

// Fetch retrieves one page in a single attempt. Network errors, timeouts,
// and non-2xx statuses all come back as errors; the caller logs the failure
// and treats the page as empty. Failed fetches are never retried.
func (f *HTTPFetcher) Fetch(ctx context.Context, req Request) (*Page, error) {
	if err := f.politeWait(ctx); err != nil {
		return nil, eris.Wrap(err, "fetch: politeness wait")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: create request %s", req.URL)
	}
	ua := req.UserAgent
	if ua == "" {
		ua = f.opts.UserAgent
	}
	httpReq.Header.Set("User-Agent", ua)
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	httpReq.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: get %s", req.URL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: req.URL, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: read body %s", req.URL)
	}

	finalURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	zap.L().Debug("fetch: page retrieved",
		zap.String("url", req.URL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	return &Page{
		URL:        req.URL,
		FinalURL:   finalURL,
		HTML:       string(body),
		StatusCode: resp.StatusCode,
	}, nil
}

// politeWait sleeps the random jitter and then waits on the rate limiter.
// The jitter is unconditional: it applies before every request regardless of
// prior failures.
func (f *HTTPFetcher) politeWait(ctx context.Context) error {
	delta := f.opts.MaxDelay - f.opts.MinDelay
	delay := f.opts.MinDelay
	if delta > 0 {
		delay += time.Duration(rand.Int64N(int64(delta)))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	return f.limiter.Wait(ctx)
}
