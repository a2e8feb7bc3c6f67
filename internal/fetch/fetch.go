// Package fetch retrieves listing and profile pages. A static HTTP fetcher
// covers most sites; a headless-browser fetcher covers the JS-rendered ones.
// Every fetcher applies the same politeness pacing, and every failure is an
// error the caller treats as zero results for that page.
package fetch

import "context"

// Request describes a single page retrieval.
type Request struct {
	URL string
	// UserAgent overrides the fetcher's default when non-empty. Some sites
	// only serve full HTML to a Googlebot UA.
	UserAgent string
	// WaitSelector is the CSS selector a browser fetcher waits for before
	// reading the DOM. Ignored by static fetchers.
	WaitSelector string
}

// Page is a fetched page.
type Page struct {
	URL        string
	FinalURL   string // after redirects; base for relative-link resolution
	HTML       string
	StatusCode int
}

// Fetcher retrieves one page per call.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*Page, error)
}

// GooglebotUA is the user agent for sites that gate full HTML on crawler UAs.
const GooglebotUA = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"

// DefaultUA is a desktop Chrome user agent.
const DefaultUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
