package fetch

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Cache stores fetched pages in SQLite so additive re-runs do not
// re-download pages that have not expired.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

const cacheMigration = `
CREATE TABLE IF NOT EXISTS page_cache (
	url        TEXT PRIMARY KEY,
	final_url  TEXT NOT NULL,
	status     INTEGER NOT NULL,
	html       TEXT NOT NULL,
	fetched_at DATETIME NOT NULL DEFAULT (datetime('now')),
	expires_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_page_cache_expires_at ON page_cache(expires_at);
`

// OpenCache opens (or creates) the page cache at path and applies the
// schema. WAL mode keeps the single-writer pipeline from blocking on reads.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "cache: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "cache: exec %s", pragma)
		}
	}
	if _, err := db.Exec(cacheMigration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "cache: migrate")
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached page for url if present and unexpired.
func (c *Cache) Get(ctx context.Context, url string) (*Page, bool) {
	row := c.db.QueryRowContext(ctx,
		`SELECT final_url, status, html FROM page_cache WHERE url = ? AND expires_at > ?`,
		url, time.Now().UTC(),
	)
	p := Page{URL: url}
	if err := row.Scan(&p.FinalURL, &p.StatusCode, &p.HTML); err != nil {
		return nil, false
	}
	return &p, true
}

// Put stores a page, replacing any previous entry for the same URL.
func (c *Cache) Put(ctx context.Context, p *Page) error {
	now := time.Now().UTC()
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO page_cache (url, final_url, status, html, fetched_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.URL, p.FinalURL, p.StatusCode, p.HTML, now, now.Add(c.ttl),
	)
	return eris.Wrap(err, "cache: put")
}

// CachingFetcher wraps a Fetcher with the page cache. Cache write failures
// are logged and otherwise ignored: a cold cache only costs a re-fetch.
type CachingFetcher struct {
	inner Fetcher
	cache *Cache
}

// NewCachingFetcher wraps inner with cache.
func NewCachingFetcher(inner Fetcher, cache *Cache) *CachingFetcher {
	return &CachingFetcher{inner: inner, cache: cache}
}

// Fetch serves from cache when fresh, otherwise delegates and stores the
// result.
func (f *CachingFetcher) Fetch(ctx context.Context, req Request) (*Page, error) {
	if p, ok := f.cache.Get(ctx, req.URL); ok {
		zap.L().Debug("fetch: cache hit", zap.String("url", req.URL))
		return p, nil
	}
	p, err := f.inner.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := f.cache.Put(ctx, p); err != nil {
		zap.L().Warn("fetch: cache write failed", zap.String("url", req.URL), zap.Error(err))
	}
	return p, nil
}
