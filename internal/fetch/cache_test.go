package fetch

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls int
	page  *Page
}

func (c *countingFetcher) Fetch(_ context.Context, req Request) (*Page, error) {
	c.calls++
	p := *c.page
	p.URL = req.URL
	return &p, nil
}

func openTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := openTestCache(t, time.Hour)

	_, ok := c.Get(ctx, "https://example.edu/a")
	assert.False(t, ok)

	page := &Page{URL: "https://example.edu/a", FinalURL: "https://example.edu/a/", HTML: "<html/>", StatusCode: 200}
	require.NoError(t, c.Put(ctx, page))

	got, ok := c.Get(ctx, "https://example.edu/a")
	require.True(t, ok)
	assert.Equal(t, page.FinalURL, got.FinalURL)
	assert.Equal(t, page.HTML, got.HTML)
	assert.Equal(t, 200, got.StatusCode)
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := openTestCache(t, -time.Minute) // everything written is already stale

	require.NoError(t, c.Put(ctx, &Page{URL: "u", FinalURL: "u", HTML: "x", StatusCode: 200}))
	_, ok := c.Get(ctx, "u")
	assert.False(t, ok)
}

func TestCachingFetcher_SecondFetchServedFromCache(t *testing.T) {
	ctx := context.Background()
	inner := &countingFetcher{page: &Page{FinalURL: "f", HTML: "<p>hi</p>", StatusCode: 200}}
	cf := NewCachingFetcher(inner, openTestCache(t, time.Hour))

	req := Request{URL: "https://example.edu/page"}
	first, err := cf.Fetch(ctx, req)
	require.NoError(t, err)

	second, err := cf.Fetch(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first.HTML, second.HTML)
}
