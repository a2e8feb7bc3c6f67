// Package site pairs per-institution listing-page extraction with
// profile-page enrichment behind a single Adapter interface, looked up
// through a Registry. Adding an institution means registering a new adapter,
// not editing a dispatcher.
package site

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/faculty-cli/internal/fetch"
	"github.com/sells-group/faculty-cli/internal/model"
)

// Fetcher is the subset of the fetch layer adapters need when enrichment
// requires following a link to a second page.
type Fetcher interface {
	Fetch(ctx context.Context, req fetch.Request) (*fetch.Page, error)
}

// Adapter is one institution's scraping logic: candidate extraction from a
// listing page and enrichment from a profile page. Both are best-effort DOM
// heuristics; a candidate that cannot be parsed is skipped, never fatal.
type Adapter interface {
	// Institution returns the registry key, e.g. "stanford".
	Institution() string

	// ListCandidates parses a listing page into candidate records. Results
	// are deduplicated by name within the page, first occurrence wins.
	ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord

	// Enrich extracts contact and research fields from a profile page.
	Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment
}

// Paginator is an optional interface for adapters whose listing pages
// paginate. NextPage returns the absolute URL of the following page, or ""
// when there is none.
type Paginator interface {
	NextPage(doc *goquery.Document, pageURL string) string
}

// Registry maps institutions to adapters and profile-URL domains to
// enrichers.
type Registry struct {
	adapters map[string]Adapter
	order    []string
	// domains maps a URL substring (e.g. "stanford.edu") to an institution.
	domains map[string]string
	generic Adapter
}

// NewRegistry creates an empty registry with the given generic fallback
// enricher.
func NewRegistry(generic Adapter) *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
		domains:  make(map[string]string),
		generic:  generic,
	}
}

// Register adds an adapter under its institution key, matching profile URLs
// containing any of the given domain substrings.
func (r *Registry) Register(a Adapter, domains ...string) {
	key := a.Institution()
	r.adapters[key] = a
	r.order = append(r.order, key)
	for _, d := range domains {
		r.domains[d] = key
	}
}

// ForInstitution returns the adapter registered for the given key.
func (r *Registry) ForInstitution(key string) (Adapter, error) {
	a, ok := r.adapters[key]
	if !ok {
		return nil, eris.Errorf("site: unknown institution %q", key)
	}
	return a, nil
}

// EnricherFor picks the enricher for a profile URL by domain match, falling
// back to the generic enricher for URLs outside every known institution.
func (r *Registry) EnricherFor(profileURL string) Adapter {
	for domain, key := range r.domains {
		if strings.Contains(profileURL, domain) {
			return r.adapters[key]
		}
	}
	return r.generic
}

// Institutions returns all registered institution keys in registration
// order.
func (r *Registry) Institutions() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Default builds the registry covering every configured institution. The
// fetcher is used by adapters that re-fetch a canonical profile page during
// enrichment.
func Default(f Fetcher) *Registry {
	generic := NewGeneric()
	r := NewRegistry(generic)
	r.Register(NewStanford(f), "stanford.edu")
	r.Register(NewMIT(), "mit.edu")
	r.Register(NewHarvard(), "harvard.edu")
	r.Register(NewYale(), "yale.edu")
	r.Register(NewPrinceton(), "princeton.edu")
	r.Register(NewUChicago(), "uchicago.edu")
	r.Register(NewNorthwestern(), "northwestern.edu")
	r.Register(NewBerkeley(), "berkeley.edu")
	r.Register(NewCaltech(), "caltech.edu")
	return r
}
