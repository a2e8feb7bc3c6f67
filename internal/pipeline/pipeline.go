// Package pipeline orchestrates the two-stage crawl: listing pages produce a
// frozen manifest of candidates, profile pages enrich them, and a final merge
// collapses same-named records from different sites into one.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/faculty-cli/internal/fetch"
	"github.com/sells-group/faculty-cli/internal/model"
	"github.com/sells-group/faculty-cli/internal/site"
)

// maxListingPages caps paginated listings so a broken pager cannot loop the
// crawl forever.
const maxListingPages = 10

// Options control a run.
type Options struct {
	// Sites restricts the crawl to the given site keys. Empty means all.
	Sites []string
	// SkipEnrich stops after Stage 1; records carry only listing-page fields.
	SkipEnrich bool
	// NoBrowser skips browser-mode sites instead of launching a headless
	// browser for them.
	NoBrowser bool
	// Seed records from a previous run are merged into the final output, so
	// re-runs add to earlier results instead of replacing them.
	Seed []model.FacultyRecord
}

// Pipeline wires fetchers and the adapter registry into a runnable crawl.
type Pipeline struct {
	static   fetch.Fetcher
	browser  fetch.Fetcher
	registry *site.Registry
	opts     Options
}

// New assembles a pipeline. browser may be nil when Options.NoBrowser is set.
func New(static, browser fetch.Fetcher, registry *site.Registry, opts Options) *Pipeline {
	return &Pipeline{static: static, browser: browser, registry: registry, opts: opts}
}

// Result is a finished run: the merged records plus the run report.
type Result struct {
	Records []model.FacultyRecord
	Report  model.RunReport
}

// Run executes the full crawl. Individual site failures are recorded in the
// report and never abort the run; Run itself only errors when site selection
// fails outright.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	report := model.RunReport{
		ID:            uuid.NewString(),
		StartedAt:     start,
		SeededRecords: len(p.opts.Seed),
	}

	sites, err := p.selectSites()
	if err != nil {
		return nil, err
	}

	manifest := p.stage1(ctx, sites, &report)
	report.ManifestSize = len(manifest)

	if !p.opts.SkipEnrich {
		report.Enriched = p.stage2(ctx, manifest)
	}

	records := Merge(append(append([]model.FacultyRecord{}, p.opts.Seed...), manifest...))
	report.TotalRecords = len(records)
	report.Duration = time.Since(start)

	zap.L().Info("run complete",
		zap.String("run_id", report.ID),
		zap.Int("manifest", report.ManifestSize),
		zap.Int("enriched", report.Enriched),
		zap.Int("records", report.TotalRecords),
		zap.Duration("took", report.Duration))

	return &Result{Records: records, Report: report}, nil
}

func (p *Pipeline) selectSites() ([]model.Site, error) {
	if len(p.opts.Sites) == 0 {
		return model.Targets(), nil
	}
	var out []model.Site
	for _, key := range p.opts.Sites {
		s, ok := model.TargetByKey(key)
		if !ok {
			return nil, eris.Errorf("pipeline: unknown site key %q", key)
		}
		out = append(out, s)
	}
	return out, nil
}

// stage1 walks every selected listing page and returns the candidate
// manifest. The manifest is frozen before enrichment begins: Stage 2 never
// adds or removes entries, only fills fields in.
func (p *Pipeline) stage1(ctx context.Context, sites []model.Site, report *model.RunReport) []model.FacultyRecord {
	var manifest []model.FacultyRecord
	for _, s := range sites {
		res := model.SiteResult{Key: s.Key}
		recs, err := p.crawlSite(ctx, s)
		if err != nil {
			res.Failed = true
			res.Error = err.Error()
			zap.L().Warn("site crawl failed", zap.String("site", s.Key), zap.Error(err))
		}
		for i := range recs {
			recs[i].DepartmentSource = s.URL
		}
		res.Candidates = len(recs)
		manifest = append(manifest, recs...)
		report.Sites = append(report.Sites, res)
		zap.L().Info("site crawled", zap.String("site", s.Key), zap.Int("candidates", res.Candidates))
	}
	return manifest
}

// crawlSite fetches one site's listing, following pagination when the
// adapter supports it. Pages fetched before a failure still contribute.
func (p *Pipeline) crawlSite(ctx context.Context, s model.Site) ([]model.FacultyRecord, error) {
	adapter, err := p.registry.ForInstitution(s.Institution)
	if err != nil {
		return nil, err
	}

	fetcher, req, err := p.requestFor(s)
	if err != nil {
		return nil, err
	}

	var out []model.FacultyRecord
	pageURL := s.URL
	for page := 0; page < maxListingPages && pageURL != ""; page++ {
		req.URL = pageURL
		fetched, err := fetcher.Fetch(ctx, req)
		if err != nil {
			return out, eris.Wrapf(err, "pipeline: fetch listing page %s", pageURL)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(fetched.HTML))
		if err != nil {
			return out, eris.Wrapf(err, "pipeline: parse listing page %s", pageURL)
		}
		out = append(out, adapter.ListCandidates(doc, fetched.FinalURL)...)

		pageURL = ""
		if pg, ok := adapter.(site.Paginator); ok {
			pageURL = pg.NextPage(doc, fetched.FinalURL)
		}
	}
	return out, nil
}

// requestFor maps a site's fetch mode onto a fetcher and request template.
func (p *Pipeline) requestFor(s model.Site) (fetch.Fetcher, fetch.Request, error) {
	switch s.Mode {
	case model.FetchStatic:
		return p.static, fetch.Request{}, nil
	case model.FetchGooglebot:
		return p.static, fetch.Request{UserAgent: fetch.GooglebotUA}, nil
	case model.FetchBrowser:
		if p.opts.NoBrowser || p.browser == nil {
			return nil, fetch.Request{}, eris.Errorf("pipeline: site %s needs the browser, which is disabled", s.Key)
		}
		return p.browser, fetch.Request{WaitSelector: s.WaitSelector}, nil
	default:
		return nil, fetch.Request{}, eris.Errorf("pipeline: site %s has unknown fetch mode %q", s.Key, s.Mode)
	}
}

// stage2 visits each manifest record's profile page and fills in contact and
// research fields. A failed or empty profile visit leaves the record as
// Stage 1 produced it; records are never dropped here. Returns the number of
// records that gained at least one field.
func (p *Pipeline) stage2(ctx context.Context, manifest []model.FacultyRecord) int {
	enriched := 0
	for i := range manifest {
		rec := &manifest[i]
		if rec.ProfileURL == "" {
			continue
		}
		enr, err := p.enrichOne(ctx, rec.ProfileURL)
		if err != nil {
			zap.L().Warn("profile enrichment failed",
				zap.String("name", rec.Name),
				zap.String("url", rec.ProfileURL),
				zap.Error(err))
			continue
		}
		if enr.IsEmpty() {
			continue
		}
		enr.Apply(rec)
		enriched++
	}
	return enriched
}

func (p *Pipeline) enrichOne(ctx context.Context, profileURL string) (model.Enrichment, error) {
	req := fetch.Request{URL: profileURL}
	// Profile pages on crawler-gated domains need the same UA trick as
	// their listing pages.
	if gated(profileURL) {
		req.UserAgent = fetch.GooglebotUA
	}
	page, err := p.static.Fetch(ctx, req)
	if err != nil {
		return model.Enrichment{}, eris.Wrap(err, "pipeline: fetch profile")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return model.Enrichment{}, eris.Wrap(err, "pipeline: parse profile")
	}
	enricher := p.registry.EnricherFor(page.FinalURL)
	return enricher.Enrich(ctx, doc, page.FinalURL), nil
}

// gated reports whether a URL lives on a domain that only serves full HTML
// to crawler user agents.
func gated(url string) bool {
	return strings.Contains(url, "princeton.edu") ||
		strings.Contains(url, "berkeley.edu") ||
		strings.Contains(url, "northwestern.edu") ||
		strings.Contains(url, "uchicago.edu")
}
