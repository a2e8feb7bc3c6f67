package site

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/faculty-cli/internal/extract"
	"github.com/sells-group/faculty-cli/internal/fetch"
	"github.com/sells-group/faculty-cli/internal/model"
)

// Stanford covers the ChemE and MSE directories plus the paginated Doerr
// sustainability listing. Department profile pages are thin; when one links
// to the canonical profiles.stanford.edu page the enricher follows that link
// and extracts from the canonical page instead.
type Stanford struct {
	fetcher Fetcher
}

// NewStanford creates the Stanford adapter. The fetcher is used for the
// canonical-profile hop during enrichment and may be nil in tests.
func NewStanford(f Fetcher) *Stanford { return &Stanford{fetcher: f} }

func (s *Stanford) Institution() string { return "stanford" }

func (s *Stanford) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	var out []model.FacultyRecord

	// Stanford Sites "hb" theme cards, used by ChemE and MSE.
	doc.Find(".hb-card").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("h2 a, h3 a, .hb-card__title a").First()
		name := link.Text()
		href, _ := link.Attr("href")
		title := firstNonEmpty(
			card.Find(".hb-card__description").First().Text(),
			card.Find(".su-person-short-title").First().Text(),
		)
		if rec, ok := cardCandidate(name, title, href, pageURL); ok {
			out = append(out, rec)
		}
	})

	// Drupal views rows, used by the Doerr school directory.
	if len(out) == 0 {
		doc.Find(".views-row").Each(func(_ int, row *goquery.Selection) {
			link := row.Find("h3 a, h2 a, a[href*='/people/']").First()
			name := link.Text()
			href, _ := link.Attr("href")
			title := firstNonEmpty(
				row.Find(".views-field-su-person-short-title").First().Text(),
				row.Find(".su-person-short-title").First().Text(),
				row.Find("p").First().Text(),
			)
			if rec, ok := cardCandidate(name, title, href, pageURL); ok {
				out = append(out, rec)
			}
		})
	}

	return dedupeCandidates(out)
}

// NextPage follows the Drupal pager on the Doerr directory. The other
// Stanford listings are single pages and carry no pager markup.
func (s *Stanford) NextPage(doc *goquery.Document, pageURL string) string {
	href, ok := doc.Find("li.pager__item--next a").First().Attr("href")
	if !ok {
		return ""
	}
	return extract.Resolve(pageURL, href)
}

func (s *Stanford) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	if canonical := s.canonicalDoc(ctx, doc, pageURL); canonical != nil {
		enr := enrichCommon(canonical.doc, canonical.url)
		// The department page sometimes has contact fields the canonical
		// page omits, so it still fills any gaps.
		fallback := enrichCommon(doc, pageURL)
		mergeEnrichment(&enr, fallback)
		return enr
	}
	return enrichCommon(doc, pageURL)
}

type fetchedDoc struct {
	doc *goquery.Document
	url string
}

// canonicalDoc follows a profiles.stanford.edu link off a department
// profile page. Returns nil when there is no such link, the page already is
// the canonical profile, or the hop fails.
func (s *Stanford) canonicalDoc(ctx context.Context, doc *goquery.Document, pageURL string) *fetchedDoc {
	if s.fetcher == nil || strings.Contains(pageURL, "profiles.stanford.edu") {
		return nil
	}
	href, ok := doc.Find(`a[href*="profiles.stanford.edu"]`).First().Attr("href")
	if !ok {
		return nil
	}
	target := extract.Resolve(pageURL, href)
	page, err := s.fetcher.Fetch(ctx, fetch.Request{URL: target})
	if err != nil {
		zap.L().Warn("canonical profile fetch failed",
			zap.String("url", target), zap.Error(err))
		return nil
	}
	canonical, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		zap.L().Warn("canonical profile parse failed",
			zap.String("url", target), zap.Error(err))
		return nil
	}
	return &fetchedDoc{doc: canonical, url: page.FinalURL}
}

// mergeEnrichment fills empty fields of dst from src.
func mergeEnrichment(dst *model.Enrichment, src model.Enrichment) {
	if dst.Email == "" {
		dst.Email = src.Email
	}
	if dst.Phone == "" {
		dst.Phone = src.Phone
	}
	if dst.AssistantEmail == "" {
		dst.AssistantEmail = src.AssistantEmail
	}
	if dst.LabWebsite == "" {
		dst.LabWebsite = src.LabWebsite
	}
	if dst.GoogleScholar == "" {
		dst.GoogleScholar = src.GoogleScholar
	}
	if len(dst.TopPublications) == 0 {
		dst.TopPublications = src.TopPublications
	}
	if len(dst.ResearchInterests) == 0 {
		dst.ResearchInterests = src.ResearchInterests
	}
}
