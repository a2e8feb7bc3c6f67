package site

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/extract"
	"github.com/sells-group/faculty-cli/internal/model"
	"github.com/sells-group/faculty-cli/internal/validate"
)

// Generic is the fallback enricher applied to profile pages on domains no
// institution adapter claims. It runs the shared contact and research
// extractors and nothing site-specific.
type Generic struct{}

// NewGeneric creates the fallback enricher.
func NewGeneric() *Generic { return &Generic{} }

func (g *Generic) Institution() string { return "generic" }

// ListCandidates is a no-op; the generic adapter only enriches.
func (g *Generic) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	return nil
}

func (g *Generic) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}

// enrichCommon runs the extractors every institution shares. Adapters call
// it first and then layer site-specific fields on top.
func enrichCommon(doc *goquery.Document, pageURL string) model.Enrichment {
	return model.Enrichment{
		Email:             extract.Email(doc),
		Phone:             extract.Phone(doc),
		AssistantEmail:    extract.AssistantEmail(doc),
		LabWebsite:        extract.LabWebsite(doc, pageURL),
		GoogleScholar:     extract.GoogleScholar(doc),
		TopPublications:   extract.Publications(doc),
		ResearchInterests: extract.ResearchInterests(doc, pageURL),
	}
}

// cardCandidate builds a validated candidate from a listing-card name,
// title, and href. A card with no title text defaults to "Professor", since
// grids that omit titles list faculty only. A card with no href keeps the
// listing page itself as the profile URL. Returns false when the name or
// title fails validation. The department source is stamped later by the
// pipeline, which knows which site the page came from.
func cardCandidate(name, title, href, pageURL string) (model.FacultyRecord, bool) {
	name = collapseSpace(name)
	title = collapseSpace(title)
	if title == "" {
		title = "Professor"
	}
	if !validate.Name(name) || !validate.ProfessorTitle(title) {
		return model.FacultyRecord{}, false
	}
	rec := model.FacultyRecord{
		Name:       name,
		Title:      title,
		ProfileURL: pageURL,
	}
	if href != "" {
		rec.ProfileURL = extract.Resolve(pageURL, href)
	}
	return rec, true
}

// dedupeCandidates keeps the first occurrence of each name key within a
// single listing page.
func dedupeCandidates(in []model.FacultyRecord) []model.FacultyRecord {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, r := range in {
		k := r.NameKey()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// cardSpec is one listing-page layout attempt: a card container selector
// plus name and title selectors scoped inside each card. An empty titleSel
// means the card's remaining text after the name.
type cardSpec struct {
	card     string
	nameSel  string
	titleSel string
}

// scanCards tries each spec in order and returns the candidates from the
// first spec that yields any. Listing layouts drift; the ordered fallback
// keeps an adapter working across a redesign without a code change when a
// later spec still matches.
func scanCards(doc *goquery.Document, pageURL string, specs []cardSpec) []model.FacultyRecord {
	for _, spec := range specs {
		var out []model.FacultyRecord
		doc.Find(spec.card).Each(func(_ int, card *goquery.Selection) {
			link := card.Find(spec.nameSel).First()
			name := link.Text()
			href, ok := link.Attr("href")
			if !ok {
				href, _ = card.Find("a").First().Attr("href")
			}
			var title string
			if spec.titleSel != "" {
				title = card.Find(spec.titleSel).First().Text()
			} else {
				title = strings.TrimSpace(strings.Replace(card.Text(), link.Text(), "", 1))
			}
			if rec, ok := cardCandidate(name, title, href, pageURL); ok {
				out = append(out, rec)
			}
		})
		if len(out) > 0 {
			return dedupeCandidates(out)
		}
	}
	return nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstNonEmpty returns the first of its arguments with visible text.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
