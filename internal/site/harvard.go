package site

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/model"
)

// Harvard covers the Chemistry directory and the SEAS people listing. SEAS
// renders its grid client side, so its page arrives via the browser fetcher,
// but by the time it reaches the adapter both are plain documents.
type Harvard struct{}

func NewHarvard() *Harvard { return &Harvard{} }

func (h *Harvard) Institution() string { return "harvard" }

func (h *Harvard) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	return scanCards(doc, pageURL, []cardSpec{
		// Chemistry directory cards.
		{card: ".views-row", nameSel: "h2 a, h3 a", titleSel: ".field--name-field-person-title"},
		// SEAS people grid after hydration.
		{card: ".person-teaser", nameSel: "a[href*='/people/']", titleSel: ".person-teaser__title"},
		{card: "article", nameSel: "a[href*='/people/']", titleSel: "p"},
	})
}

func (h *Harvard) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}
