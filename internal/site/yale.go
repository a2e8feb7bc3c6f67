package site

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/model"
)

// Yale covers the Chemistry faculty directory.
type Yale struct{}

func NewYale() *Yale { return &Yale{} }

func (y *Yale) Institution() string { return "yale" }

func (y *Yale) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	return scanCards(doc, pageURL, []cardSpec{
		{card: ".views-row", nameSel: "h2 a, h3 a", titleSel: ".field-name-field-title"},
		{card: ".person", nameSel: "a[href*='/people/']", titleSel: ".title"},
	})
}

func (y *Yale) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}
