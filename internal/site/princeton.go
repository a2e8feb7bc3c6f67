package site

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/model"
)

// Princeton covers the CBE faculty directory, which serves full markup to
// the crawler user agent.
type Princeton struct{}

func NewPrinceton() *Princeton { return &Princeton{} }

func (p *Princeton) Institution() string { return "princeton" }

func (p *Princeton) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	return scanCards(doc, pageURL, []cardSpec{
		{card: ".views-row", nameSel: "h2 a, h3 a", titleSel: ".field--name-field-ps-people-title"},
		{card: ".people-list-item", nameSel: "a", titleSel: ".people-title"},
	})
}

func (p *Princeton) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}
