package site

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/model"
)

// Berkeley covers the CBE and MSE directories. Both sit behind a crawler
// gate and are fetched with the crawler user agent.
type Berkeley struct{}

func NewBerkeley() *Berkeley { return &Berkeley{} }

func (b *Berkeley) Institution() string { return "berkeley" }

func (b *Berkeley) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	return scanCards(doc, pageURL, []cardSpec{
		{card: ".views-row", nameSel: "h2 a, h3 a", titleSel: ".field--name-field-title"},
		{card: ".person", nameSel: "a[href*='/people/'], a[href*='/faculty/']", titleSel: ".person-title, p"},
	})
}

func (b *Berkeley) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}
