package site

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/model"
)

// Caltech covers the CCE listing (browser rendered) and the materials
// science directory.
type Caltech struct{}

func NewCaltech() *Caltech { return &Caltech{} }

func (c *Caltech) Institution() string { return "caltech" }

func (c *Caltech) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	return scanCards(doc, pageURL, []cardSpec{
		{card: ".person-directory-item", nameSel: "h3 a, h2 a", titleSel: ".person-title"},
		{card: ".views-row", nameSel: "h3 a, h2 a", titleSel: "p"},
		// The CCE grid shows no titles; the shared default covers it.
		{card: "li", nameSel: "a[href*='/people/']"},
	})
}

func (c *Caltech) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}
