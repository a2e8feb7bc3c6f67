package site

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/model"
)

// MIT covers the DMSE faculty directory.
type MIT struct{}

func NewMIT() *MIT { return &MIT{} }

func (m *MIT) Institution() string { return "mit" }

func (m *MIT) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	return scanCards(doc, pageURL, []cardSpec{
		{card: ".person-card", nameSel: "h3 a, h2 a", titleSel: ".person-card__title"},
		{card: ".views-row", nameSel: "h3 a, h2 a", titleSel: ".field--name-field-title"},
		{card: "li.people-list__item", nameSel: "a", titleSel: "p"},
	})
}

func (m *MIT) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}
