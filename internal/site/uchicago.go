package site

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/model"
)

// UChicago covers the PME faculty grid, rendered client side and fetched
// through the browser.
type UChicago struct{}

func NewUChicago() *UChicago { return &UChicago{} }

func (u *UChicago) Institution() string { return "uchicago" }

func (u *UChicago) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	recs := scanCards(doc, pageURL, []cardSpec{
		{card: ".faculty-card", nameSel: "h3 a, h2 a", titleSel: ".faculty-card__title"},
	})
	if len(recs) > 0 {
		return recs
	}

	// Fallback: bare faculty links whose card markup drifted. The link text
	// is the name and the nearest following text block the title.
	var out []model.FacultyRecord
	doc.Find(`a[href^="/faculty/"], a[href*="uchicago.edu/faculty/"]`).Each(func(_ int, link *goquery.Selection) {
		name := firstNonEmpty(link.Find("h3").Text(), link.Text())
		href, _ := link.Attr("href")
		title := link.Parent().Find("p, .title, span").First().Text()
		if rec, ok := cardCandidate(name, title, href, pageURL); ok {
			out = append(out, rec)
		}
	})
	return dedupeCandidates(out)
}

func (u *UChicago) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}
