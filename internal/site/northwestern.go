package site

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sells-group/faculty-cli/internal/model"
)

// Northwestern covers the Chemistry people grid (browser rendered,
// article.people cards) and the MSE directory, whose markup carries titles
// as loose text nodes next to the name link rather than in a dedicated
// element.
type Northwestern struct{}

func NewNorthwestern() *Northwestern { return &Northwestern{} }

func (n *Northwestern) Institution() string { return "northwestern" }

func (n *Northwestern) ListCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	recs := scanCards(doc, pageURL, []cardSpec{
		{card: "article.people", nameSel: "h2 a, h3 a", titleSel: "p"},
		{card: ".people-item", nameSel: "a", titleSel: ".people-title"},
	})
	if len(recs) > 0 {
		return recs
	}
	return n.looseTextCandidates(doc, pageURL)
}

// looseTextCandidates handles the MSE layout: a profile link followed by
// sibling text containing the word Professor somewhere in the same block.
func (n *Northwestern) looseTextCandidates(doc *goquery.Document, pageURL string) []model.FacultyRecord {
	var out []model.FacultyRecord
	doc.Find(`a[href*="/faculty/"], a[href*="/people/"]`).Each(func(_ int, link *goquery.Selection) {
		name := link.Text()
		href, _ := link.Attr("href")
		block := link.Parent().Text()
		title := titleNear(block, name)
		if rec, ok := cardCandidate(name, title, href, pageURL); ok {
			out = append(out, rec)
		}
	})
	return dedupeCandidates(out)
}

// titleNear pulls the first Professor-bearing line out of a text block,
// skipping the line that is the name itself.
func titleNear(block, name string) string {
	for _, line := range strings.Split(block, "\n") {
		line = collapseSpace(line)
		if line == "" || strings.EqualFold(line, collapseSpace(name)) {
			continue
		}
		if strings.Contains(line, "Professor") {
			return line
		}
	}
	return ""
}

func (n *Northwestern) Enrich(ctx context.Context, doc *goquery.Document, pageURL string) model.Enrichment {
	return enrichCommon(doc, pageURL)
}
