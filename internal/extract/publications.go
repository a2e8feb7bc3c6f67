package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxPublications = 5
	minPubLen       = 10
	maxPubLen       = 500
	pubTruncateLen  = 300
)

var pubHeadingRe = regexp.MustCompile(`(?i)publication|paper|research`)

// Publications collects up to five publication titles from a profile page.
// The section is located by class-name heuristic first, then by a nearby
// heading matching publication/paper/research.
func Publications(doc *goquery.Document) []string {
	section := doc.Find(`section[class*="publication"], div[class*="publication"]`).First()
	if section.Length() == 0 {
		doc.Find("h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if pubHeadingRe.MatchString(s.Text()) {
				section = s.Closest("section, div")
				return false
			}
			return true
		})
	}
	if section == nil || section.Length() == 0 {
		return nil
	}

	items := section.Find(`li[class*="item"], li[class*="pub"], article[class*="pub"], div[class*="pub-item"]`)
	if items.Length() == 0 {
		items = section.Find("li")
	}

	var pubs []string
	items.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := strings.TrimSpace(s.Text())
		// Keep the first line only; list items often append venue and year
		// on following lines.
		if idx := strings.IndexByte(title, '\n'); idx >= 0 {
			title = strings.TrimSpace(title[:idx])
		}
		if len(title) > minPubLen && len(title) < maxPubLen {
			if len(title) > pubTruncateLen {
				title = title[:pubTruncateLen]
			}
			pubs = append(pubs, title)
		}
		return len(pubs) < maxPublications
	})
	return pubs
}
