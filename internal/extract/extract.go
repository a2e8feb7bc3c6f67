// Package extract holds the field-extraction heuristics shared by the
// profile enrichers. Detection rules for contact details are mostly
// site-agnostic: mailto/tel links first, visible-text regexes second.
package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	emailRe          = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	emailBracketObRe = regexp.MustCompile(`(?i)[\w.\-]+\s*\[at\]\s*[\w.\-]+\s*\[dot\]\s*\w+`)
	emailParenObRe   = regexp.MustCompile(`(?i)[\w.\-]+\s*\(at\)\s*[\w.\-]+\s*\(dot\)\s*\w+`)

	atBracketRe  = regexp.MustCompile(`(?i)\s*\[at\]\s*`)
	atParenRe    = regexp.MustCompile(`(?i)\s*\(at\)\s*`)
	dotBracketRe = regexp.MustCompile(`(?i)\s*\[dot\]\s*`)
	dotParenRe   = regexp.MustCompile(`(?i)\s*\(dot\)\s*`)

	phoneRe = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	homepageTextRe = regexp.MustCompile(`(?i)web\s*page|personal|homepage`)
	adminTextRe    = regexp.MustCompile(`(?i)administrative\s*contact|assistant|coordinator`)
)

// socialDomains are never a lab website, whatever the link text says.
var socialDomains = []string{"linkedin", "twitter", "facebook", "youtube", "instagram"}

// Email returns the first email address on the page: mailto links win,
// then plain-text matches, then [at]/(dot) obfuscated variants which are
// normalized before returning.
func Email(doc *goquery.Document) string {
	email := ""
	doc.Find(`a[href*="mailto:"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		addr := strings.TrimSpace(strings.TrimPrefix(s.AttrOr("href", ""), "mailto:"))
		if strings.Contains(addr, "@") {
			// Strip any ?subject= style suffix.
			email = strings.SplitN(addr, "?", 2)[0]
			return false
		}
		return true
	})
	if email != "" {
		return email
	}

	text := doc.Text()
	for _, re := range []*regexp.Regexp{emailRe, emailBracketObRe, emailParenObRe} {
		if m := re.FindString(text); m != "" {
			return deobfuscate(m)
		}
	}
	return ""
}

func deobfuscate(email string) string {
	email = atBracketRe.ReplaceAllString(email, "@")
	email = atParenRe.ReplaceAllString(email, "@")
	email = dotBracketRe.ReplaceAllString(email, ".")
	email = dotParenRe.ReplaceAllString(email, ".")
	return email
}

// Phone returns the first phone number: tel links win, then a
// North-American-style pattern in visible text.
func Phone(doc *goquery.Document) string {
	phone := ""
	doc.Find(`a[href*="tel:"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		p := strings.TrimSpace(strings.TrimPrefix(s.AttrOr("href", ""), "tel:"))
		if p != "" {
			phone = p
			return false
		}
		return true
	})
	if phone != "" {
		return phone
	}
	return phoneRe.FindString(doc.Text())
}

// LabWebsite returns the lab / research-group link: first a link whose
// visible text mentions lab, research, group, or website (skipping social
// media), then a "web page" / "personal" / "homepage" link.
func LabWebsite(doc *goquery.Document, baseURL string) string {
	keywords := []string{"lab", "research", "group", "website"}

	found := ""
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		href := s.AttrOr("href", "")
		for _, kw := range keywords {
			if !strings.Contains(text, kw) {
				continue
			}
			lowerHref := strings.ToLower(href)
			for _, social := range socialDomains {
				if strings.Contains(lowerHref, social) {
					return true
				}
			}
			found = Resolve(baseURL, href)
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if homepageTextRe.MatchString(s.Text()) {
			found = Resolve(baseURL, s.AttrOr("href", ""))
			return false
		}
		return true
	})
	return found
}

// GoogleScholar returns the first link into scholar.google.
func GoogleScholar(doc *goquery.Document) string {
	return doc.Find(`a[href*="scholar.google"]`).First().AttrOr("href", "")
}

// AssistantEmail returns the mailto address inside an administrative
// contact / assistant / coordinator block, if one exists.
func AssistantEmail(doc *goquery.Document) string {
	email := ""
	doc.Find("div, li, section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !adminTextRe.MatchString(s.Text()) {
			return true
		}
		mailto := s.Find(`a[href*="mailto:"]`).First()
		if mailto.Length() == 0 {
			return true
		}
		addr := strings.TrimPrefix(mailto.AttrOr("href", ""), "mailto:")
		email = strings.SplitN(strings.TrimSpace(addr), "?", 2)[0]
		return false
	})
	return email
}

// Resolve resolves href against base. A failed parse returns href as-is:
// a half-usable absolute URL beats dropping the field.
func Resolve(base, href string) string {
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
