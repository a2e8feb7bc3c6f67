package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxInterests = 5

// stanfordHeaders are the section titles Stanford profile pages use for
// research areas, in preference order.
var stanfordHeaders = []string{
	"Research & Scholarship",
	"Research Interests",
	"Research Focus",
	"Areas of Expertise",
	"Research Areas",
	"Expertise",
}

var genericInterestHeaderRe = regexp.MustCompile(`(?i)research\s*interest|research\s*area|expertise|specialization`)

// interestDenylist filters navigation and boilerplate out of candidate
// interest strings.
var interestDenylist = []string{
	"stanford profile", "official site", "postdoc", "student",
	"click here", "learn more", "read more", "view all",
	"contact", "email", "phone", "is part of",
}

// sectionSkipWords reject obviously non-interest text inside an explicit
// research section.
var sectionSkipWords = []string{"click", "view", "page", "profile", "contact", "email"}

// ResearchInterests extracts up to five research interests from a profile
// page. An institution-specific section search runs first (chosen by the
// profile URL's domain), then a generic header probe, then keyword spotting
// against the research vocabulary as a last resort.
func ResearchInterests(doc *goquery.Document, profileURL string) []string {
	var interests []string

	switch {
	case strings.Contains(profileURL, "stanford.edu"):
		interests = stanfordInterests(doc)
	case strings.Contains(profileURL, "mit.edu"):
		interests = mitInterests(doc)
	}

	if len(interests) == 0 {
		interests = genericInterests(doc)
	}

	return cleanInterests(interests)
}

func stanfordInterests(doc *goquery.Document) []string {
	var section *goquery.Selection
	for _, header := range stanfordHeaders {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(header))
		doc.Find("h2, h3, h4").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if re.MatchString(s.Text()) {
				section = s.Closest("section, div")
				return false
			}
			return true
		})
		if section != nil {
			break
		}
	}

	var interests []string
	if section != nil {
		section.Find("p, li, span").Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) <= 10 || len(text) >= 200 {
				return
			}
			lower := strings.ToLower(text)
			for _, skip := range sectionSkipWords {
				if strings.Contains(lower, skip) {
					return
				}
			}
			interests = append(interests, text)
		})
	}

	// No explicit research section: fall back to spotting vocabulary terms
	// in the bio.
	if len(interests) == 0 {
		bio := doc.Find(`div[class*="bio"], section[class*="bio"]`).First()
		if bio.Length() > 0 {
			interests = append(interests, Keywords(bio.Text())...)
		}
	}
	return interests
}

func mitInterests(doc *goquery.Document) []string {
	var interests []string
	for _, class := range []string{"research", "bio", "description", "about"} {
		section := doc.Find(`div[class*="` + class + `"], section[class*="` + class + `"], article[class*="` + class + `"]`).First()
		if section.Length() == 0 {
			continue
		}
		section.Find("p").Each(func(_ int, p *goquery.Selection) {
			text := strings.TrimSpace(p.Text())
			if len(text) > 20 && len(text) < 300 {
				interests = append(interests, Keywords(text)...)
			}
		})
		break
	}
	return interests
}

func genericInterests(doc *goquery.Document) []string {
	var interests []string
	doc.Find("h2, h3, h4, strong, b").EachWithBreak(func(_ int, header *goquery.Selection) bool {
		if !genericInterestHeaderRe.MatchString(header.Text()) {
			return true
		}
		parent := header.Closest("div, section, li")
		if parent.Length() == 0 {
			return true
		}
		headerText := strings.TrimSpace(header.Text())
		parent.Find("li, p, span").Each(func(_ int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			if len(text) > 5 && len(text) < 100 && text != headerText {
				interests = append(interests, text)
			}
		})
		return len(interests) == 0
	})
	return interests
}

// cleanInterests drops denylisted strings and deduplicates
// case-insensitively, capping the result at five.
func cleanInterests(interests []string) []string {
	var cleaned []string
	seen := make(map[string]struct{})
	for _, interest := range interests {
		lower := strings.ToLower(interest)
		skip := false
		for _, deny := range interestDenylist {
			if strings.Contains(lower, deny) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		interest = strings.TrimSpace(interest)
		key := strings.ToLower(interest)
		if _, dup := seen[key]; dup || len(interest) <= 3 || len(interest) >= 100 {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, interest)
		if len(cleaned) == maxInterests {
			break
		}
	}
	return cleaned
}
