// Package validate holds the predicate functions that decide whether scraped
// text is a plausible person name or an acceptable professorial title.
// Listing pages mix real faculty entries with navigation links and section
// headers; these filters are what keep "View All Faculty" out of the manifest.
package validate

import "strings"

// invalidNames are section headers and navigation phrases that listing pages
// present in the same markup as person names.
var invalidNames = []string{
	"courtesy appointments",
	"emeritus",
	"emerita",
	"lecturer",
	"lecturers",
	"staff",
	"faculty in memoriam",
	"in memoriam",
	"visiting faculty",
	"adjunct",
	"by courtesy",
	"graduate students",
	"postdocs",
	"research scientists",
	"administrative",
	"incoming",
	"faculty",
	"people",
	"all",
	"view",
}

// suspicious substrings mark link text rather than a name.
var suspicious = []string{"http", "www", ".com", ".edu", "click", "more", "view all"}

// includeTitles admit a record into the manifest when matched.
var includeTitles = []string{
	"Professor",
	"Assistant Professor",
	"Associate Professor",
	"Department Chair",
	"Department Head",
}

// excludeKeywords veto a title outright, even when an include keyword is
// also present.
var excludeKeywords = []string{
	"Lecturer",
	"Adjunct",
	"Instructor",
	"Staff",
	"Emeritus",
	"Visiting",
	"By Courtesy",
	"Courtesy",
	"Professor of the Practice",
}

// Name reports whether text looks like a real person name rather than a
// navigation link or section header.
func Name(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if len(lower) < 3 || len(lower) > 60 {
		return false
	}

	// Denylist phrases match on whole words anywhere in the text, so
	// "Department Staff" is caught without tripping on names like "Allan".
	padded := " " + strings.Join(strings.Fields(lower), " ") + " "
	for _, invalid := range invalidNames {
		if strings.Contains(padded, " "+invalid+" ") {
			return false
		}
	}

	// Most names are "First Last". A single token is admitted only when it
	// is short, so compact non-Western names written as one token pass.
	words := strings.Fields(lower)
	if len(words) == 1 && len(words[0]) > 15 {
		return false
	}

	for _, s := range suspicious {
		if strings.Contains(lower, s) {
			return false
		}
	}

	return true
}

// ProfessorTitle reports whether an academic title should be kept. Exclusion
// is checked first and is absolute: an excluded keyword anywhere in the title
// vetoes it even if an include keyword also matches.
func ProfessorTitle(title string) bool {
	if title == "" {
		return false
	}
	lower := strings.ToLower(title)

	for _, exclude := range excludeKeywords {
		if strings.Contains(lower, strings.ToLower(exclude)) {
			return false
		}
	}
	for _, include := range includeTitles {
		if strings.Contains(lower, strings.ToLower(include)) {
			return true
		}
	}
	return false
}
