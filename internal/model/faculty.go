package model

import "strings"

// FacultyRecord is a single faculty contact accumulated across pipeline
// stages. Stage 1 populates the identity fields; Stage 2 adds enrichment
// fields; the dedupe pass may merge same-named records from other sites.
// JSON field names match the legacy crawler's output so existing
// faculty_data.json files seed cleanly on re-runs.
type FacultyRecord struct {
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	ProfileURL        string   `json:"profile_url"`
	DepartmentSource  string   `json:"department_source"`
	DepartmentSources []string `json:"department_sources,omitempty"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	AssistantEmail    string   `json:"assistant_email"`
	LabWebsite        string   `json:"lab_website"`
	GoogleScholar     string   `json:"google_scholar"`
	TopPublications   []string `json:"top_publications"`
	ResearchInterests []string `json:"research_interests"`
}

// NameKey returns the dedupe join key: the lowercased, trimmed name.
// It is the sole identity; two people sharing a name will collide.
func (r *FacultyRecord) NameKey() string {
	return strings.ToLower(strings.TrimSpace(r.Name))
}

// Sources returns every listing page this record was seen on, deduplicated:
// the original department source plus any sources accumulated by merges.
// Merged records repeat the department source inside department_sources, so
// both fields feed the same set.
func (r *FacultyRecord) Sources() []string {
	var out []string
	seen := make(map[string]bool, 1+len(r.DepartmentSources))
	for _, s := range append([]string{r.DepartmentSource}, r.DepartmentSources...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Enrichment is the fixed-shape result of a Stage-2 profile visit.
type Enrichment struct {
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	AssistantEmail    string   `json:"assistant_email"`
	LabWebsite        string   `json:"lab_website"`
	GoogleScholar     string   `json:"google_scholar"`
	TopPublications   []string `json:"top_publications"`
	ResearchInterests []string `json:"research_interests"`
}

// Apply copies enrichment values onto a record. Fields are only ever added:
// a value already present on the record is never overwritten.
func (e Enrichment) Apply(r *FacultyRecord) {
	if r.Email == "" {
		r.Email = e.Email
	}
	if r.Phone == "" {
		r.Phone = e.Phone
	}
	if r.AssistantEmail == "" {
		r.AssistantEmail = e.AssistantEmail
	}
	if r.LabWebsite == "" {
		r.LabWebsite = e.LabWebsite
	}
	if r.GoogleScholar == "" {
		r.GoogleScholar = e.GoogleScholar
	}
	if len(r.TopPublications) == 0 {
		r.TopPublications = e.TopPublications
	}
	if len(r.ResearchInterests) == 0 {
		r.ResearchInterests = e.ResearchInterests
	}
}

// IsEmpty reports whether the enrichment carries no data at all.
func (e Enrichment) IsEmpty() bool {
	return e.Email == "" && e.Phone == "" && e.AssistantEmail == "" &&
		e.LabWebsite == "" && e.GoogleScholar == "" &&
		len(e.TopPublications) == 0 && len(e.ResearchInterests) == 0
}
