package pipeline

import (
	"sort"
	"strings"

	"github.com/sells-group/faculty-cli/internal/model"
)

// completeness scores how much usable contact data a record carries. The
// weights favor a direct email above everything else; a primary-campus email
// beats a department-relay address when both candidates have one.
func completeness(r model.FacultyRecord) int {
	score := 0
	if r.Email != "" {
		score += 10
		if strings.HasSuffix(r.Email, "stanford.edu") || strings.HasSuffix(r.Email, "mit.edu") {
			score += 2
		}
	}
	if r.Phone != "" {
		score += 5
	}
	if len(r.TopPublications) > 0 {
		score += 3
	}
	score += len(r.ResearchInterests)
	return score
}

// Merge collapses records sharing a name key into one record each. The most
// complete record of a group becomes the base; the others fill its remaining
// gaps and contribute their department sources. Output order is the order in
// which each name was first seen, so seeded records keep their position
// across re-runs.
func Merge(in []model.FacultyRecord) []model.FacultyRecord {
	groups := make(map[string][]model.FacultyRecord)
	var order []string
	for _, r := range in {
		k := r.NameKey()
		if k == "" {
			continue
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := make([]model.FacultyRecord, 0, len(order))
	for _, k := range order {
		out = append(out, mergeGroup(groups[k]))
	}
	return out
}

func mergeGroup(group []model.FacultyRecord) model.FacultyRecord {
	// Stable sort keeps first-seen order among equally complete records.
	sort.SliceStable(group, func(i, j int) bool {
		return completeness(group[i]) > completeness(group[j])
	})

	base := group[0]
	sources := base.Sources()
	for _, other := range group[1:] {
		fillGaps(&base, other)
		sources = append(sources, other.Sources()...)
	}

	// department_sources carries the full deduped union, the survivor's own
	// source included; department_source stays the first source seen.
	base.DepartmentSources = nil
	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		if base.DepartmentSource == "" {
			base.DepartmentSource = s
		}
		base.DepartmentSources = append(base.DepartmentSources, s)
	}
	return base
}

// fillGaps copies fields the base record is missing from a less complete
// duplicate. The base's own values always win.
func fillGaps(base *model.FacultyRecord, other model.FacultyRecord) {
	if base.Title == "" {
		base.Title = other.Title
	}
	if base.ProfileURL == "" {
		base.ProfileURL = other.ProfileURL
	}
	if base.Email == "" {
		base.Email = other.Email
	}
	if base.Phone == "" {
		base.Phone = other.Phone
	}
	if base.AssistantEmail == "" {
		base.AssistantEmail = other.AssistantEmail
	}
	if base.LabWebsite == "" {
		base.LabWebsite = other.LabWebsite
	}
	if base.GoogleScholar == "" {
		base.GoogleScholar = other.GoogleScholar
	}
	if len(base.TopPublications) == 0 {
		base.TopPublications = other.TopPublications
	}
	if len(base.ResearchInterests) == 0 {
		base.ResearchInterests = other.ResearchInterests
	}
}
