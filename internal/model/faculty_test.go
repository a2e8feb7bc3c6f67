package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameKey(t *testing.T) {
	r := FacultyRecord{Name: "  Jane Smith "}
	assert.Equal(t, "jane smith", r.NameKey())
}

func TestSources(t *testing.T) {
	r := FacultyRecord{
		DepartmentSource:  "A",
		DepartmentSources: []string{"B", "C"},
	}
	assert.Equal(t, []string{"A", "B", "C"}, r.Sources())

	merged := FacultyRecord{
		DepartmentSource:  "A",
		DepartmentSources: []string{"A", "B"},
	}
	assert.Equal(t, []string{"A", "B"}, merged.Sources(), "department_source repeated in the union counts once")

	empty := FacultyRecord{}
	assert.Empty(t, empty.Sources())
}

func TestEnrichmentApplyNeverOverwrites(t *testing.T) {
	r := FacultyRecord{
		Name:              "Jane Smith",
		Email:             "existing@stanford.edu",
		ResearchInterests: []string{"Catalysis"},
	}
	e := Enrichment{
		Email:             "new@stanford.edu",
		Phone:             "650-555-0100",
		ResearchInterests: []string{"Other"},
	}

	e.Apply(&r)

	assert.Equal(t, "existing@stanford.edu", r.Email, "populated field untouched")
	assert.Equal(t, "650-555-0100", r.Phone, "empty field filled")
	assert.Equal(t, []string{"Catalysis"}, r.ResearchInterests)
}

func TestEnrichmentIsEmpty(t *testing.T) {
	assert.True(t, Enrichment{}.IsEmpty())
	assert.False(t, Enrichment{Phone: "x"}.IsEmpty())
	assert.False(t, Enrichment{TopPublications: []string{"p"}}.IsEmpty())
}

func TestTargetByKey(t *testing.T) {
	s, ok := TargetByKey("yale_chemistry")
	assert.True(t, ok)
	assert.Equal(t, "yale", s.Institution)

	_, ok = TargetByKey("nope")
	assert.False(t, ok)
}
