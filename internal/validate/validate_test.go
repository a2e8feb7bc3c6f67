package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_Valid(t *testing.T) {
	for _, name := range []string{
		"Jane Smith",
		"Yi Cui",
		"Zhenan Bao",
		"John Doe Jr.",
		"O'Neill",
	} {
		assert.True(t, Name(name), "expected valid: %q", name)
	}
}

func TestName_Invalid(t *testing.T) {
	for _, name := range []string{
		"",
		"J",
		"View All Faculty",
		"Faculty",
		"faculty in memoriam",
		"Graduate Students",
		"Visiting Faculty Members",
		"click here",
		"https://cheme.stanford.edu",
		"Department Staff",     // denylist word mid-phrase
		"Supercalifragilistic", // single token, too long
	} {
		assert.False(t, Name(name), "expected invalid: %q", name)
	}
}

func TestName_DenylistEntries(t *testing.T) {
	for _, invalid := range invalidNames {
		assert.False(t, Name(invalid), "denylist entry should be rejected: %q", invalid)
	}
}

func TestProfessorTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"", false},
		{"Professor", true},
		{"Associate Professor", true},
		{"Assistant Professor of Chemistry", true},
		{"Department Chair", true},
		{"Department Head", true},
		{"Adjunct Professor", false},        // exclusion wins over inclusion
		{"Professor Emeritus", false},
		{"Visiting Professor", false},
		{"Senior Lecturer", false},
		{"Professor of the Practice", false},
		{"Professor, by Courtesy", false},
		{"Staff Scientist", false},
		{"associate professor", true}, // case-insensitive
		{"ADJUNCT PROFESSOR", false},
		{"Research Scientist", false}, // no include keyword
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProfessorTitle(tt.title), "title %q", tt.title)
	}
}
