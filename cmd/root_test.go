package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/faculty-cli/internal/model"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestSitesCommand(t *testing.T) {
	out := execute(t, "sites")

	assert.Contains(t, out, "stanford_cheme")
	assert.Contains(t, out, "harvard_seas")
	assert.Contains(t, out, "browser")
	assert.Contains(t, out, "https://cheme.stanford.edu/people/faculty")
}

func TestSitesCommandYAML(t *testing.T) {
	out := execute(t, "sites", "--yaml")

	var sites []model.Site
	require.NoError(t, yaml.Unmarshal([]byte(out), &sites))
	assert.Len(t, sites, len(model.Targets()))
	assert.Equal(t, "stanford_cheme", sites[0].Key)
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "faculty-cli")
}
