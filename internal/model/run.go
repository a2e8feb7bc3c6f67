package model

import "time"

// SiteResult summarises one site's contribution to a run. Candidates counts
// the validated records the site put into the manifest.
type SiteResult struct {
	Key        string `json:"key"`
	Candidates int    `json:"candidates"`
	Failed     bool   `json:"failed"`
	Error      string `json:"error,omitempty"`
}

// RunReport is the outcome of a full pipeline run.
type RunReport struct {
	ID            string        `json:"id"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
	Sites         []SiteResult  `json:"sites"`
	ManifestSize  int           `json:"manifest_size"`
	Enriched      int           `json:"enriched"`
	SeededRecords int           `json:"seeded_records"`
	TotalRecords  int           `json:"total_records"`
}
