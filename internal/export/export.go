// Package export persists the merged record set as JSON, CSV, or XLSX. The
// JSON file doubles as the seed input for additive re-runs, so its field
// names never change; the tabular formats flatten list fields into delimited
// cells for spreadsheet use.
package export

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/sells-group/faculty-cli/internal/model"
)

// preferredColumns is the fixed column prefix of the tabular exports. Fields
// not in this list are appended after it in sorted order.
var preferredColumns = []string{
	"name",
	"title",
	"department_source",
	"department_sources",
	"email",
	"phone",
	"assistant_email",
	"profile_url",
	"lab_website",
	"google_scholar",
	"top_publications",
	"research_interests",
}

// Table is a flattened view of a record set, shared by the CSV and XLSX
// writers.
type Table struct {
	Header []string
	Rows   [][]string
}

// Tabulate flattens records into a table. Columns follow the preferred
// prefix; any field outside it (for example one added by a newer writer and
// read back from a seed file) lands after the prefix in sorted order.
func Tabulate(records []model.FacultyRecord) (*Table, error) {
	maps := make([]map[string]any, 0, len(records))
	for _, r := range records {
		m, err := recordMap(r)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	return tabulate(maps), nil
}

// tabulate builds the table from record maps: the preferred column prefix
// first, then every remaining field in sorted order.
func tabulate(maps []map[string]any) *Table {
	preferred := map[string]bool{}
	for _, c := range preferredColumns {
		preferred[c] = true
	}
	extra := map[string]bool{}
	for _, m := range maps {
		for k := range m {
			if !preferred[k] {
				extra[k] = true
			}
		}
	}

	header := append([]string{}, preferredColumns...)
	extras := make([]string, 0, len(extra))
	for k := range extra {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	header = append(header, extras...)

	rows := make([][]string, 0, len(maps))
	for _, m := range maps {
		row := make([]string, len(header))
		for i, col := range header {
			row[i] = cell(col, m[col])
		}
		rows = append(rows, row)
	}
	return &Table{Header: header, Rows: rows}
}

// recordMap round-trips a record through its JSON form so the table sees the
// same field names as the JSON output file.
func recordMap(r model.FacultyRecord) (map[string]any, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// cell renders one field value. Publications keep their internal commas, so
// they join on " | "; the other list fields join on ", ".
func cell(col string, v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		if col == "top_publications" {
			return strings.Join(parts, " | ")
		}
		return strings.Join(parts, ", ")
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
