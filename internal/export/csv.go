package export

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/faculty-cli/internal/model"
)

// utf8BOM keeps spreadsheet applications from misreading accented names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the record set as a BOM-prefixed UTF-8 CSV.
func WriteCSV(path string, records []model.FacultyRecord) error {
	table, err := Tabulate(records)
	if err != nil {
		return eris.Wrap(err, "export: tabulate records")
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return eris.Wrapf(err, "export: write %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrapf(err, "export: flush %s", path)
	}
	return f.Close()
}
