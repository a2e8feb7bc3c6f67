package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/faculty-cli/internal/model"
)

// WriteXLSX writes the record set as a single-sheet workbook with the same
// flat table as the CSV export.
func WriteXLSX(path string, records []model.FacultyRecord) error {
	table, err := Tabulate(records)
	if err != nil {
		return eris.Wrap(err, "export: tabulate records")
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Faculty")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range table.Header {
		header.AddCell().SetString(col)
	}
	for _, row := range table.Rows {
		r := sheet.AddRow()
		for _, val := range row {
			r.AddCell().SetString(val)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}
