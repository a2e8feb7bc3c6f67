package export

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/faculty-cli/internal/model"
)

// WriteJSON writes the record set as an indented UTF-8 JSON array.
func WriteJSON(path string, records []model.FacultyRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal records")
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}

// ReadJSON loads a record set written by WriteJSON, used to seed additive
// re-runs. A missing file is not an error; it returns an empty set.
func ReadJSON(path string) ([]model.FacultyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "export: read %s", path)
	}
	var records []model.FacultyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, eris.Wrapf(err, "export: parse %s", path)
	}
	return records, nil
}
