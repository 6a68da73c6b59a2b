package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/classdivide/classdivide/divide"
)

// LoadCSV reads students from a comma-separated roster. The first row is
// treated as a header. Short rows are tolerated; missing cells read as
// blank.
func LoadCSV(path string, spec ColumnSpec) ([]*divide.Student, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	return rowsToStudents(rows, &spec)
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // rosters frequently have ragged rows

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv %s at row %d: %w", path, len(rows)+1, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}
