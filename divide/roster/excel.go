package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/classdivide/classdivide/divide"
)

// LoadExcel reads students from the first worksheet of an .xlsx file. The
// first row is treated as a header.
func LoadExcel(path string, spec ColumnSpec) ([]*divide.Student, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no worksheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", sheet, err)
	}
	return rowsToStudents(rows, &spec)
}
