package roster

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/classdivide/classdivide/divide"
)

// LoadDivision reads a previously exported division back into classes so
// it can be re-validated. classColumn holds the 1-based class number; the
// remaining columns follow spec. The format is chosen by file extension
// (.csv, else xlsx).
func LoadDivision(path string, spec ColumnSpec, classColumn int) ([]*divide.Class, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		rows, err = readCSVRows(path)
	} else {
		rows, err = readExcelRows(path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("division file has no data rows")
	}

	byClass := make(map[int]*divide.Class)
	for i, row := range rows[1:] {
		s, err := rowToStudent(row, i+2, &spec)
		if err != nil {
			return nil, err
		}
		if s == nil {
			continue
		}
		classNum, err := strconv.Atoi(cellString(row, classColumn))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad class number %q", i+2, cellString(row, classColumn))
		}
		classID := classNum - 1
		c, ok := byClass[classID]
		if !ok {
			c = divide.NewClass(classID)
			byClass[classID] = c
		}
		c.AddStudent(s)
	}

	classes := make([]*divide.Class, 0, len(byClass))
	for _, c := range byClass {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	return classes, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", sheet, err)
	}
	return rows, nil
}
