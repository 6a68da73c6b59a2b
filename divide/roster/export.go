package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/classdivide/classdivide/divide"
)

// hasRealStudentIDs reports whether any student carries a roster-provided
// id rather than a synthesized row-number id.
func hasRealStudentIDs(classes []*divide.Class) bool {
	for _, c := range classes {
		for _, s := range c.Students {
			if s.ID != "" && !strings.HasPrefix(s.ID, "R") {
				return true
			}
		}
	}
	return false
}

// ExportExcel writes a division to an .xlsx workbook: a "Division" sheet
// with one row per student and a "Summary" sheet with per-class aggregates.
// subjects fixes the score column order; extraFields selects passthrough
// columns. The id column is emitted only when the roster supplied real ids.
func ExportExcel(classes []*divide.Class, path string, subjects, extraFields []string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Division"); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	withID := hasRealStudentIDs(classes)

	headers := []string{"Class"}
	if withID {
		headers = append(headers, "ID")
	}
	headers = append(headers, "Name", "Gender")
	headers = append(headers, extraFields...)
	headers = append(headers, subjects...)
	headers = append(headers, "Total")

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue("Division", cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle("Division", "A1", endCell, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	row := 2
	for _, c := range classes {
		for _, s := range c.Students {
			values := []any{c.ID + 1}
			if withID {
				values = append(values, s.ID)
			}
			values = append(values, s.Name, s.Gender.String())
			for _, field := range extraFields {
				values = append(values, s.Extra[field])
			}
			for _, subject := range subjects {
				values = append(values, s.Scores[subject])
			}
			values = append(values, s.TotalScore)

			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue("Division", cell, v); err != nil {
					return fmt.Errorf("writing row %d: %w", row, err)
				}
			}
			row++
		}
	}

	if err := writeSummarySheet(f, classes, subjects, headerStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, classes []*divide.Class, subjects []string, headerStyle int) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	headers := []string{"Class", "Students", "Male", "Female", "Male Ratio", "Avg Total"}
	for _, subject := range subjects {
		headers = append(headers, "Avg "+subject)
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing summary header: %w", err)
		}
	}
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return fmt.Errorf("styling summary header: %w", err)
	}

	for i, c := range classes {
		values := []any{
			c.ID + 1,
			len(c.Students),
			c.MaleCount(),
			c.FemaleCount(),
			c.GenderRatio(),
			c.AvgTotalScore(),
		}
		for _, subject := range subjects {
			values = append(values, c.AvgSubjectScore(subject))
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing summary row %d: %w", i+2, err)
			}
		}
	}
	return nil
}

// ExportCSV writes the per-student division table as CSV, mirroring the
// "Division" sheet of ExportExcel.
func ExportCSV(classes []*divide.Class, path string, subjects, extraFields []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	withID := hasRealStudentIDs(classes)

	headers := []string{"Class"}
	if withID {
		headers = append(headers, "ID")
	}
	headers = append(headers, "Name", "Gender")
	headers = append(headers, extraFields...)
	headers = append(headers, subjects...)
	headers = append(headers, "Total")
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, c := range classes {
		for _, s := range c.Students {
			record := []string{strconv.Itoa(c.ID + 1)}
			if withID {
				record = append(record, s.ID)
			}
			record = append(record, s.Name, s.Gender.String())
			for _, field := range extraFields {
				record = append(record, s.Extra[field])
			}
			for _, subject := range subjects {
				record = append(record, formatScore(s.Scores[subject]))
			}
			record = append(record, formatScore(s.TotalScore))
			if err := w.Write(record); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
