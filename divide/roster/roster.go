// Package roster loads student populations from spreadsheets and CSV files
// through a configurable column mapping, and exports finished divisions
// back out. It owns no optimization logic; the divide package consumes its
// output.
package roster

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/classdivide/classdivide/divide"
)

// ColumnSpec maps roster columns (0-based) onto student fields. IDColumn
// and TotalScoreColumn are optional: a nil IDColumn synthesizes row-number
// ids ("R2", "R3", …) and a nil TotalScoreColumn computes the total as the
// sum of the subject scores.
type ColumnSpec struct {
	NameColumn       int            `yaml:"name_column"`
	IDColumn         *int           `yaml:"id_column,omitempty"`
	GenderColumn     int            `yaml:"gender_column"`
	TotalScoreColumn *int           `yaml:"total_score_column,omitempty"`
	SubjectColumns   map[string]int `yaml:"subject_columns"`
	ExtraColumns     map[string]int `yaml:"extra_columns,omitempty"`
}

// Validate checks the spec is usable: at least one subject column and no
// negative indices.
func (cs *ColumnSpec) Validate() error {
	if len(cs.SubjectColumns) == 0 {
		return fmt.Errorf("column spec has no subject columns")
	}
	if cs.NameColumn < 0 || cs.GenderColumn < 0 {
		return fmt.Errorf("column spec has negative name/gender column")
	}
	for subject, col := range cs.SubjectColumns {
		if col < 0 {
			return fmt.Errorf("subject %q has negative column index %d", subject, col)
		}
	}
	return nil
}

// LoadColumnSpec reads a ColumnSpec from a YAML file.
func LoadColumnSpec(path string) (ColumnSpec, error) {
	var cs ColumnSpec
	data, err := os.ReadFile(path)
	if err != nil {
		return cs, fmt.Errorf("reading column spec: %w", err)
	}
	if err := yaml.Unmarshal(data, &cs); err != nil {
		return cs, fmt.Errorf("parsing column spec %s: %w", path, err)
	}
	if err := cs.Validate(); err != nil {
		return cs, err
	}
	return cs, nil
}

// rowToStudent parses one data row into a Student, or nil when the row has
// no name (blank rows are common at the bottom of real spreadsheets).
// rowIdx is the 1-based spreadsheet row, used for synthesized ids.
func rowToStudent(row []string, rowIdx int, spec *ColumnSpec) (*divide.Student, error) {
	name := cellString(row, spec.NameColumn)
	if name == "" {
		return nil, nil
	}

	gender, err := divide.ParseGender(cellString(row, spec.GenderColumn))
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", rowIdx, err)
	}

	scores := make(map[string]float64, len(spec.SubjectColumns))
	for subject, col := range spec.SubjectColumns {
		scores[subject] = cellScore(row, col)
	}

	s := divide.NewStudent(name, gender, scores)
	if spec.TotalScoreColumn != nil {
		s.TotalScore = cellScore(row, *spec.TotalScoreColumn)
	}

	if spec.IDColumn != nil {
		s.ID = cellString(row, *spec.IDColumn)
	}
	if s.ID == "" {
		s.ID = fmt.Sprintf("R%d", rowIdx)
	}

	if len(spec.ExtraColumns) > 0 {
		s.Extra = make(map[string]string, len(spec.ExtraColumns))
		for field, col := range spec.ExtraColumns {
			if v := cellString(row, col); v != "" {
				s.Extra[field] = v
			}
		}
	}
	return s, nil
}

// rowsToStudents runs rowToStudent over every data row (the first row is
// the header), skipping blanks.
func rowsToStudents(rows [][]string, spec *ColumnSpec) ([]*divide.Student, error) {
	if len(rows) <= 1 {
		return nil, fmt.Errorf("roster has no data rows")
	}
	students := make([]*divide.Student, 0, len(rows)-1)
	for i, row := range rows[1:] {
		s, err := rowToStudent(row, i+2, spec)
		if err != nil {
			return nil, err
		}
		if s != nil {
			students = append(students, s)
		}
	}
	if len(students) == 0 {
		return nil, fmt.Errorf("roster contains no students")
	}
	return students, nil
}

func cellString(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// cellScore parses a numeric cell, treating blanks and junk as 0 — real
// rosters leave absent exams empty rather than failing the whole import.
func cellScore(row []string, col int) float64 {
	v, err := strconv.ParseFloat(cellString(row, col), 64)
	if err != nil {
		return 0
	}
	return v
}
