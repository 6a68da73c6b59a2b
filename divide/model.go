package divide

import (
	"fmt"
	"strings"
)

// Gender is the binary balancing attribute of a student.
type Gender int

const (
	Male Gender = iota
	Female
)

// String returns "male" or "female".
func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// ParseGender maps common spellings (including the Chinese roster values
// "男"/"女") onto a Gender. Matching is case-insensitive.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male", "男":
		return Male, nil
	case "f", "female", "女":
		return Female, nil
	default:
		return Male, fmt.Errorf("unrecognized gender value %q", s)
	}
}

// Student is one population member. Immutable after load: the optimizer
// shares Student pointers across search instances and never writes to them.
type Student struct {
	Name       string
	ID         string // optional; "" when the roster has no id column
	Gender     Gender
	Scores     map[string]float64 // subject name -> score
	TotalScore float64
	Extra      map[string]string // passthrough roster columns
}

// NewStudent builds a Student with TotalScore computed as the sum of the
// subject scores.
func NewStudent(name string, gender Gender, scores map[string]float64) *Student {
	total := 0.0
	for _, v := range scores {
		total += v
	}
	return &Student{
		Name:       name,
		Gender:     gender,
		Scores:     scores,
		TotalScore: total,
	}
}

// Class is one division bucket: a stable id in [0, numClasses) and its
// member students in arbitrary order.
type Class struct {
	ID       int
	Students []*Student
}

// NewClass returns an empty class with the given id.
func NewClass(id int) *Class {
	return &Class{ID: id, Students: make([]*Student, 0, 64)}
}

// AddStudent appends a student to the class.
func (c *Class) AddStudent(s *Student) {
	c.Students = append(c.Students, s)
}

// MaleCount returns the number of male students in the class.
func (c *Class) MaleCount() int {
	n := 0
	for _, s := range c.Students {
		if s.Gender == Male {
			n++
		}
	}
	return n
}

// FemaleCount returns the number of female students in the class.
func (c *Class) FemaleCount() int {
	return len(c.Students) - c.MaleCount()
}

// AvgTotalScore returns the mean total score, or 0 for an empty class.
func (c *Class) AvgTotalScore() float64 {
	if len(c.Students) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range c.Students {
		sum += s.TotalScore
	}
	return sum / float64(len(c.Students))
}

// AvgSubjectScore returns the mean score for one subject, or 0 for an
// empty class. Students missing the subject contribute 0 to the sum but
// still count in the denominator, matching the cost function's view.
func (c *Class) AvgSubjectScore(subject string) float64 {
	if len(c.Students) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range c.Students {
		sum += s.Scores[subject]
	}
	return sum / float64(len(c.Students))
}

// GenderRatio returns the male fraction of the class, or 0 when empty.
func (c *Class) GenderRatio() float64 {
	if len(c.Students) == 0 {
		return 0
	}
	return float64(c.MaleCount()) / float64(len(c.Students))
}

// Subjects returns the subject names of the first student, in map order.
// Callers needing a stable order should sort the result.
func (c *Class) Subjects() []string {
	if len(c.Students) == 0 {
		return nil
	}
	subjects := make([]string, 0, len(c.Students[0].Scores))
	for name := range c.Students[0].Scores {
		subjects = append(subjects, name)
	}
	return subjects
}
