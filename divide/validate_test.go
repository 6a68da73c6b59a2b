package divide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classOf(id int, students ...*Student) *Class {
	c := NewClass(id)
	for _, s := range students {
		c.AddStudent(s)
	}
	return c
}

func TestValidate_EmptyDivision_AllMet(t *testing.T) {
	v := Validate(nil)
	assert.True(t, v.ScoreConstraintMet)
	assert.True(t, v.GenderConstraintMet)
	assert.True(t, v.ClassSizeConstraintMet)
}

func TestValidate_SpreadIsMaxMinusMin(t *testing.T) {
	// Three classes with average totals 100, 104, 101: spread is 4, not
	// the max deviation from the mean (which would be ~2.33).
	classes := []*Class{
		classOf(0, NewStudent("a", Male, map[string]float64{"math": 100})),
		classOf(1, NewStudent("b", Female, map[string]float64{"math": 104})),
		classOf(2, NewStudent("c", Male, map[string]float64{"math": 101})),
	}

	v := Validate(classes)

	assert.InDelta(t, 4.0, v.MaxScoreDiff, 1e-12)
	assert.False(t, v.ScoreConstraintMet)
	require.Len(t, v.SubjectMaxDiffs, 1)
	assert.Equal(t, "math", v.SubjectMaxDiffs[0].Subject)
	assert.InDelta(t, 4.0, v.SubjectMaxDiffs[0].Diff, 1e-12)
}

func TestValidate_EpsilonAbsorbsFloatingError(t *testing.T) {
	// A spread a hair above the threshold from float noise still passes.
	classes := []*Class{
		classOf(0, NewStudent("a", Male, map[string]float64{"math": 100})),
		classOf(1, NewStudent("b", Female, map[string]float64{"math": 101.0 + 1e-12})),
	}
	params := DefaultParams() // MaxScoreDiff = 1.0

	v := ValidateWithParams(classes, params)

	assert.True(t, v.ScoreConstraintMet)
}

func TestValidate_GenderRatioSpread(t *testing.T) {
	m := NewStudent("m", Male, map[string]float64{"math": 100})
	f := NewStudent("f", Female, map[string]float64{"math": 100})

	classes := []*Class{
		classOf(0, m, f), // ratio 0.5
		classOf(1, m, m), // ratio 1.0
	}

	v := Validate(classes)

	assert.InDelta(t, 0.5, v.MaxGenderRatioDiff, 1e-12)
	assert.False(t, v.GenderConstraintMet)
}

func TestValidate_ClassSizeSpread(t *testing.T) {
	m := NewStudent("m", Male, map[string]float64{"math": 100})
	classes := []*Class{
		classOf(0, m, m, m, m, m, m, m), // 7 members
		classOf(1, m),                   // 1 member
	}
	params := DefaultParams() // MaxClassSizeDiff = 5

	v := ValidateWithParams(classes, params)

	assert.Equal(t, 6, v.MaxClassSizeDiff)
	assert.False(t, v.ClassSizeConstraintMet)
}
