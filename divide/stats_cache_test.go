package divide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassStats_Empty_Defaults(t *testing.T) {
	// GIVEN a fresh stats cache with no members
	cs := newClassStats(3)

	// THEN averages are 0 and the gender ratio is the neutral 0.5
	assert.Equal(t, 0.0, cs.avgTotal())
	assert.Equal(t, 0.0, cs.avgSubject(0))
	assert.Equal(t, 0.5, cs.maleRatio())
}

func TestClassStats_AddRemove_RestoresEmpty(t *testing.T) {
	subjects := []string{"math", "physics"}
	s := NewStudent("a", Male, map[string]float64{"math": 90, "physics": 80})

	cs := newClassStats(len(subjects))
	cs.add(s, subjects)

	assert.Equal(t, 1, cs.studentCount)
	assert.Equal(t, 1, cs.maleCount)
	assert.InDelta(t, 170.0, cs.totalSum, 1e-12)
	assert.InDelta(t, 90.0, cs.subjectSums[0], 1e-12)
	assert.InDelta(t, 170.0, cs.avgTotal(), 1e-12)
	assert.InDelta(t, 1.0, cs.maleRatio(), 1e-12)

	cs.remove(s, subjects)

	assert.Equal(t, 0, cs.studentCount)
	assert.Equal(t, 0, cs.maleCount)
	assert.InDelta(t, 0.0, cs.totalSum, 1e-12)
	assert.Equal(t, 0.5, cs.maleRatio())
}

func TestClassStats_MissingSubjectScoresAsZero(t *testing.T) {
	// A student without a subject contributes 0 to that subject's sum but
	// still counts in the denominator.
	subjects := []string{"math", "art"}
	s := NewStudent("b", Female, map[string]float64{"math": 60})

	cs := newClassStats(len(subjects))
	cs.add(s, subjects)

	assert.InDelta(t, 60.0, cs.avgSubject(0), 1e-12)
	assert.InDelta(t, 0.0, cs.avgSubject(1), 1e-12)
}

func TestClassStats_Clone_Independent(t *testing.T) {
	subjects := []string{"math"}
	cs := newClassStats(1)
	cs.add(NewStudent("a", Male, map[string]float64{"math": 50}), subjects)

	cp := cs.clone()
	cp.add(NewStudent("b", Female, map[string]float64{"math": 70}), subjects)

	assert.Equal(t, 1, cs.studentCount)
	assert.Equal(t, 2, cp.studentCount)
	assert.InDelta(t, 50.0, cs.subjectSums[0], 1e-12)
	assert.InDelta(t, 120.0, cp.subjectSums[0], 1e-12)
}
