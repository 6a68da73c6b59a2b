package divide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInitialSolution_Deterministic(t *testing.T) {
	students := makeStudents(80)
	order := testSubjectOrder(students)

	a := buildInitialSolution(students, 4, order)
	b := buildInitialSolution(students, 4, order)

	assert.Equal(t, a.assignments, b.assignments, "greedy seed must be deterministic")
}

func TestBuildInitialSolution_AllStudentsAssigned(t *testing.T) {
	students := makeStudents(50)
	order := testSubjectOrder(students)

	sol := buildInitialSolution(students, 6, order)

	counts := make([]int, 6)
	for _, classID := range sol.assignments {
		require.GreaterOrEqual(t, classID, 0)
		require.Less(t, classID, 6)
		counts[classID]++
	}
	total := 0
	for classID, n := range counts {
		total += n
		assert.Equal(t, n, sol.classStats[classID].studentCount)
	}
	assert.Equal(t, len(students), total)
}

func TestBuildInitialSolution_RoughScoreBalance(t *testing.T) {
	// LPT seeding should already land class averages within a loose band;
	// the annealer only has to close the last gap.
	students := makeStudents(100)
	order := testSubjectOrder(students)

	sol := buildInitialSolution(students, 4, order)

	maxDiff, _ := sol.deviation((*classStats).avgTotal)
	assert.Less(t, maxDiff, 50.0, "greedy seed left classes badly unbalanced")
}

func TestHypotheticalMaleRatio(t *testing.T) {
	subjects := []string{"math"}
	cs := newClassStats(1)
	male := NewStudent("m", Male, map[string]float64{"math": 1})
	female := NewStudent("f", Female, map[string]float64{"math": 1})

	// Empty class reports 0 regardless of the candidate.
	assert.Equal(t, 0.0, hypotheticalMaleRatio(&cs, male))

	cs.add(male, subjects)
	assert.InDelta(t, 1.0, hypotheticalMaleRatio(&cs, male), 1e-12)   // 2 males / 2
	assert.InDelta(t, 0.5, hypotheticalMaleRatio(&cs, female), 1e-12) // 1 male / 2
}
