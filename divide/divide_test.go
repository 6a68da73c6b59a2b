package divide

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide_EmptyPopulation_EmptyResult(t *testing.T) {
	classes := Divide(context.Background(), nil, NewDivideConfig(3))
	assert.Empty(t, classes)
}

func TestDivide_ZeroClasses_EmptyResult(t *testing.T) {
	classes := Divide(context.Background(), makeStudents(10), NewDivideConfig(0))
	assert.Empty(t, classes)
}

func TestDivide_FewerStudentsThanClasses_SingletonPerStudent(t *testing.T) {
	// GIVEN 3 students and a request for 5 classes
	students := makeStudents(3)

	// WHEN dividing
	classes := Divide(context.Background(), students, NewDivideConfig(5))

	// THEN exactly 3 singleton classes come back, not 5
	require.Len(t, classes, 3)
	for i, c := range classes {
		assert.Equal(t, i, c.ID)
		assert.Len(t, c.Students, 1)
	}
}

func TestDivide_SingleClass_TakesEveryone(t *testing.T) {
	students := makeStudents(25)
	classes := Divide(context.Background(), students, NewDivideConfig(1).WithIterations(1000))

	require.Len(t, classes, 1)
	assert.Len(t, classes[0].Students, 25)

	// All spreads are trivially zero for a single class.
	v := Validate(classes)
	assert.Zero(t, v.MaxScoreDiff)
	assert.Zero(t, v.MaxGenderRatioDiff)
	assert.True(t, v.ScoreConstraintMet)
	assert.True(t, v.GenderConstraintMet)
}

func TestDivide_PopulationInvariant(t *testing.T) {
	students := makeStudents(73)
	cfg := NewDivideConfig(4).WithIterations(50_000).WithSeed(11)
	cfg.Params.NumParallelInstances = 2

	classes := Divide(context.Background(), students, cfg)

	require.Len(t, classes, 4)
	total := 0
	seen := make(map[*Student]bool)
	for _, c := range classes {
		total += len(c.Students)
		for _, s := range c.Students {
			require.False(t, seen[s], "student %s assigned twice", s.Name)
			seen[s] = true
		}
	}
	assert.Equal(t, 73, total)
}

func TestDivide_BalancesHundredStudents(t *testing.T) {
	if testing.Short() {
		t.Skip("full annealing run")
	}
	// GIVEN 100 students with a 50/50 gender split and achievable scores
	students := makeStudents(100)
	cfg := NewDivideConfig(4).WithIterations(300_000).WithSeed(42)

	// WHEN dividing into 4 classes with the default parameters
	classes := Divide(context.Background(), students, cfg)

	// THEN the result lands inside the heuristic bounds
	require.Len(t, classes, 4)
	v := Validate(classes)
	assert.LessOrEqual(t, v.MaxScoreDiff, 2.0, "total score spread")
	assert.LessOrEqual(t, v.MaxGenderRatioDiff, 0.25, "gender ratio spread")
}

func TestDivide_SingleGenderPopulation_ZeroRatioSpread(t *testing.T) {
	// All students share one gender: every class ratio is identical, so
	// the spread is exactly 0 for any class count.
	students := make([]*Student, 60)
	for i := range students {
		students[i] = NewStudent("m", Male, map[string]float64{"math": float64(40 + i%60)})
	}
	cfg := NewDivideConfig(4).WithIterations(20_000).WithSeed(3)
	cfg.Params.NumParallelInstances = 2

	classes := Divide(context.Background(), students, cfg)

	require.Len(t, classes, 4)
	v := Validate(classes)
	assert.Equal(t, 0.0, v.MaxGenderRatioDiff)
}

func TestDivide_CancelledContext_StillReturnsResult(t *testing.T) {
	students := makeStudents(50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := NewDivideConfig(3).WithIterations(5_000_000).WithSeed(1)
	cfg.Params.NumParallelInstances = 2
	classes := Divide(ctx, students, cfg)

	require.Len(t, classes, 3)
	total := 0
	for _, c := range classes {
		total += len(c.Students)
	}
	assert.Equal(t, 50, total)
}

func TestSubjectOrderOf_SortedAndStable(t *testing.T) {
	students := makeStudents(5)
	order := subjectOrderOf(students)

	assert.Equal(t, []string{
		"biology", "chemistry", "chinese", "english", "geography",
		"history", "math", "physics", "politics",
	}, order)
}
