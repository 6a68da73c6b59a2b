package divide

import (
	"math"
	"slices"
)

// genderSeedBias weights gender imbalance against raw score sums while
// seeding. Non-configurable: the annealer, not the seed, owns the real
// trade-off.
const genderSeedBias = 10_000.0

// buildInitialSolution produces the deterministic greedy seed: a modified
// longest-processing-time pass that places students in descending total
// score order into whichever class minimizes the sum of its score load and
// a gender-imbalance penalty. Ties in the score sort break on original
// roster index, so identical inputs always yield identical seeds.
func buildInitialSolution(students []*Student, numClasses int, subjectOrder []string) *solution {
	sol := newSolution(len(students), numClasses, subjectOrder)

	order := make([]int, len(students))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case students[a].TotalScore > students[b].TotalScore:
			return -1
		case students[a].TotalScore < students[b].TotalScore:
			return 1
		default:
			return a - b
		}
	})

	for _, studentIdx := range order {
		s := students[studentIdx]
		best := 0
		bestCost := math.Inf(1)
		for classID := range sol.classStats {
			cs := &sol.classStats[classID]
			c := cs.totalSum + genderSeedBias*math.Abs(hypotheticalMaleRatio(cs, s)-0.5)
			if c < bestCost {
				bestCost = c
				best = classID
			}
		}
		sol.assign(studentIdx, best, s)
	}
	return sol
}

// hypotheticalMaleRatio is the class male ratio as if s were already a
// member. An empty class reports 0 regardless of s.
func hypotheticalMaleRatio(cs *classStats, s *Student) float64 {
	if cs.studentCount == 0 {
		return 0
	}
	males := cs.maleCount
	if s.Gender == Male {
		males++
	}
	return float64(males) / float64(cs.studentCount+1)
}
