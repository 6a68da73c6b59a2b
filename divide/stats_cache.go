package divide

// classStats caches the running aggregates of one class so the cost
// function never touches individual students in the hot loop. It is
// maintained strictly by add/remove; recomputing from members happens only
// in tests (see statsFromMembers in solution_test.go).
type classStats struct {
	totalSum     float64
	studentCount int
	maleCount    int
	femaleCount  int
	subjectSums  []float64 // indexed by the solution's fixed subject order
}

func newClassStats(subjectCount int) classStats {
	return classStats{subjectSums: make([]float64, subjectCount)}
}

// add folds one student's contribution into the running sums. subjectOrder
// must be the solution's fixed ordering.
func (cs *classStats) add(s *Student, subjectOrder []string) {
	cs.totalSum += s.TotalScore
	cs.studentCount++
	if s.Gender == Male {
		cs.maleCount++
	} else {
		cs.femaleCount++
	}
	for i, subject := range subjectOrder {
		cs.subjectSums[i] += s.Scores[subject]
	}
}

// remove is the exact inverse of add. Because the same float values are
// subtracted as were added, add/remove round-trips restore sums bit-for-bit
// only up to floating error; the swap self-inverse property in
// solution.swap relies on the symmetric order of operations instead.
func (cs *classStats) remove(s *Student, subjectOrder []string) {
	cs.totalSum -= s.TotalScore
	cs.studentCount--
	if s.Gender == Male {
		cs.maleCount--
	} else {
		cs.femaleCount--
	}
	for i, subject := range subjectOrder {
		cs.subjectSums[i] -= s.Scores[subject]
	}
}

// avgTotal returns mean total score, 0 for an empty class.
func (cs *classStats) avgTotal() float64 {
	if cs.studentCount == 0 {
		return 0
	}
	return cs.totalSum / float64(cs.studentCount)
}

// avgSubject returns the mean score of the subject at index i in the fixed
// order, 0 for an empty class.
func (cs *classStats) avgSubject(i int) float64 {
	if cs.studentCount == 0 {
		return 0
	}
	return cs.subjectSums[i] / float64(cs.studentCount)
}

// maleRatio returns the male fraction. An empty class reports 0.5 so it
// stays neutral in ratio comparisons instead of propagating NaN.
func (cs *classStats) maleRatio() float64 {
	if cs.studentCount == 0 {
		return 0.5
	}
	return float64(cs.maleCount) / float64(cs.studentCount)
}

// clone returns an independent copy (the subjectSums slice is deep-copied).
func (cs *classStats) clone() classStats {
	out := *cs
	out.subjectSums = make([]float64, len(cs.subjectSums))
	copy(out.subjectSums, cs.subjectSums)
	return out
}
