package divide

import "math"

// solution is the full mutable search state of one annealing instance: the
// assignment vector, the per-class running statistics, and the fixed
// subject ordering shared by every classStats. One solution is mutated in
// place by millions of swaps and deep-cloned only when a new best is found.
type solution struct {
	assignments  []int // assignments[studentIdx] = class id
	classStats   []classStats
	subjectOrder []string
}

func newSolution(numStudents, numClasses int, subjectOrder []string) *solution {
	stats := make([]classStats, numClasses)
	for i := range stats {
		stats[i] = newClassStats(len(subjectOrder))
	}
	return &solution{
		assignments:  make([]int, numStudents),
		classStats:   stats,
		subjectOrder: subjectOrder,
	}
}

// assign places a student during initial construction. Must be called
// exactly once per student index.
func (sol *solution) assign(studentIdx, classID int, s *Student) {
	sol.assignments[studentIdx] = classID
	sol.classStats[classID].add(s, sol.subjectOrder)
}

// swap exchanges the class memberships of two students, updating the
// running statistics incrementally. A same-class pair is a no-op. The
// operation is self-inverse: swapping the same pair again restores the
// prior state, which is what the Metropolis reject path relies on.
func (sol *solution) swap(idx1, idx2 int, students []*Student) {
	class1 := sol.assignments[idx1]
	class2 := sol.assignments[idx2]
	if class1 == class2 {
		return
	}

	sol.classStats[class1].remove(students[idx1], sol.subjectOrder)
	sol.classStats[class2].remove(students[idx2], sol.subjectOrder)

	sol.assignments[idx1] = class2
	sol.classStats[class2].add(students[idx1], sol.subjectOrder)
	sol.assignments[idx2] = class1
	sol.classStats[class1].add(students[idx2], sol.subjectOrder)
}

// deviation returns the max absolute deviation from the mean and the
// variance of the values produced by metric over all classes.
func (sol *solution) deviation(metric func(*classStats) float64) (maxDiff, variance float64) {
	n := float64(len(sol.classStats))
	mean := 0.0
	for i := range sol.classStats {
		mean += metric(&sol.classStats[i])
	}
	mean /= n

	for i := range sol.classStats {
		d := metric(&sol.classStats[i]) - mean
		if ad := math.Abs(d); ad > maxDiff {
			maxDiff = ad
		}
		variance += d * d
	}
	variance /= n
	return maxDiff, variance
}

// cost combines hard-constraint penalties and soft variance objectives into
// a single non-negative value. For each dimension (total score, gender
// ratio, each subject) the hard term fires only when the max deviation of a
// class mean from the mean of class means exceeds the configured threshold,
// contributing (excess)^power * weight. The variance of class means is
// always added, scaled by the dimension's soft weight.
//
// Note this uses mean-deviation, while Validate uses max-minus-min spread;
// the two metrics are intentionally different.
func (sol *solution) cost(params *OptimizationParams) float64 {
	if len(sol.classStats) == 0 {
		return 0
	}
	power := float64(params.PenaltyPower)
	cost := 0.0

	maxTotalDiff, totalVariance := sol.deviation((*classStats).avgTotal)
	if maxTotalDiff > params.MaxScoreDiff {
		cost += math.Pow(maxTotalDiff-params.MaxScoreDiff, power) * params.TotalScorePenaltyWeight
	}

	maxGenderDiff, genderVariance := sol.deviation((*classStats).maleRatio)
	if maxGenderDiff > params.MaxGenderRatioDiff {
		cost += math.Pow(maxGenderDiff-params.MaxGenderRatioDiff, power) * params.GenderRatioPenaltyWeight
	}

	subjectVarianceSum := 0.0
	for subjectIdx := range sol.subjectOrder {
		maxSubjectDiff, subjectVariance := sol.deviation(func(cs *classStats) float64 {
			return cs.avgSubject(subjectIdx)
		})
		if maxSubjectDiff > params.MaxSubjectScoreDiff {
			cost += math.Pow(maxSubjectDiff-params.MaxSubjectScoreDiff, power) * params.SubjectScorePenaltyWeight
		}
		subjectVarianceSum += subjectVariance
	}

	cost += totalVariance * params.TotalVarianceWeight
	cost += genderVariance * params.GenderVarianceWeight
	cost += subjectVarianceSum * params.SubjectVarianceWeight
	return cost
}

// clone deep-copies the solution for best-so-far snapshots. O(students +
// classes*subjects); the main scaling hotspot for very large populations.
func (sol *solution) clone() *solution {
	out := &solution{
		assignments:  make([]int, len(sol.assignments)),
		classStats:   make([]classStats, len(sol.classStats)),
		subjectOrder: sol.subjectOrder,
	}
	copy(out.assignments, sol.assignments)
	for i := range sol.classStats {
		out.classStats[i] = sol.classStats[i].clone()
	}
	return out
}

// toClasses materializes the assignment vector into the output Class list.
func (sol *solution) toClasses(students []*Student) []*Class {
	classes := make([]*Class, len(sol.classStats))
	for i := range classes {
		classes[i] = NewClass(i)
	}
	for studentIdx, classID := range sol.assignments {
		classes[classID].AddStudent(students[studentIdx])
	}
	return classes
}
