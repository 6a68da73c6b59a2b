package divide

import (
	"context"
	"runtime"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// Divide assigns students to cfg.NumClasses classes, balancing average
// total score, per-subject averages, and gender ratio. It always returns a
// result: failing to meet the hard constraints within the iteration budget
// is a heuristic outcome visible through Validate, not an error.
//
// Degenerate inputs exit early: an empty population or NumClasses == 0
// yields an empty slice; fewer students than classes yields one singleton
// class per student (exactly len(students) classes, no search); a single
// class absorbs everyone.
//
// ctx cancellation is cooperative: annealers poll it every thousand
// proposals and the best result found so far is still returned.
func Divide(ctx context.Context, students []*Student, cfg DivideConfig) []*Class {
	if len(students) == 0 || cfg.NumClasses == 0 {
		return []*Class{}
	}

	if len(students) < cfg.NumClasses {
		classes := make([]*Class, len(students))
		for i, s := range students {
			classes[i] = NewClass(i)
			classes[i].AddStudent(s)
		}
		return classes
	}

	subjectOrder := subjectOrderOf(students)

	if cfg.NumClasses == 1 {
		// Every swap proposal would be degenerate; skip the search.
		sol := newSolution(len(students), 1, subjectOrder)
		for i, s := range students {
			sol.assign(i, 0, s)
		}
		return sol.toClasses(students)
	}

	numInstances := cfg.Params.NumParallelInstances
	if numInstances <= 0 {
		numInstances = defaultInstanceCount(len(students))
	}
	iterations := adjustedIterations(cfg.MaxIterations, len(students))
	cfg.MaxIterations = iterations

	logrus.Infof("dividing %d students into %d classes: %d instances x %d iterations, seed=%d",
		len(students), cfg.NumClasses, numInstances, iterations, cfg.Seed)
	start := time.Now()

	best := parallelSearch(ctx, students, cfg.NumClasses, subjectOrder, cfg, numInstances)

	logrus.Infof("division finished in %s, cost=%.4f", time.Since(start).Round(time.Millisecond), best.cost(&cfg.Params))
	return best.toClasses(students)
}

// subjectOrderOf fixes the attribute ordering for a whole run from the
// first student's score keys, sorted for determinism. The roster loader
// guarantees a consistent key set across students.
func subjectOrderOf(students []*Student) []string {
	subjects := make([]string, 0, len(students[0].Scores))
	for name := range students[0].Scores {
		subjects = append(subjects, name)
	}
	// Map iteration order is random; sort so runs are reproducible.
	slices.Sort(subjects)
	return subjects
}

// defaultInstanceCount clamps the CPU count by population tier to bound
// memory and scheduling overhead on small inputs.
func defaultInstanceCount(studentCount int) int {
	numCPU := runtime.NumCPU()
	switch {
	case studentCount > 2000:
		return min(numCPU, 16)
	case studentCount > 1000:
		return min(numCPU, 12)
	case studentCount > 500:
		return min(numCPU, 8)
	default:
		return 4
	}
}

// adjustedIterations enforces a population-scaled floor on the evaluation
// budget; constraint satisfaction needs a minimum amount of search
// regardless of what the caller asked for.
func adjustedIterations(requested, studentCount int) int {
	switch {
	case studentCount > 3000:
		return max(requested, 500_000)
	case studentCount > 1000:
		return max(requested, 400_000)
	default:
		return max(requested, 300_000)
	}
}
