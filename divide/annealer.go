package divide

import (
	"context"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// pollInterval is the proposal cadence at which an annealer checks the
// shared early-stop flag and the context.
const pollInterval = 1000

// annealer is one simulated-annealing search instance. It owns all of its
// mutable state (current solution, best snapshot, RNG); the only thing it
// shares with sibling instances is the foundGood flag.
type annealer struct {
	id        int
	students  []*Student
	params    *OptimizationParams
	moves     *moveGenerator
	rng       *rand.Rand
	foundGood *atomic.Bool
}

// run anneals from initial for at most maxEvaluations evaluated moves and
// returns the best solution seen. Degenerate proposals (identical indices
// or a same-class pair) are skipped without consuming the evaluation
// budget. The early-stop flag and ctx are polled every pollInterval
// proposals; both cause a prompt return of the best-so-far.
func (a *annealer) run(ctx context.Context, initial *solution, maxEvaluations int, initialTemp float64) *solution {
	current := initial.clone()
	best := current.clone()
	currentCost := current.cost(a.params)
	bestCost := currentCost

	// Swap moves conserve class sizes, so a seed with fewer than two
	// occupied classes can never produce a non-degenerate proposal.
	// Skipped proposals don't consume budget, so bail out instead of
	// spinning.
	occupied := 0
	for i := range current.classStats {
		if current.classStats[i].studentCount > 0 {
			occupied++
		}
	}
	if occupied < 2 {
		return best
	}

	// Larger populations need a hotter start to mix.
	switch {
	case len(a.students) > 2000:
		initialTemp *= 3.0
	case len(a.students) > 1000:
		initialTemp *= 2.0
	}

	temperature := initialTemp
	acceptCount := 0
	iterationsSinceImprovement := 0
	proposals := 0
	evaluated := 0

	for remaining := maxEvaluations; remaining > 0; {
		if proposals%pollInterval == 0 {
			if a.foundGood.Load() || ctx.Err() != nil {
				break
			}
		}
		proposals++

		m, ok := a.moves.propose(a.rng)
		if !ok {
			// Both gender buckets too small for any cross pair; only
			// same-gender moves can ever fire, and propose already fell
			// back. Nothing to evaluate this round.
			continue
		}
		if m.idx1 == m.idx2 || current.assignments[m.idx1] == current.assignments[m.idx2] {
			continue
		}
		remaining--
		evaluated++

		current.swap(m.idx1, m.idx2, a.students)
		newCost := current.cost(a.params)
		delta := newCost - currentCost

		if delta < 0 || a.rng.Float64() < math.Exp(-delta/temperature) {
			currentCost = newCost
			acceptCount++
			if newCost < bestCost {
				best = current.clone()
				bestCost = newCost
				iterationsSinceImprovement = 0
				if bestCost < a.params.GoodSolutionThreshold {
					a.foundGood.Store(true)
				}
			} else {
				iterationsSinceImprovement++
			}
		} else {
			// Rejected: swap back to restore the exact prior state.
			current.swap(m.idx1, m.idx2, a.students)
			iterationsSinceImprovement++
		}

		// Adaptive schedule: reheat when the search is stuck cold,
		// otherwise cool geometrically.
		if iterationsSinceImprovement > a.params.ReheatAfterIterations && acceptCount < a.params.ReheatMinAcceptCount {
			temperature = initialTemp * a.params.ReheatTemperatureFactor
			iterationsSinceImprovement = 0
			acceptCount = 0
		} else {
			temperature *= a.params.CoolingRate
		}
	}

	logrus.Debugf("annealer %d: evaluated=%d bestCost=%.4f finalTemp=%.2f", a.id, evaluated, bestCost, temperature)
	return best
}
