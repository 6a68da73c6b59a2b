package divide

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// parallelSearch runs numInstances annealers concurrently and reduces to
// the lowest-cost result. Each instance gets its own greedy seed, its own
// RNG, and a staggered start temperature; the instances share exactly one
// piece of state, the foundGood flag. Relaxed atomics are enough for the
// flag — a near-simultaneous race between winners only costs the losers a
// few thousand extra iterations.
func parallelSearch(ctx context.Context, students []*Student, numClasses int, subjectOrder []string, cfg DivideConfig, numInstances int) *solution {
	var foundGood atomic.Bool
	params := cfg.Params

	// Every instance runs the full budget; diversity comes from
	// temperature staggering and independent random streams, not from
	// splitting the budget.
	results := make([]*solution, numInstances)
	g, ctx := errgroup.WithContext(ctx)
	for instanceID := 0; instanceID < numInstances; instanceID++ {
		instanceID := instanceID
		g.Go(func() error {
			a := &annealer{
				id:        instanceID,
				students:  students,
				params:    &params,
				moves:     newMoveGenerator(students, params.SameGenderSwapProb),
				rng:       newInstanceRNG(cfg.Seed, instanceID),
				foundGood: &foundGood,
			}
			initial := buildInitialSolution(students, numClasses, subjectOrder)
			temp := params.InitialTemperature + float64(instanceID)*params.TemperatureDiversityDelta
			results[instanceID] = a.run(ctx, initial, cfg.MaxIterations, temp)
			return nil
		})
	}
	// Annealers return no errors; Wait is the fork-join barrier.
	_ = g.Wait()

	best := results[0]
	bestCost := best.cost(&params)
	for _, sol := range results[1:] {
		if c := sol.cost(&params); c < bestCost {
			best = sol
			bestCost = c
		}
	}
	return best
}
