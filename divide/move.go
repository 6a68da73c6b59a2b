package divide

import "math/rand"

// moveKind tags the two swap proposal variants. Same-gender swaps refine
// score balance without touching gender ratios; cross-gender swaps trade
// one male for one female and so adjust both.
type moveKind int

const (
	sameGenderMove moveKind = iota
	crossGenderMove
)

// move is one proposed swap of two student indices.
type move struct {
	kind       moveKind
	idx1, idx2 int
}

// moveGenerator proposes swaps over fixed gender buckets. It is stateless
// apart from the bucket index slices, so it can be unit-tested without an
// annealing loop around it.
type moveGenerator struct {
	maleIndices   []int
	femaleIndices []int
	sameProb      float64
}

// newMoveGenerator partitions the population indices by gender.
func newMoveGenerator(students []*Student, sameProb float64) *moveGenerator {
	g := &moveGenerator{sameProb: sameProb}
	for idx, s := range students {
		if s.Gender == Male {
			g.maleIndices = append(g.maleIndices, idx)
		} else {
			g.femaleIndices = append(g.femaleIndices, idx)
		}
	}
	return g
}

// propose picks the next candidate swap. With probability sameProb it draws
// both students from one gender bucket (falling back to the other bucket,
// then to a cross pick, when a bucket has fewer than two members);
// otherwise it draws one student from each bucket. ok is false when the
// population cannot supply the requested pair at all.
func (g *moveGenerator) propose(rng *rand.Rand) (m move, ok bool) {
	if rng.Float64() < g.sameProb {
		bucket := g.sameGenderBucket(rng)
		if bucket == nil {
			return g.crossPick(rng)
		}
		return move{
			kind: sameGenderMove,
			idx1: bucket[rng.Intn(len(bucket))],
			idx2: bucket[rng.Intn(len(bucket))],
		}, true
	}
	return g.crossPick(rng)
}

// sameGenderBucket picks a bucket with at least two members, preferring a
// fair coin flip, or nil if neither qualifies.
func (g *moveGenerator) sameGenderBucket(rng *rand.Rand) []int {
	useMale := rng.Intn(2) == 0
	switch {
	case useMale && len(g.maleIndices) >= 2:
		return g.maleIndices
	case !useMale && len(g.femaleIndices) >= 2:
		return g.femaleIndices
	case len(g.maleIndices) >= 2:
		return g.maleIndices
	case len(g.femaleIndices) >= 2:
		return g.femaleIndices
	default:
		return nil
	}
}

func (g *moveGenerator) crossPick(rng *rand.Rand) (move, bool) {
	if len(g.maleIndices) == 0 || len(g.femaleIndices) == 0 {
		return move{}, false
	}
	return move{
		kind: crossGenderMove,
		idx1: g.maleIndices[rng.Intn(len(g.maleIndices))],
		idx2: g.femaleIndices[rng.Intn(len(g.femaleIndices))],
	}, true
}
