package divide

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"
)

// A master seed plus a derivation scheme gives every search instance its
// own independent, reproducible random stream. Two runs with the same
// master seed, parameters, and instance count MUST produce bit-for-bit
// identical results.

// instanceSeed derives the seed for search instance id from the master
// seed by XOR with an FNV-1a hash of the instance label. Instance 0 uses
// the master seed directly, so a single-instance run is reproducible from
// the master seed alone.
func instanceSeed(master int64, id int) int64 {
	if id == 0 {
		return master
	}
	return master ^ fnv1a64(fmt.Sprintf("instance_%d", id))
}

// newInstanceRNG returns the RNG for search instance id. A zero master
// seed means nondeterministic: each call seeds from the wall clock.
func newInstanceRNG(master int64, id int) *rand.Rand {
	if master == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	}
	return rand.New(rand.NewSource(instanceSeed(master, id)))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
