package fixed

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// Every random choice in the simulation goes through one RNG owned by the
// game context so a seed fully determines a run.
type RNG struct {
	state uint64
}

// NewRNG creates a generator. Seed 0 is remapped to 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are better distributed than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State exposes the generator state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
