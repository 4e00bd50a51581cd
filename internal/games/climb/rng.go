package climb

import "math/rand"

// Source is the only thing generation needs from a random generator.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Source interface {
	Float64() float64
}

// Rand wraps a Source with the bounded sampling helpers used by the world
// and ghost generators.
type Rand struct {
	src Source
}

// NewRand creates a seeded generator.
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))} //#nosec G404 -- gameplay randomness
}

// NewRandFrom wraps an arbitrary source.
func NewRandFrom(src Source) *Rand {
	return &Rand{src: src}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Uniform returns a value in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

// Chance reports whether a single draw falls below p.
func (r *Rand) Chance(p float64) bool {
	return r.src.Float64() < p
}

// Intn returns floor(draw*n), in [0, n). Non-positive n yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(r.src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Sign returns -1 or +1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.src.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Pick returns a random element of pool, or "" for an empty pool.
func Pick[T any](r *Rand, pool []T) T {
	var zero T
	if len(pool) == 0 {
		return zero
	}
	return pool[r.Intn(len(pool))]
}
