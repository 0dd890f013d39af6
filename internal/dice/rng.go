// Package dice provides the random source used by dungeon generation and
// encounter resolution.
package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/samdwyer/dungeonrun/internal/dice Roller

import "math/rand"

// Roller is the random source the engine draws from.
// *rand.Rand satisfies it, as does *RNG.
type Roller interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Intn returns a number in [0, n). n must be positive.
	Intn(n int) int
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every draw.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.pos++
	return r.src.Float64()
}

// Intn returns a number in [0, n).
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// Between returns an integer in [lo, hi], both inclusive.
func Between(r Roller, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Chance draws one Bernoulli trial that succeeds with probability p.
// p <= 0 never succeeds and p >= 1 always succeeds.
func Chance(r Roller, p float64) bool {
	return r.Float64() < p
}

// WeightedSelect returns an index chosen by weighted random selection.
// weights must be non-empty with a positive sum.
func WeightedSelect(r Roller, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := r.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
