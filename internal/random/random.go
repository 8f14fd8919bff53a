// Package random provides the seedable random source shared by weight
// initialization and dataset shuffling.
//
// A Source is passed explicitly to every consumer instead of living in a
// package-level global, so two networks built from two sources seeded alike
// see identical streams and never interfere.
package random

import (
	"math/rand"
	"time"
)

// Source is a seedable pseudo-random generator.
//
// A Source is not safe for concurrent use.
type Source struct {
	rng    *rand.Rand
	seed   int64
	seeded bool
}

// New returns a deterministic Source. Seed 0 is a valid seed.
func New(seed int64) *Source {
	//nolint:gosec // Weight initialization and shuffling are not security-critical
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed, seeded: true}
}

// NewEntropy returns a Source seeded from the wall clock.
func NewEntropy() *Source {
	seed := time.Now().UnixNano()
	//nolint:gosec // Weight initialization and shuffling are not security-critical
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Repeatable reports whether the source was created with an explicit seed.
func (s *Source) Repeatable() bool { return s.seeded }

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// NormFloat64 returns a standard normal value.
func (s *Source) NormFloat64() float64 { return s.rng.NormFloat64() }

// Normal returns a value drawn from N(mean, sd²).
func (s *Source) Normal(mean, sd float64) float64 {
	return s.rng.NormFloat64()*sd + mean
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
