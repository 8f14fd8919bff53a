// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random exposes the seedable source used for weight initialization
// and shuffling.
//
// Example:
//
//	rng := random.New(0)          // deterministic
//	rng = random.NewEntropy()     // seeded from the clock
package random

import (
	"github.com/born-ml/overtake/internal/random"
)

// Source is a seedable pseudo-random generator. Not safe for concurrent use.
type Source = random.Source

// New returns a deterministic Source for seed.
func New(seed int64) *Source {
	return random.New(seed)
}

// NewEntropy returns a Source seeded from the wall clock.
func NewEntropy() *Source {
	return random.NewEntropy()
}
