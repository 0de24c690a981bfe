// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package erand provides the process-wide random source used to initialize
// network weights, build sparse/shortcut connectivity, and seed cascade
// candidate pools. It is not cryptographic: like the reference library it
// adapts, it wraps a platform pseudo-random generator (math/rand's default
// source) behind a seed that is either drawn fresh per network or held
// fixed for reproducibility.
package erand

import (
	"math/rand"
	"time"
)

// Seeded mirrors the reference library's process-wide RNG contract: a flag
// that, when enabled, reseeds from a high-resolution clock (the reference
// uses /dev/urandom; Go's runtime-seeded clock source is the portable
// equivalent) every time a new network is constructed, and when disabled
// preserves whatever seed state the caller last established so repeated
// runs are reproducible.
type Seeded struct {
	enabled bool
	src     *rand.Rand
}

// NewSeeded returns a generator with seeding enabled, matching the default
// seed_enabled = true behavior.
func NewSeeded() *Seeded {
	s := &Seeded{enabled: true}
	s.reseed()
	return s
}

// SetSeedEnabled toggles automatic reseeding on construction. Disabling it
// freezes the current seed so successive networks draw from the same
// deterministic stream.
func (s *Seeded) SetSeedEnabled(on bool) { s.enabled = on }

// SeedEnabled reports whether automatic reseeding is active.
func (s *Seeded) SeedEnabled() bool { return s.enabled }

// NewNetwork is called once per network construction; it reseeds from the
// clock when seeding is enabled, and is a no-op otherwise so the caller's
// previous seed state carries forward.
func (s *Seeded) NewNetwork() {
	if s.enabled {
		s.reseed()
	}
}

// Seed pins the generator to an explicit seed, for reproducible tests.
func (s *Seeded) Seed(seed int64) {
	s.src = rand.New(rand.NewSource(seed))
}

func (s *Seeded) reseed() {
	s.src = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Float64 returns a uniform sample in [0, 1) from the underlying stream.
func (s *Seeded) Float64() float64 {
	if s.src == nil {
		s.reseed()
	}
	return s.src.Float64()
}

// Uniform returns a uniform sample in [lo, hi).
func (s *Seeded) Uniform(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Intn returns a uniform sample in [0, n).
func (s *Seeded) Intn(n int) int {
	if s.src == nil {
		s.reseed()
	}
	return s.src.Intn(n)
}

// Perm returns a random permutation of [0, n), used for without-replacement
// sampling during sparse-connectivity construction.
func (s *Seeded) Perm(n int) []int {
	if s.src == nil {
		s.reseed()
	}
	return s.src.Perm(n)
}

// Global is the default process-wide generator, analogous to the reference
// library's single global RNG shared by all networks unless a network
// supplies its own.
var Global = NewSeeded()
