// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paths

import "github.com/libfann/gofann/erand"

// UniformRandom connects each receiving unit to a uniformly-sampled,
// without-replacement subset of the sending units. It keeps its own
// permutation so that exhausting the send-side order reshuffles rather
// than repeats, matching the without-replacement sampling the reference
// sparse-network builder performs when filling a connection quota.
type UniformRandom struct {
	// Rng is the source used for permutation; defaults to erand.Global.
	Rng *erand.Seeded
}

func (ur *UniformRandom) Name() string { return "UniformRandom" }

// rng returns the configured generator, falling back to the package
// global so callers may omit it entirely.
func (ur *UniformRandom) rng() *erand.Seeded {
	if ur.Rng != nil {
		return ur.Rng
	}
	return erand.Global
}

// Connect gives every receiving unit exactly one sending unit, drawn from
// a shared shuffled order of the send layer that is reshuffled whenever
// it runs out -- the same without-replacement-then-reshuffle discipline
// the reference uniform-random pattern uses. Callers that need more than
// one source per receiver (as the sparse network builder does) call
// SampleWithoutReplacement directly instead.
func (ur *UniformRandom) Connect(nsend, nrecv int) [][]int32 {
	order := ur.rng().Perm(nsend)
	pos := 0
	out := make([][]int32, nrecv)
	for r := 0; r < nrecv; r++ {
		if pos >= nsend {
			order = ur.rng().Perm(nsend)
			pos = 0
		}
		out[r] = []int32{int32(order[pos])}
		pos++
	}
	return out
}

// SampleWithoutReplacement draws k distinct indices from [0, n) using the
// configured generator. It is the building block the sparse-network
// construction in package fann uses to fill a connection quota by
// "sampling source neurons uniformly at random, rejecting duplicates."
func (ur *UniformRandom) SampleWithoutReplacement(n, k int) []int32 {
	if k > n {
		k = n
	}
	perm := ur.rng().Perm(n)
	out := make([]int32, k)
	for i := 0; i < k; i++ {
		out[i] = int32(perm[i])
	}
	return out
}
