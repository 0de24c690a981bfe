// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// ApplyIncremental updates every weight immediately after a single
// pattern's Backpropagate call, using plain gradient ascent on the
// accumulated slope plus a momentum term carried from the previous
// pattern's delta (spec.md 4.6). It clears the slope buffer afterward
// since, unlike the batch algorithms, incremental training never
// accumulates slopes across patterns.
func (n *Network[T]) ApplyIncremental() {
	n.applyIncrementalRange(0, int32(len(n.Weights)))
}

// applyIncrementalRange is ApplyIncremental restricted to the half-open
// weight range [lo,hi) -- the range cascade output-phase training uses
// to touch only the output layer's incoming connections (spec.md 4.9).
func (n *Network[T]) applyIncrementalRange(lo, hi int32) {
	n.scratch.ensure(len(n.Neurons), len(n.Weights))
	lr, mom := n.LearningRate, n.Momentum
	for i := lo; i < hi; i++ {
		delta := lr*n.scratch.slopes[i] + mom*n.scratch.prevWeightDeltas[i]
		n.Weights[i] += delta
		n.scratch.prevWeightDeltas[i] = delta
		n.scratch.slopes[i] = 0
	}
}
