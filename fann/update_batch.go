// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// ApplyBatch updates every weight from the slope accumulated across an
// entire epoch's worth of Backpropagate calls, scaled by
// learning_rate/num_data, with no momentum term (spec.md 4.6,
// fann_update_weights_batch's epsilon = learning_rate/num_data). The
// slope buffer is cleared afterward so the next epoch starts from zero.
func (n *Network[T]) ApplyBatch(numData int) {
	n.applyBatchRange(0, int32(len(n.Weights)), numData)
}

// applyBatchRange is ApplyBatch restricted to the half-open weight range
// [lo,hi) -- the range cascade output-phase training uses to touch only
// the output layer's incoming connections (spec.md 4.9).
func (n *Network[T]) applyBatchRange(lo, hi int32, numData int) {
	n.scratch.ensure(len(n.Neurons), len(n.Weights))
	if numData <= 0 {
		numData = 1
	}
	eps := n.LearningRate / T(numData)
	for i := lo; i < hi; i++ {
		n.Weights[i] += eps * n.scratch.slopes[i]
		n.scratch.slopes[i] = 0
	}
}
