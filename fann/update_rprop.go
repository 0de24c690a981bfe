// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// rpropStep applies one iRPROP- update across a weight vector and its
// parallel slope/step scratch, in place. When a weight's slope keeps the
// same sign as last epoch its step grows by increaseFactor (bounded by
// deltaMax); when the sign flips, the step shrinks by decreaseFactor
// (bounded by deltaMin) and that epoch's slope is zeroed so the sign
// flip is not double-counted next epoch -- the "minus" in iRPROP- that
// distinguishes it from plain RPROP+ (spec.md 4.6).
func rpropStep[T Float](weights, slopes, prevSlopes, prevSteps []T, increase, decrease, deltaMin, deltaMax T) {
	for i := range weights {
		slope := slopes[i]
		sign := slope * prevSlopes[i]
		step := prevSteps[i]
		switch {
		case sign > 0:
			step = minT(step*increase, deltaMax)
		case sign < 0:
			step = maxT(step*decrease, deltaMin)
			slope = 0
		}
		if slope > 0 {
			weights[i] += step
		} else if slope < 0 {
			weights[i] -= step
		}
		prevSteps[i] = step
		prevSlopes[i] = slope
		slopes[i] = 0
	}
}

func minT[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// ApplyRprop runs one iRPROP- update across every network weight using
// the slopes Backpropagate accumulated this epoch, then clears them.
func (n *Network[T]) ApplyRprop() {
	n.applyRpropRange(0, int32(len(n.Weights)))
}

// applyRpropRange is ApplyRprop restricted to the half-open weight range
// [lo,hi) -- the range cascade output-phase training uses to touch only
// the output layer's incoming connections (spec.md 4.9).
func (n *Network[T]) applyRpropRange(lo, hi int32) {
	n.scratch.ensure(len(n.Neurons), len(n.Weights))
	rpropStep(n.Weights[lo:hi], n.scratch.slopes[lo:hi], n.scratch.prevSlopes[lo:hi], n.scratch.prevSteps[lo:hi],
		n.Rprop.IncreaseFactor, n.Rprop.DecreaseFactor, n.Rprop.DeltaMin, n.Rprop.DeltaMax)
}

// initRpropSteps seeds every weight's RPROP step to DeltaZero; called
// once before the first epoch of an RPROP training run.
func (n *Network[T]) initRpropSteps() {
	n.scratch.ensure(len(n.Neurons), len(n.Weights))
	for i := range n.scratch.prevSteps {
		n.scratch.prevSteps[i] = n.Rprop.DeltaZero
	}
}
