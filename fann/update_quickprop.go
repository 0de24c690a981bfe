// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// ApplyQuickprop updates every weight using Fahlman's quadratic-estimate
// rule: each weight's step is extrapolated from how its slope changed
// since the previous epoch, capped at mu times the previous step so a
// near-zero slope change cannot produce a runaway jump, plus a weight
// decay term that pulls large weights back toward zero (spec.md 4.6).
func (n *Network[T]) ApplyQuickprop() {
	n.applyQuickpropRange(0, int32(len(n.Weights)))
}

// applyQuickpropRange is ApplyQuickprop restricted to the half-open
// weight range [lo,hi) -- the range cascade output-phase training uses
// to touch only the output layer's incoming connections (spec.md 4.9).
func (n *Network[T]) applyQuickpropRange(lo, hi int32) {
	n.scratch.ensure(len(n.Neurons), len(n.Weights))
	mu, decay, lr := n.Quickprop.Mu, n.Quickprop.Decay, n.LearningRate
	shrinkFactor := mu / (1 + mu)

	for i := lo; i < hi; i++ {
		slope := n.scratch.slopes[i]
		slope += decay * n.Weights[i]
		prevSlope := n.scratch.prevSlopes[i]
		prevStep := n.scratch.prevWeightDeltas[i]

		var step T
		switch {
		case prevStep > 0.001:
			step = lr * slope
			if slope > shrinkFactor*prevSlope {
				step += mu * prevStep
			} else {
				step += prevStep * slope / (prevSlope - slope)
			}
		case prevStep < -0.001:
			step = lr * slope
			if slope < shrinkFactor*prevSlope {
				step += mu * prevStep
			} else {
				step += prevStep * slope / (prevSlope - slope)
			}
		default:
			step = lr * slope
		}

		n.Weights[i] += step
		n.scratch.prevWeightDeltas[i] = step
		n.scratch.prevSlopes[i] = slope
		n.scratch.slopes[i] = 0
	}
}
