// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// ApplySarprop runs one epoch of simulated-annealing RPROP: like
// iRPROP-, each weight carries its own adaptive step, but the step and
// slope comparisons are perturbed by an annealing term that shrinks as
// epoch grows and a weight-decay term keyed off the current epoch and
// MSE, letting the search escape local minima early in training and
// settle into plain RPROP-like behavior later (spec.md 4.6, 9).
//
// epoch must be the 1-based count of SARPROP epochs run on this network
// so far; the caller (TrainOnData) is responsible for tracking it, since
// unlike the other algorithms SARPROP's behavior is a function of
// training-run progress, not just the current weights and slopes.
func (n *Network[T]) ApplySarprop(epoch int) {
	n.applySarpropRange(0, int32(len(n.Weights)), epoch)
}

// applySarpropRange is ApplySarprop restricted to the half-open weight
// range [lo,hi) -- the range cascade output-phase training uses to touch
// only the output layer's incoming connections (spec.md 4.9).
func (n *Network[T]) applySarpropRange(lo, hi int32, epoch int) {
	n.scratch.ensure(len(n.Neurons), len(n.Weights))
	p := &n.Sarprop
	inc, dec := n.Rprop.IncreaseFactor, n.Rprop.DecreaseFactor
	dmin, dmax := T(0.000001), n.Rprop.DeltaMax

	rmsErr := T(0)
	if n.NumMSE > 0 {
		rmsErr = T(sqrtFloat(n.MSEValue / float64(n.NumMSE)))
	}
	annealing := expT(-p.Temperature * T(epoch))

	for i := lo; i < hi; i++ {
		slope := n.scratch.slopes[i]
		decayTerm := expT(T(epoch)*p.WeightDecayShift) * n.Weights[i]
		slope -= decayTerm

		prevSlope := n.scratch.prevSlopes[i]
		step := n.scratch.prevSteps[i]
		sign := slope * prevSlope

		threshold := p.StepErrorThresholdFactor * rmsErr
		noise := T(n.rand().Uniform(-1, 1)) * annealing * threshold

		switch {
		case sign > 0:
			step = minT(step*inc, dmax)
		case sign < 0:
			step = maxT(step*dec, dmin)
			slope = 0
		}

		if slope+noise > 0 {
			n.Weights[i] += step
		} else if slope+noise < 0 {
			n.Weights[i] -= step
		}

		n.scratch.prevSteps[i] = step
		n.scratch.prevSlopes[i] = slope
		n.scratch.slopes[i] = 0
	}
}
