// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// Backpropagate computes the error signal for every neuron given a
// desired output for the pattern Run was last called with, accumulates
// per-weight slopes into the training scratch buffers, and updates the
// running MSE/bit-fail counters exactly as Test would (spec.md 4.5). It
// does not itself touch any weight; a weight-update pass
// (ApplyIncremental, AccumulateBatch + ApplyBatch, or the
// RPROP/Quickprop/SARPROP equivalents) must follow.
func (n *Network[T]) Backpropagate(desired []T) error {
	if err := n.computeOutputError(desired); err != nil {
		return err
	}
	errs := n.scratch.errors

	fullyLayered := n.Type == Layered && len(n.Sources) == 0

	for li := len(n.Layers) - 1; li >= 1; li-- {
		layer := n.Layers[li]
		biased := layer.HasBias(li, len(n.Layers), n.Type)
		stop := layer.LastNeuron
		if biased {
			stop--
		}
		for ni := layer.FirstNeuron; ni < stop; ni++ {
			e := errs[ni]
			if e == 0 {
				continue
			}
			nrn := &n.Neurons[ni]
			if fullyLayered {
				src := n.Layers[li-1].FirstNeuron
				for c := nrn.FirstCon; c < nrn.LastCon; c++ {
					n.scratch.slopes[c] += e * n.Neurons[src].Value
					n.propagateInto(errs, src, e*n.Weights[c])
					src++
				}
			} else {
				for c := nrn.FirstCon; c < nrn.LastCon; c++ {
					srcIdx := n.Sources[c]
					n.scratch.slopes[c] += e * n.Neurons[srcIdx].Value
					n.propagateInto(errs, srcIdx, e*n.Weights[c])
				}
			}
		}
	}
	return nil
}

// propagateInto adds weighted*derivative(src) into errs[src]. Bias
// neurons have no incoming connections and are never updated, so their
// entry in errs is left untouched.
func (n *Network[T]) propagateInto(errs []T, src int32, weighted T) {
	nrn := &n.Neurons[src]
	if nrn.IsBias() {
		return
	}
	deriv, err := Derivative(nrn.Activation, nrn.Steepness, nrn.Value, nrn.Sum)
	if err != nil {
		return
	}
	errs[src] += weighted * deriv
}

// computeOutputError fills scratch.errors with the output layer's
// training error signal -- derivative times the symmetric-halved,
// error-function-transformed diff (spec.md 4.5, fann_compute_MSE) -- and
// feeds the raw diff into accumulateError for MSE/bit-fail reporting.
// Every other neuron's slot is left at zero.
func (n *Network[T]) computeOutputError(desired []T) error {
	if len(desired) != n.NumOutput() {
		return n.setError(ErrInputOutputSizeMismatch, "Backpropagate: got %d targets, network has %d outputs", len(desired), n.NumOutput())
	}
	n.scratch.ensure(len(n.Neurons), len(n.Weights))
	errs := n.scratch.errors
	for i := range errs {
		errs[i] = 0
	}

	outLayer := n.Layers[len(n.Layers)-1]
	dst := errs[outLayer.FirstNeuron:]
	if err := n.outputErrorSignal(desired, dst); err != nil {
		return err
	}
	n.accumulateError(desired, n.Output)
	return nil
}

// outputErrorSignal writes, into dst[0:len(desired)], each output
// neuron's training error signal e_j = activation_derivative · train_diff
// (spec.md 4.5) -- the symmetric-halved, error-function-transformed diff
// times the derivative -- without touching MSE/bit-fail counters. Used
// both by computeOutputError (which accumulates those counters
// separately) and by cascade candidate training, which correlates
// against this same per-pattern signal but must never disturb the
// network's own MSE tracking (spec.md 4.9). When scaling parameters are
// set, each desired value is first mapped through the output scaling so
// it is compared with the neuron's unscaled-space value.
func (n *Network[T]) outputErrorSignal(desired []T, dst []T) error {
	outLayer := n.Layers[len(n.Layers)-1]
	for i, d := range desired {
		nrn := &n.Neurons[outLayer.FirstNeuron+int32(i)]
		if n.scale.set() {
			slot := n.NumInput() + i
			d = (d-n.scale.Mean[slot])/n.scale.Deviation[slot]*n.scale.Factor[slot] + n.scale.Factor[slot] + n.scale.NewMin[slot]
		}
		diff := d - nrn.Value
		if nrn.Activation.Symmetric() {
			diff /= 2
		}
		trainDiff := errorValue(n.ErrorFunc, diff)
		deriv, err := Derivative(nrn.Activation, nrn.Steepness, nrn.Value, nrn.Sum)
		if err != nil {
			return err
		}
		dst[i] = trainDiff * deriv
	}
	return nil
}

// outputWeightRange returns the half-open range, within Weights, of the
// output layer's incoming connections. installBest always appends a new
// output connection after every existing one (cascade.go), so this range
// stays the trailing block of Weights throughout a cascade run -- the
// same "first output neuron's first_con to the end of the weight array"
// range spec.md 4.9 restricts output-phase training to.
func (n *Network[T]) outputWeightRange() (int32, int32) {
	outLayer := n.Layers[len(n.Layers)-1]
	return n.Neurons[outLayer.FirstNeuron].FirstCon, int32(len(n.Weights))
}

// backpropagateOutputOnly computes the output layer's error signal and
// accumulates slopes for only its incoming connections, with no
// propagation into earlier layers -- cascade output-phase training
// (spec.md 4.9) updates only those weights, so there is no earlier
// neuron whose slope would ever be read.
func (n *Network[T]) backpropagateOutputOnly(desired []T) error {
	if err := n.computeOutputError(desired); err != nil {
		return err
	}
	errs := n.scratch.errors
	outLayer := n.Layers[len(n.Layers)-1]
	for ni := outLayer.FirstNeuron; ni < outLayer.LastNeuron; ni++ {
		e := errs[ni]
		if e == 0 {
			continue
		}
		nrn := &n.Neurons[ni]
		for c := nrn.FirstCon; c < nrn.LastCon; c++ {
			srcIdx := n.Sources[c]
			n.scratch.slopes[c] += e * n.Neurons[srcIdx].Value
		}
	}
	return nil
}
