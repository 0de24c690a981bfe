// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// satClip bounds the raw weighted sum to +-150/steepness before the
// steepness multiply, matching the reference implementation's overflow
// guard: every supported activation saturates well inside [-150,150],
// so the clip only protects exp/tanh from operating on values large
// enough to overflow (spec.md 4.3). Returns the clipped, steepness-
// multiplied pre-activation value.
func satClip[T Float](rawSum, steepness T) T {
	bound := T(150)
	if steepness != 0 {
		bound = 150 / absT(steepness)
	}
	return clipT(rawSum, -bound, bound) * steepness
}

// Run performs one forward pass: input is copied into the input layer's
// non-bias neurons, bias neurons are pinned to 1, and every later
// layer's neurons accumulate a weighted sum over their connection range,
// apply steepness and overflow saturation, and evaluate their
// activation function. The output layer's post-activation values are
// copied into n.Output and also returned.
func (n *Network[T]) Run(input []T) ([]T, error) {
	if len(input) != n.NumInput() {
		return nil, n.setError(ErrInputOutputSizeMismatch, "Run: got %d inputs, network expects %d", len(input), n.NumInput())
	}
	scaled := input
	if n.scale.set() {
		scaled = make([]T, len(input))
		copy(scaled, input)
		n.scaleInputInto(scaled)
	}

	first := n.Layers[0]
	bias := first.HasBias(0, len(n.Layers), n.Type)
	last := first.LastNeuron
	if bias {
		last--
	}
	for i, v := range scaled {
		n.Neurons[int(first.FirstNeuron)+i].Value = v
	}
	if bias {
		n.Neurons[last].Value = 1
	}

	fullyLayered := n.Type == Layered && len(n.Sources) == 0

	for li := 1; li < len(n.Layers); li++ {
		layer := n.Layers[li]
		biased := layer.HasBias(li, len(n.Layers), n.Type)
		stop := layer.LastNeuron
		if biased {
			stop--
		}
		for ni := layer.FirstNeuron; ni < stop; ni++ {
			nrn := &n.Neurons[ni]
			var sum T
			if fullyLayered {
				prev := n.Layers[li-1]
				src := prev.FirstNeuron
				w := nrn.FirstCon
				for c := nrn.FirstCon; c < nrn.LastCon; c++ {
					sum += n.Weights[w] * n.Neurons[src].Value
					w++
					src++
				}
			} else {
				for c := nrn.FirstCon; c < nrn.LastCon; c++ {
					sum += n.Weights[c] * n.Neurons[n.Sources[c]].Value
				}
			}
			sum = satClip(sum, nrn.Steepness)
			nrn.Sum = sum
			nrn.Value = Activate(nrn.Activation, sum)
		}
		if biased {
			n.Neurons[stop].Value = 1
		}
	}

	outLayer := n.Layers[len(n.Layers)-1]
	for i := outLayer.FirstNeuron; i < outLayer.LastNeuron; i++ {
		n.Output[i-outLayer.FirstNeuron] = n.Neurons[i].Value
	}
	if n.scale.set() {
		n.descaleOutputInto(n.Output)
	}
	return n.Output, nil
}
