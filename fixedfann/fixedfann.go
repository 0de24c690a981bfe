// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixedfann provides an integer-arithmetic, evaluation-only
// network derived from a trained fann.Network[float32]. It exists for
// targets where floating point is slow or unavailable: every weight and
// activation is quantized to a fixed number of fractional bits
// (decimalPoint) and Run accumulates every weighted sum in int64. Each
// activation is still evaluated by converting that sum to float64 and
// calling fann.Activate (spec.md 10, grounded on original_source/fixedfann.c,
// which is a thin build-flag wrapper around the same run loop shared
// with the floating-point library).
package fixedfann

import (
	"math"

	"github.com/libfann/gofann/fann"
)

// Network is a quantized, training-incapable copy of a trained
// float32 network. DecimalPoint is the number of fractional bits every
// weight and activation value is scaled by: a stored integer v
// represents the real value v / (1<<DecimalPoint).
type Network struct {
	DecimalPoint uint
	MultiplierShift uint // == DecimalPoint, kept distinct for clarity at call sites

	Layers  []fann.Layer
	Neurons []quantNeuron

	Weights []int64
	Sources []int32

	Output []int64
}

type quantNeuron struct {
	firstCon, lastCon int32
	activation        fann.ActivationFunc
	steepness         int64 // quantized steepness
	value             int64
}

// maxUsableDecimalPoint bounds DecimalPoint. Each weight*value product
// carries 2*DecimalPoint fractional bits before the division by the
// multiplier, so at 30 bits it stays within int64 only while the product
// of the two real magnitudes is below 8; no per-weight check is made. The
// reference
// implementation derives an equivalent bound from each weight's
// magnitude, picking the smallest decimal point that keeps every weight
// representable in a 16 or 32-bit integer.
const maxUsableDecimalPoint = 30

// Quantize derives a fixed-point network from a trained float32
// network. decimalPoint is clamped to maxUsableDecimalPoint; callers
// wanting FANN's own "largest safe decimal point for these weights"
// search should compute it from n.GetWeights() before calling.
func Quantize(n *fann.Network[float32], decimalPoint uint) *Network {
	if decimalPoint > maxUsableDecimalPoint {
		decimalPoint = maxUsableDecimalPoint
	}
	scale := float64(int64(1) << decimalPoint)

	fx := &Network{
		DecimalPoint:    decimalPoint,
		MultiplierShift: decimalPoint,
		Layers:          append([]fann.Layer(nil), n.Layers...),
		Neurons:         make([]quantNeuron, len(n.Neurons)),
		Weights:         make([]int64, len(n.Weights)),
		Sources:         append([]int32(nil), n.Sources...),
		Output:          make([]int64, n.NumOutput()),
	}
	weights := n.GetWeights()
	for i, w := range weights {
		fx.Weights[i] = int64(math.Round(float64(w) * scale))
	}
	for i := range n.Neurons {
		fn, err := n.ActivationFunctionAt(i)
		if err != nil {
			fn = fann.Linear
		}
		fx.Neurons[i] = quantNeuron{
			firstCon:   n.Neurons[i].FirstCon,
			lastCon:    n.Neurons[i].LastCon,
			activation: fn,
			steepness:  int64(math.Round(float64(n.Neurons[i].Steepness) * scale)),
		}
	}
	return fx
}

// Run evaluates the network on an already-quantized integer input (each
// element scaled by 1<<DecimalPoint) and returns a quantized integer
// output in the same scale.
func (fx *Network) Run(input []int64) []int64 {
	first := fx.Layers[0]
	for i, v := range input {
		fx.Neurons[int(first.FirstNeuron)+i].value = v
	}
	shift := int64(1) << fx.DecimalPoint
	for i := len(input); i < first.Size(); i++ {
		fx.Neurons[int(first.FirstNeuron)+i].value = shift // input-layer bias, 1.0 in this scale
	}

	fullyLayered := len(fx.Sources) == 0

	for li := 1; li < len(fx.Layers); li++ {
		layer := fx.Layers[li]
		for ni := layer.FirstNeuron; ni < layer.LastNeuron; ni++ {
			nrn := &fx.Neurons[ni]
			if nrn.lastCon == nrn.firstCon && nrn.activation == fann.Linear {
				nrn.value = shift // bias neuron, pinned to 1.0 in this scale
				continue
			}
			var sum int64
			if fullyLayered {
				prev := fx.Layers[li-1]
				src := prev.FirstNeuron
				w := nrn.firstCon
				for c := nrn.firstCon; c < nrn.lastCon; c++ {
					sum += (fx.Weights[w] * fx.Neurons[src].value) / shift
					w++
					src++
				}
			} else {
				for c := nrn.firstCon; c < nrn.lastCon; c++ {
					sum += (fx.Weights[c] * fx.Neurons[fx.Sources[c]].value) / shift
				}
			}
			sum = (sum * nrn.steepness) / shift
			nrn.value = activateFixed(nrn.activation, sum, shift)
		}
	}

	outLayer := fx.Layers[len(fx.Layers)-1]
	for i := outLayer.FirstNeuron; i < outLayer.LastNeuron; i++ {
		fx.Output[i-outLayer.FirstNeuron] = fx.Neurons[i].value
	}
	return fx.Output
}
