// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// errorValue applies the configured error function to a raw
// (target-actual) difference. ErrorTanh is log((1+diff)/(1-diff)), the
// inverse hyperbolic tangent up to a factor of two, which diverges as
// diff approaches +-1; the reference implementation (and this one)
// clamps the result to +-17.0 rather than letting it reach infinity --
// log(1.9999999/0.0000001) is already close to 17, so the clamp only
// ever bites on the last few representable steps before the diff's
// legal range ends, and spec.md 9 preserves this literal rather than
// replacing it with a principled bound.
func errorValue[T Float](fn ErrorFunc, diff T) T {
	switch fn {
	case ErrorLinear:
		return diff
	case ErrorTanh:
		switch {
		case diff < -0.9999999:
			return -17
		case diff > 0.9999999:
			return 17
		default:
			return logT((1 + diff) / (1 - diff))
		}
	default:
		return diff
	}
}

// Test runs the network on input, compares against desiredOutput,
// accumulates MSE and bit-fail statistics, and returns the network's
// actual output. It does not adjust any weight (spec.md 4.4).
func (n *Network[T]) Test(input, desiredOutput []T) ([]T, error) {
	out, err := n.Run(input)
	if err != nil {
		return nil, err
	}
	if len(desiredOutput) != len(out) {
		return nil, n.setError(ErrInputOutputSizeMismatch, "Test: got %d targets, network has %d outputs", len(desiredOutput), len(out))
	}
	n.accumulateError(desiredOutput, out)
	return out, nil
}

// accumulateError accumulates the raw, symmetric-halved diff squared into
// MSEValue -- MSE is always Sigma diff^2 regardless of ErrorFunc, which
// only shapes the training error signal Backpropagate derives (fann_train.c
// fann_update_MSE squares neuron_diff, never the error-function value).
func (n *Network[T]) accumulateError(desired, actual []T) {
	outLayer := n.Layers[len(n.Layers)-1]
	for i := range desired {
		diff := desired[i] - actual[i]
		nrn := &n.Neurons[outLayer.FirstNeuron+int32(i)]
		if nrn.Activation.Symmetric() {
			diff /= 2
		}
		if n.BitFailLimit != 0 && absT(diff) > n.BitFailLimit {
			n.NumBitFail++
		}
		n.MSEValue += float64(diff) * float64(diff)
	}
	n.NumMSE += len(desired)
}

// GetMSE returns the mean squared error accumulated since construction
// or the last ResetMSE.
func (n *Network[T]) GetMSE() float64 {
	if n.NumMSE == 0 {
		return 0
	}
	return n.MSEValue / float64(n.NumMSE)
}

// GetBitFail returns the bit-fail count accumulated since construction
// or the last ResetMSE.
func (n *Network[T]) GetBitFail() int { return n.NumBitFail }

// ResetMSE clears the running MSE and bit-fail counters.
func (n *Network[T]) ResetMSE() {
	n.MSEValue = 0
	n.NumMSE = 0
	n.NumBitFail = 0
}
