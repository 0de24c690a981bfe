// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// BatchEpochRunner drives the per-pattern Run+Backpropagate pass of one
// epoch over a dataset, leaving only the final weight update
// (ApplyBatch/ApplyRprop/...) to the caller. It exists so a caller can
// swap in a concurrent implementation without TrainEpoch itself needing
// to know about goroutines (spec.md 5: training is "single-threaded
// unless a collaborator opts in").
type BatchEpochRunner[T Float] interface {
	RunEpoch(net *Network[T], data *TrainData[T]) (mse float64, err error)
}

// SerialRunner is the default BatchEpochRunner: it runs every pattern on
// the calling goroutine, in dataset order, with no concurrency at all.
type SerialRunner[T Float] struct{}

func (SerialRunner[T]) RunEpoch(net *Network[T], data *TrainData[T]) (float64, error) {
	net.ResetMSE()
	for p := 0; p < data.NumData(); p++ {
		in, out := data.At(p)
		if _, err := net.Run(in); err != nil {
			return 0, err
		}
		if err := net.Backpropagate(out); err != nil {
			return 0, err
		}
		if net.Algorithm == Incremental {
			net.ApplyIncremental()
		}
	}
	return net.GetMSE(), nil
}

// TrainEpochWith runs one epoch via the given runner and then applies
// the batch-style weight update TrainEpoch would have (a no-op for
// Incremental, which the runner already applied per-pattern).
func (n *Network[T]) TrainEpochWith(runner BatchEpochRunner[T], data *TrainData[T]) (float64, error) {
	if n.Algorithm == RPROP && n.scratch.prevSteps == nil {
		n.initRpropSteps()
	}
	mse, err := runner.RunEpoch(n, data)
	if err != nil {
		return 0, err
	}
	if n.Algorithm != Incremental {
		n.applyUpdate(data.NumData())
	}
	return mse, nil
}
