// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "log/slog"

// CallbackAction, already declared in types.go, controls whether
// TrainOnData continues or stops after a Callback invocation.

// Callback is invoked during TrainOnData after the first epoch and after
// every reportInterval-th epoch; returning Stop ends training early
// (spec.md 4.7).
type Callback[T Float] func(net *Network[T], epoch int, mse float64, bitFail int) CallbackAction

// Train runs one training step on a single pattern: Run, Backpropagate,
// then whichever weight-update the network's Algorithm names, applied
// immediately with a data count of one (spec.md 4.5, 4.6). For Batch,
// RPROP, Quickprop and SARPROP each call is therefore a one-pattern
// epoch; nothing accumulates across calls. Train exists for callers
// driving their own pattern loop.
func (n *Network[T]) Train(input, desiredOutput []T) error {
	if n.Algorithm == RPROP && n.scratch.prevSteps == nil {
		n.initRpropSteps()
	}
	if _, err := n.Run(input); err != nil {
		return err
	}
	if err := n.Backpropagate(desiredOutput); err != nil {
		return err
	}
	n.applyUpdate(1)
	return nil
}

func (n *Network[T]) applyUpdate(numData int) {
	switch n.Algorithm {
	case Incremental:
		n.ApplyIncremental()
	case Batch:
		n.ApplyBatch(numData)
	case RPROP:
		n.ApplyRprop()
	case Quickprop:
		n.ApplyQuickprop()
	case SARPROP:
		n.sarpropEpoch++
		n.ApplySarprop(n.sarpropEpoch)
	}
}

// TrainEpoch runs every pattern in data once, accumulating slopes (for
// the batch-style algorithms) or applying updates immediately (for
// Incremental), and returns the MSE over the epoch. ResetMSE is called
// first so the returned value reflects only this epoch.
func (n *Network[T]) TrainEpoch(data *TrainData[T]) (float64, error) {
	n.ResetMSE()
	if n.Algorithm == RPROP && n.scratch.prevSteps == nil {
		n.initRpropSteps()
	}
	for p := 0; p < data.NumData(); p++ {
		in, out := data.At(p)
		if _, err := n.Run(in); err != nil {
			return 0, err
		}
		if err := n.Backpropagate(out); err != nil {
			return 0, err
		}
		if n.Algorithm == Incremental {
			n.ApplyIncremental()
		}
	}
	if n.Algorithm != Incremental {
		n.applyUpdate(data.NumData())
	}
	return n.GetMSE(), nil
}

// shouldStop reports whether the configured StopFunc's threshold has
// been reached.
func (n *Network[T]) shouldStop(desiredError float64) bool {
	switch n.StopFunc {
	case StopBitFail:
		return float64(n.NumBitFail) <= desiredError
	default:
		return n.GetMSE() <= desiredError
	}
}

// TrainOnData runs up to maxEpochs epochs of TrainEpoch, invoking cb
// every reportInterval epochs (reportInterval <= 0 disables reporting)
// and stopping early either when cb returns Stop or when StopFunc's
// threshold is satisfied (spec.md 4.7).
func (n *Network[T]) TrainOnData(data *TrainData[T], maxEpochs int, reportInterval int, desiredError float64, cb Callback[T]) error {
	for epoch := 1; epoch <= maxEpochs; epoch++ {
		mse, err := n.TrainEpoch(data)
		if err != nil {
			return err
		}
		if reportInterval > 0 && (epoch%reportInterval == 0 || epoch == 1) && cb != nil {
			if cb(n, epoch, mse, n.NumBitFail) == Stop {
				return nil
			}
		}
		if n.shouldStop(desiredError) {
			return nil
		}
	}
	return nil
}

// defaultLogCallback returns a Callback that logs epoch/MSE/bit-fail at
// Info level through log, the structured-logging equivalent of FANN's
// default stdout training report.
func defaultLogCallback[T Float](log *slog.Logger) Callback[T] {
	if log == nil {
		log = slog.Default()
	}
	return func(net *Network[T], epoch int, mse float64, bitFail int) CallbackAction {
		log.Info("training", "epoch", epoch, "mse", mse, "bit_fail", bitFail)
		return Continue
	}
}

// DefaultLogCallback is the exported constructor for defaultLogCallback,
// for callers assembling a TrainOnData call outside this package.
func DefaultLogCallback[T Float](log *slog.Logger) Callback[T] { return defaultLogCallback[T](log) }
