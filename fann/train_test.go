// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "testing"

func xorData(t *testing.T) *TrainData[float32] {
	t.Helper()
	data, err := CreateTrain[float32](2, 1,
		[]float32{-1, -1, -1, 1, 1, -1, 1, 1},
		[]float32{-1, 1, 1, -1},
	)
	if err != nil {
		t.Fatalf("CreateTrain: %v", err)
	}
	return data
}

func TestTrainOnDataReducesMSE(t *testing.T) {
	data := xorData(t)
	net, err := NewStandard[float32]([]int{2, 3, 1})
	if err != nil {
		t.Fatalf("NewStandard: %v", err)
	}
	net.SetActivationFunctionHidden(SigmoidSymmetric)
	net.SetActivationFunctionOutput(SigmoidSymmetric)
	net.Algorithm = RPROP

	before, err := net.TrainEpoch(data)
	if err != nil {
		t.Fatalf("TrainEpoch: %v", err)
	}
	for i := 0; i < 200; i++ {
		if _, err := net.TrainEpoch(data); err != nil {
			t.Fatalf("TrainEpoch: %v", err)
		}
	}
	after := net.GetMSE()
	if after >= before {
		t.Errorf("MSE did not decrease after 200 RPROP epochs: before=%v after=%v", before, after)
	}
}

func TestTrainRejectsOutputWidthMismatch(t *testing.T) {
	net, _ := NewStandard[float32]([]int{2, 3, 1})
	if err := net.Backpropagate([]float32{1, 2}); err == nil {
		t.Error("Backpropagate with wrong output width should error")
	}
}

func TestResetMSEClearsCounters(t *testing.T) {
	data := xorData(t)
	net, _ := NewStandard[float32]([]int{2, 3, 1})
	net.SetActivationFunctionHidden(SigmoidSymmetric)
	net.SetActivationFunctionOutput(SigmoidSymmetric)
	net.BitFailLimit = 0.1
	in, out := data.At(0)
	if _, err := net.Test(in, out); err != nil {
		t.Fatalf("Test: %v", err)
	}
	if net.GetMSE() == 0 && net.NumMSE == 0 {
		t.Fatal("expected Test to record an MSE sample")
	}
	net.ResetMSE()
	if net.GetMSE() != 0 || net.GetBitFail() != 0 {
		t.Error("ResetMSE should clear both MSE and bit-fail counters")
	}
}

func TestCallbackCanStopEarly(t *testing.T) {
	data := xorData(t)
	net, _ := NewStandard[float32]([]int{2, 3, 1})
	net.SetActivationFunctionHidden(SigmoidSymmetric)
	net.SetActivationFunctionOutput(SigmoidSymmetric)
	net.Algorithm = RPROP

	calls := 0
	err := net.TrainOnData(data, 1000, 1, 0, func(n *Network[float32], epoch int, mse float64, bitFail int) CallbackAction {
		calls++
		if calls == 3 {
			return Stop
		}
		return Continue
	})
	if err != nil {
		t.Fatalf("TrainOnData: %v", err)
	}
	if calls != 3 {
		t.Errorf("callback invoked %d times, want exactly 3 before Stop", calls)
	}
}
