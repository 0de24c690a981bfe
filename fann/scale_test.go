// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import (
	"math"
	"testing"
)

func TestScaleInputDescaleInputRoundTrip(t *testing.T) {
	data, err := CreateTrain[float64](2, 1,
		[]float64{0, 10, 5, 15, 10, 20},
		[]float64{1, 2, 3},
	)
	if err != nil {
		t.Fatalf("CreateTrain: %v", err)
	}
	net, _ := NewStandard[float64]([]int{2, 3, 1})
	if err := net.SetScalingParams(data, -1, 1, -1, 1); err != nil {
		t.Fatalf("SetScalingParams: %v", err)
	}
	in := []float64{5, 15}
	orig := append([]float64(nil), in...)
	if err := net.ScaleInput(in); err != nil {
		t.Fatalf("ScaleInput: %v", err)
	}
	if err := net.DescaleInput(in); err != nil {
		t.Fatalf("DescaleInput: %v", err)
	}
	for i := range in {
		if math.Abs(in[i]-orig[i]) > 1e-9 {
			t.Errorf("round trip mismatch at %d: got %v, want %v", i, in[i], orig[i])
		}
	}
}

func TestScaleOutputsErrorsWithoutParams(t *testing.T) {
	net, _ := NewStandard[float32]([]int{2, 3, 1})
	if err := net.ScaleInput([]float32{1, 2}); err == nil {
		t.Error("ScaleInput without SetScalingParams should error")
	}
	if net.ScalingSet() {
		t.Error("ScalingSet() should be false before SetScalingParams")
	}
}

func TestClearScalingParams(t *testing.T) {
	data, _ := CreateTrain[float32](1, 1, []float32{1, 2, 3}, []float32{1, 2, 3})
	net, _ := NewStandard[float32]([]int{1, 2, 1})
	_ = net.SetScalingParams(data, -1, 1, -1, 1)
	if !net.ScalingSet() {
		t.Fatal("expected ScalingSet() true after SetScalingParams")
	}
	net.ClearScalingParams()
	if net.ScalingSet() {
		t.Error("ClearScalingParams should reset ScalingSet() to false")
	}
}
