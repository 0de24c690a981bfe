// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import (
	"testing"

	"github.com/chewxy/math32"
)

const difTol = float32(1.0e-6)

func TestActivateSigmoidSymmetricIsTanh(t *testing.T) {
	inputs := []float32{-2, -1, 0, 1, 2}
	for _, s := range inputs {
		got := Activate(SigmoidSymmetric, s)
		want := math32.Tanh(s)
		if dif := math32.Abs(got - want); dif > difTol {
			t.Errorf("Activate(SigmoidSymmetric, %v) = %v, want %v (dif %v)", s, got, want, dif)
		}
	}
}

func TestActivateBounds(t *testing.T) {
	cases := []struct {
		fn       ActivationFunc
		sum      float32
		min, max float32
	}{
		{Sigmoid, -100, 0, 1},
		{Sigmoid, 100, 0, 1},
		{SigmoidSymmetric, -100, -1, -1},
		{SigmoidSymmetric, 100, 1, 1},
		{LinearPiece, -5, 0, 0},
		{LinearPiece, 5, 1, 1},
		{LinearPieceSymmetric, -5, -1, -1},
		{LinearPieceSymmetric, 5, 1, 1},
	}
	for _, c := range cases {
		got := Activate(c.fn, c.sum)
		if got < c.min-difTol || got > c.max+difTol {
			t.Errorf("Activate(%v, %v) = %v, want in [%v,%v]", c.fn, c.sum, got, c.min, c.max)
		}
	}
}

func TestStepwiseApproximatesSmooth(t *testing.T) {
	const tol = 0.02
	for _, sum := range []float32{-3, -1.5, -0.5, 0.5, 1.5, 3} {
		smooth := Activate(SigmoidSymmetric, sum)
		stepped := Activate(SigmoidSymmetricStepwise, sum)
		if dif := math32.Abs(smooth - stepped); dif > tol {
			t.Errorf("stepwise diverges from smooth sigmoid at %v: smooth=%v stepped=%v dif=%v", sum, smooth, stepped, dif)
		}
	}
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-3
	fns := []ActivationFunc{Sigmoid, SigmoidSymmetric, Gaussian, GaussianSymmetric, Elliot, ElliotSymmetric, Sin, Cos}
	for _, fn := range fns {
		sum := float32(0.3)
		v0 := Activate(fn, sum-h)
		v1 := Activate(fn, sum+h)
		numeric := (v1 - v0) / (2 * h)
		value := Activate(fn, sum)
		analytic, err := Derivative(fn, 1, value, sum)
		if err != nil {
			t.Fatalf("Derivative(%v): %v", fn, err)
		}
		if dif := math32.Abs(numeric - analytic); dif > 0.05 {
			t.Errorf("Derivative(%v) = %v, finite-difference estimate %v (dif %v)", fn, analytic, numeric, dif)
		}
	}
}

func TestDerivativeRejectsThreshold(t *testing.T) {
	if _, err := Derivative[float32](Threshold, 1, 1, 1); err == nil {
		t.Error("Derivative(Threshold) should return an error")
	}
	if Threshold.Differentiable() {
		t.Error("Threshold.Differentiable() should be false")
	}
}
