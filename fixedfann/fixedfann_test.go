// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedfann

import (
	"math"
	"testing"

	"github.com/libfann/gofann/fann"
)

func TestQuantizeRunApproximatesFloat(t *testing.T) {
	net, err := fann.NewStandard[float32]([]int{2, 3, 1})
	if err != nil {
		t.Fatalf("NewStandard: %v", err)
	}
	net.SetActivationFunctionHidden(fann.SigmoidSymmetric)
	net.SetActivationFunctionOutput(fann.SigmoidSymmetric)

	input := []float32{0.5, -0.3}
	floatOut, err := net.Run(input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	const decimalPoint = 12
	fx := Quantize(net, decimalPoint)
	shift := int64(1) << decimalPoint
	quantInput := make([]int64, len(input))
	for i, v := range input {
		quantInput[i] = int64(math.Round(float64(v) * float64(shift)))
	}
	fxOut := fx.Run(quantInput)

	got := float64(fxOut[0]) / float64(shift)
	want := float64(floatOut[0])
	if dif := math.Abs(got - want); dif > 0.01 {
		t.Errorf("quantized output %v diverges from float output %v (dif %v)", got, want, dif)
	}
}

func TestQuantizeClampsDecimalPoint(t *testing.T) {
	net, _ := fann.NewStandard[float32]([]int{1, 1})
	fx := Quantize(net, 1000)
	if fx.DecimalPoint != maxUsableDecimalPoint {
		t.Errorf("DecimalPoint = %d, want clamp to %d", fx.DecimalPoint, maxUsableDecimalPoint)
	}
}
