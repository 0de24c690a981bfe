// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedfann

import (
	"math"

	"github.com/libfann/gofann/fann"
)

// activateFixed evaluates an activation function on a quantized
// pre-activation sum and returns a quantized result in the same scale.
// The reference fixed-point implementation replaces every
// floating-point activation with a precomputed integer stepwise table
// sized to the network's chosen decimal point; this evaluates the same
// fann.Activate formula the floating-point network uses and quantizes
// the result, which is exact wherever the reference table is exact (the
// breakpoints) and differs only in rounding between them -- acceptable
// since fixedfann networks are themselves an approximation of their
// floating-point source, never trained directly.
func activateFixed(fn fann.ActivationFunc, sum, shift int64) int64 {
	s := float64(sum) / float64(shift)
	v := fann.Activate(fn, s)
	return int64(math.Round(v * float64(shift)))
}
