// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// Layer is a half-open range [FirstNeuron, LastNeuron) over the
// network's global, contiguous neuron pool. In a Layered network every
// non-output layer's last neuron is that layer's bias; in a Shortcut
// network only the first layer carries a bias, reused by every later
// layer through shortcut edges (spec.md 3).
type Layer struct {
	FirstNeuron, LastNeuron int32
}

// Size returns the number of neurons in the layer, bias included.
func (l Layer) Size() int { return int(l.LastNeuron - l.FirstNeuron) }

// HasBias reports whether this layer owns a bias neuron at its last
// slot. Only the input layer of a Shortcut network and every non-output
// layer of a Layered network own one; later Shortcut layers reuse the
// first layer's bias through shortcut edges instead.
func (l Layer) HasBias(li, nLayers int, kind NetworkType) bool {
	if li == nLayers-1 { // output layer never has a bias
		return false
	}
	if kind == Shortcut {
		return li == 0
	}
	return true
}
