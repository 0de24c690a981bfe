// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// Neuron holds the per-unit state of the network: its slice of the flat
// connection/weight arrays, its most recent pre- and post-activation
// values, and its own activation tag and steepness (spec.md 3). A bias
// neuron is a Neuron with FirstCon == LastCon (zero fan-in) whose Value
// is pinned to 1 by Network.Run on every forward pass.
type Neuron[T Float] struct {
	// FirstCon, LastCon bound this neuron's half-open slice of the
	// network's weight array (and, for sparse/shortcut topologies, of
	// the parallel source-index array). LastCon-FirstCon is the fan-in.
	FirstCon, LastCon int32

	// Sum is the most recent pre-activation (after steepness multiply
	// and overflow saturation).
	Sum T
	// Value is the most recent post-activation.
	Value T

	// Steepness multiplies the weighted sum before the activation
	// function is applied.
	Steepness T
	// Activation is this neuron's nonlinearity tag.
	Activation ActivationFunc
}

// FanIn returns the neuron's number of incoming connections.
func (n *Neuron[T]) FanIn() int { return int(n.LastCon - n.FirstCon) }

// IsBias reports whether this neuron has no incoming connections, the
// defining trait of a bias unit. Input-layer neurons have none either, so
// it also reports true for them.
func (n *Neuron[T]) IsBias() bool { return n.FirstCon == n.LastCon }
