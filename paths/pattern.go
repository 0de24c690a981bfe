// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paths defines patterns of connectivity between a sending layer
// and a receiving layer, independent of any network representation -- it
// only knows unit counts, and returns, for each receiving unit, the list
// of sending-unit indices connected to it. The network-layout code then
// uses these lists to lay out the flat connection/weight arrays.
package paths

// Pattern generates a receiver-indexed connectivity list between a
// sending layer of nsend units and a receiving layer of nrecv units.
type Pattern interface {
	// Name identifies the pattern, useful in diagnostics.
	Name() string

	// Connect returns, for each of the nrecv receiving units, the sorted
	// list of sending-unit indices feeding it. Implementations must
	// return at least one source per receiver and must not repeat a
	// source within a single receiver's list.
	Connect(nsend, nrecv int) [][]int32
}

// Full connects every receiving unit to every sending unit.
type Full struct{}

func (Full) Name() string { return "Full" }

func (Full) Connect(nsend, nrecv int) [][]int32 {
	all := make([]int32, nsend)
	for i := range all {
		all[i] = int32(i)
	}
	out := make([][]int32, nrecv)
	for r := range out {
		out[r] = all
	}
	return out
}
