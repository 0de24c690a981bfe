// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "github.com/libfann/gofann/paths"

// layerWidths returns, for every entry in sizes, the width the layer
// actually occupies including its bias neuron (spec.md 4.2).
func layerWidths(sizes []int, kind NetworkType) []int {
	out := make([]int, len(sizes))
	for i, s := range sizes {
		l := Layer{} // only HasBias matters here; FirstNeuron/LastNeuron are unused
		out[i] = s
		if l.HasBias(i, len(sizes), kind) {
			out[i]++
		}
	}
	return out
}

// newSkeleton allocates Layers and Neurons for the given layer widths,
// setting every layer's bias neuron value to 1 and every non-bias
// neuron's activation to Sigmoid with steepness 0.5, the construction
// defaults both NewStandard and NewSparse share.
func newSkeleton[T Float](sizes []int, kind NetworkType) *Network[T] {
	n := &Network[T]{Type: kind}
	n.defaultHyperparams()
	widths := layerWidths(sizes, kind)

	n.Layers = make([]Layer, len(sizes))
	var cursor int32
	for i, w := range widths {
		n.Layers[i] = Layer{FirstNeuron: cursor, LastNeuron: cursor + int32(w)}
		cursor += int32(w)
	}
	n.Neurons = make([]Neuron[T], cursor)
	for li, l := range n.Layers {
		biased := l.HasBias(li, len(n.Layers), kind)
		last := l.LastNeuron
		if biased {
			last--
		}
		for i := l.FirstNeuron; i < last; i++ {
			n.Neurons[i] = Neuron[T]{Activation: Sigmoid, Steepness: 0.5}
		}
		if biased {
			n.Neurons[last] = Neuron[T]{Activation: Linear, Steepness: 1, Value: 1}
		}
	}
	n.Output = make([]T, sizes[len(sizes)-1])
	return n
}

// wireConnections fills Weights/Sources (and each neuron's
// FirstCon/LastCon) from a per-destination-layer slice of source-index
// lists, randomizing every weight in [-0.1, 0.1].
func (n *Network[T]) wireConnections(perLayerConns [][][]int32) {
	var weights []T
	var sources []int32
	for li := 1; li < len(n.Layers); li++ {
		layer := n.Layers[li]
		biased := layer.HasBias(li, len(n.Layers), n.Type)
		stop := layer.LastNeuron
		if biased {
			stop--
		}
		conns := perLayerConns[li-1]
		for ni := layer.FirstNeuron; ni < stop; ni++ {
			nrn := &n.Neurons[ni]
			nrn.FirstCon = int32(len(weights))
			for _, src := range conns[ni-layer.FirstNeuron] {
				sources = append(sources, src)
				weights = append(weights, T(n.rand().Uniform(-0.1, 0.1)))
			}
			nrn.LastCon = int32(len(weights))
		}
	}
	n.Weights = weights
	n.Sources = sources
}

// NewStandard builds a Layered, fully-connected network: every neuron
// in layer i (including its bias) feeds every non-bias neuron in layer
// i+1, and only i+1 (spec.md 4.2). sizes lists each layer's neuron
// count, bias excluded, input layer first.
func NewStandard[T Float](sizes []int) (*Network[T], error) {
	if len(sizes) < 2 {
		return nil, (&ErrState{}).setError(ErrInvalidConfiguration, "NewStandard: need at least 2 layers, got %d", len(sizes))
	}
	n := newSkeleton[T](sizes, Layered)
	full := paths.Full{}
	perLayer := make([][][]int32, len(sizes)-1)
	for li := 1; li < len(n.Layers); li++ {
		prev := n.Layers[li-1]
		cur := n.Layers[li]
		nsend := prev.Size()
		nrecv := cur.Size()
		if cur.HasBias(li, len(n.Layers), Layered) {
			nrecv--
		}
		conns := full.Connect(nsend, nrecv)
		// shift source indices from [0,nsend) to this layer's global range
		shifted := make([][]int32, nrecv)
		for r := range conns {
			shifted[r] = make([]int32, len(conns[r]))
			for k, s := range conns[r] {
				shifted[r][k] = s + prev.FirstNeuron
			}
		}
		perLayer[li-1] = shifted
	}
	n.wireConnections(perLayer)
	// fully-layered networks use the consecutive-index fast path in
	// Run/Backpropagate, which is selected by an empty Sources, so the
	// array is dropped: ConnectionArray derives each source from layer
	// positions, and SetWeight reports an error on such a network.
	n.Sources = nil
	return n, nil
}

// NewSparse builds a Layered network where each non-bias neuron connects
// to quota = floor(rate * previous layer size, bias included) of the
// previous layer's neurons (at least one), drawn uniformly at random and
// without replacement, so a neuron never lists the same source twice.
// Each neuron draws independently: the previous layer's bias is not
// guaranteed to be among its sources, and a source neuron may end up
// with no outgoing connection.
func NewSparse[T Float](rate float64, sizes []int) (*Network[T], error) {
	if len(sizes) < 2 {
		return nil, (&ErrState{}).setError(ErrInvalidConfiguration, "NewSparse: need at least 2 layers, got %d", len(sizes))
	}
	n := newSkeleton[T](sizes, Layered)
	perLayer := make([][][]int32, len(sizes)-1)
	ur := &paths.UniformRandom{Rng: n.rand()}
	for li := 1; li < len(n.Layers); li++ {
		prev := n.Layers[li-1]
		cur := n.Layers[li]
		nsend := prev.Size()
		nrecv := cur.Size()
		if cur.HasBias(li, len(n.Layers), Layered) {
			nrecv--
		}
		quota := int(float64(nsend) * rate)
		if quota < 1 {
			quota = 1
		}
		if quota > nsend {
			quota = nsend
		}
		shifted := make([][]int32, nrecv)
		for r := 0; r < nrecv; r++ {
			picks := ur.SampleWithoutReplacement(nsend, quota)
			shifted[r] = make([]int32, len(picks))
			for k, s := range picks {
				shifted[r][k] = s + prev.FirstNeuron
			}
		}
		perLayer[li-1] = shifted
	}
	n.wireConnections(perLayer)
	return n, nil
}

// NewShortcut builds a Shortcut network: every neuron connects to every
// neuron (bias neurons included) in every strictly earlier layer, not
// just the immediately preceding one (spec.md 4.2). Only the input
// layer owns a bias; later layers reach it through a shortcut edge like
// any other earlier neuron.
func NewShortcut[T Float](sizes []int) (*Network[T], error) {
	if len(sizes) < 2 {
		return nil, (&ErrState{}).setError(ErrInvalidConfiguration, "NewShortcut: need at least 2 layers, got %d", len(sizes))
	}
	n := newSkeleton[T](sizes, Shortcut)
	full := paths.Full{}
	perLayer := make([][][]int32, len(sizes)-1)
	for li := 1; li < len(n.Layers); li++ {
		cur := n.Layers[li]
		nrecv := cur.Size()
		earlierCount := int(cur.FirstNeuron) // every neuron index below this layer
		conns := full.Connect(earlierCount, nrecv)
		perLayer[li-1] = conns
	}
	n.wireConnections(perLayer)
	return n, nil
}

// InitWeights applies the Widrow-Nguyen heuristic: rather than a flat
// uniform range, every weight is drawn from a range scaled by the
// number of hidden neurons and the input layer's observed value range,
// giving hidden units a better spread of initial activations than pure
// random initialization (spec.md 10, original_source fann_init_weights).
func (n *Network[T]) InitWeights(data *TrainData[T]) error {
	if data.NumInput() != n.NumInput() {
		return n.setError(ErrInputOutputSizeMismatch, "InitWeights: dataset input width does not match network")
	}
	minIn, maxIn := data.InputRange()
	var inRange T
	for i := range minIn {
		if d := maxIn[i] - minIn[i]; d > inRange {
			inRange = d
		}
	}
	if inRange == 0 {
		inRange = 1
	}
	numHidden := 0
	for li := 1; li < len(n.Layers)-1; li++ {
		numHidden += n.Layers[li].Size()
	}
	scale := T(sqrtFloat(float64(numHidden+1))) * T(0.7) / inRange
	if numHidden == 0 {
		scale = T(0.7) / inRange
	}
	for i := range n.Weights {
		n.Weights[i] = T(n.rand().Uniform(-float64(scale), float64(scale)))
	}
	n.clearTrainScratch()
	return nil
}
