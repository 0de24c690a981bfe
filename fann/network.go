// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "github.com/libfann/gofann/erand"

// trainScratch holds the per-weight and per-neuron buffers training
// allocates lazily on first use and reuses across epochs (spec.md 3).
type trainScratch[T Float] struct {
	errors           []T // one per neuron
	slopes           []T // one per weight
	prevSteps        []T // one per weight (RPROP/SARPROP step)
	prevSlopes       []T // one per weight
	prevWeightDeltas []T // one per weight (incremental momentum, Quickprop prev step)
}

func (s *trainScratch[T]) ensure(nNeurons, nWeights int) {
	if len(s.errors) != nNeurons {
		s.errors = make([]T, nNeurons)
	}
	if len(s.slopes) != nWeights {
		s.slopes = make([]T, nWeights)
		s.prevSteps = make([]T, nWeights)
		s.prevSlopes = make([]T, nWeights)
		s.prevWeightDeltas = make([]T, nWeights)
	}
}

// ScalingParams holds the per-feature affine scaling derived from a
// training set (spec.md 4.8): mean and deviation describe the data,
// newMin/factor describe the target range.
type ScalingParams[T Float] struct {
	Mean, Deviation, NewMin, Factor []T
}

func (s *ScalingParams[T]) set() bool { return s.Mean != nil }

// Network is an index-addressed, flat-array feed-forward network
// supporting the three topology classes of spec.md 4.2. All neurons
// live in one contiguous slice indexed by Layer ranges; all weights (and,
// for Sparse/Shortcut topologies, all source-neuron indices) live in one
// contiguous slice per neuron's [FirstCon,LastCon) range. Cascade growth
// is the only operation that reallocates these slices, and it does so by
// rewriting indices rather than chasing pointers (spec.md 9).
type Network[T Float] struct {
	ErrState

	Type    NetworkType
	Layers  []Layer
	Neurons []Neuron[T]

	// Weights is length total_connections (spec.md 3).
	Weights []T
	// Sources is a parallel array to Weights giving each connection's
	// source-neuron index. For a Layered, fully-connected network this
	// array is nil: the fast forward/backprop path walks the previous
	// layer's neurons by consecutive index instead (spec.md 4.3).
	Sources []int32

	Output []T // length = output layer size; refreshed by Run

	// Hyperparameters (spec.md 3).
	LearningRate   T
	Momentum       T
	ErrorFunc      ErrorFunc
	StopFunc       StopFunc
	BitFailLimit   T
	Algorithm      TrainAlgorithm
	Rprop          RpropParams[T]
	Quickprop      QuickpropParams[T]
	Sarprop        SarpropParams[T]
	Cascade        CascadeParams[T]
	sarpropEpoch   int

	scratch trainScratch[T]
	scale   ScalingParams[T]

	// MSEValue and NumMSE accumulate the running mean-squared-error
	// numerator/denominator; NumBitFail is a running count since the
	// last ResetMSE (spec.md 4.4).
	MSEValue   float64
	NumMSE     int
	NumBitFail int

	cascadeScratch cascadeScratch[T]

	rng *erand.Seeded
}

func (n *Network[T]) rand() *erand.Seeded {
	if n.rng == nil {
		n.rng = erand.Global
	}
	return n.rng
}

// SetRandSource overrides the network's random source, for reproducible
// tests; the default is the shared process-wide generator.
func (n *Network[T]) SetRandSource(r *erand.Seeded) { n.rng = r }

// defaultHyperparams applies the construction-time defaults shared by
// every topology class, and tells the random source a new network is
// being built (erand.Seeded.NewNetwork reseeds it when seeding is
// enabled).
func (n *Network[T]) defaultHyperparams() {
	n.rand().NewNetwork()
	n.LearningRate = 0.7
	n.Momentum = 0
	n.ErrorFunc = ErrorTanh
	n.StopFunc = StopMSE
	n.BitFailLimit = 0.35
	n.Algorithm = RPROP
	n.Rprop.Defaults()
	n.Quickprop.Defaults()
	n.Sarprop.Defaults()
	n.Cascade.Defaults()
}

// NumLayers returns the number of layers, including input and output.
func (n *Network[T]) NumLayers() int { return len(n.Layers) }

// NumInput returns the input layer's size excluding its bias neuron.
func (n *Network[T]) NumInput() int {
	if len(n.Layers) == 0 {
		return 0
	}
	sz := n.Layers[0].Size()
	if n.Layers[0].HasBias(0, len(n.Layers), n.Type) {
		sz--
	}
	return sz
}

// NumOutput returns the output layer's size.
func (n *Network[T]) NumOutput() int {
	if len(n.Layers) == 0 {
		return 0
	}
	return n.Layers[len(n.Layers)-1].Size()
}

// TotalNeurons returns the total neuron count across all layers.
func (n *Network[T]) TotalNeurons() int { return len(n.Neurons) }

// TotalConnections returns the total connection count across all
// neurons, which must equal the sum of each neuron's fan-in (spec.md 8).
func (n *Network[T]) TotalConnections() int { return len(n.Weights) }

// LayerSizes returns each layer's neuron count, bias included -- the
// inverse of the layer-size vector networks are constructed from.
func (n *Network[T]) LayerSizes() []int {
	out := make([]int, len(n.Layers))
	for i, l := range n.Layers {
		out[i] = l.Size()
	}
	return out
}

// BiasArray returns, for each layer, the count of bias neurons it
// contains (0 or 1), matching get_bias_array's contract.
func (n *Network[T]) BiasArray() []int {
	out := make([]int, len(n.Layers))
	for i, l := range n.Layers {
		if l.HasBias(i, len(n.Layers), n.Type) {
			out[i] = 1
		}
	}
	return out
}

// ConnectionArray returns the source-neuron index for every connection,
// in destination order -- i.e. the neuron-index each weight in Weights
// draws its input from. Valid even on the fully-layered fast path, where
// Sources itself is left unallocated.
func (n *Network[T]) ConnectionArray() []int32 {
	if len(n.Sources) > 0 {
		out := make([]int32, len(n.Sources))
		copy(out, n.Sources)
		return out
	}
	out := make([]int32, len(n.Weights))
	for c := range out {
		out[c] = n.sourceOf(int32(c))
	}
	return out
}

// WeightsArray returns a copy of the flat weight array.
func (n *Network[T]) WeightsArray() []T {
	out := make([]T, len(n.Weights))
	copy(out, n.Weights)
	return out
}

// SetWeights overwrites the flat weight array in place; len(w) must
// equal TotalConnections.
func (n *Network[T]) SetWeights(w []T) error {
	if len(w) != len(n.Weights) {
		return n.setError(ErrIndexOutOfBound, "SetWeights: got %d weights, network has %d connections", len(w), len(n.Weights))
	}
	copy(n.Weights, w)
	return nil
}

// SetWeight sets a single connection's weight by destination neuron
// index and source neuron index, scanning that neuron's connection
// range for the matching source. Returns an error if no such connection
// exists.
func (n *Network[T]) SetWeight(fromNeuron, toNeuron int32, weight T) error {
	if int(toNeuron) < 0 || int(toNeuron) >= len(n.Neurons) {
		return n.setError(ErrIndexOutOfBound, "SetWeight: destination neuron %d out of range", toNeuron)
	}
	dst := &n.Neurons[toNeuron]
	if n.Type == Layered && len(n.Sources) == 0 {
		// fully layered fast path: sources are implicit, consecutive
		return n.setError(ErrInvalidConfiguration, "SetWeight requires an addressable connection array")
	}
	for c := dst.FirstCon; c < dst.LastCon; c++ {
		if n.Sources[c] == fromNeuron {
			n.Weights[c] = weight
			return nil
		}
	}
	return n.setError(ErrIndexOutOfBound, "SetWeight: no connection from %d to %d", fromNeuron, toNeuron)
}

// RandomizeWeights sets every connection weight (bias edges included) to
// a uniform sample in [min,max], and clears any RPROP/Quickprop scratch
// since it no longer corresponds to the new weights.
func (n *Network[T]) RandomizeWeights(min, max T) {
	r := n.rand()
	for i := range n.Weights {
		n.Weights[i] = T(r.Uniform(float64(min), float64(max)))
	}
	n.clearTrainScratch()
}

func (n *Network[T]) clearTrainScratch() {
	n.scratch = trainScratch[T]{}
}

// ActivationFunctionAt returns the activation tag of the neuron at the
// given global index.
func (n *Network[T]) ActivationFunctionAt(neuron int) (ActivationFunc, error) {
	if neuron < 0 || neuron >= len(n.Neurons) {
		return 0, n.setError(ErrIndexOutOfBound, "ActivationFunctionAt: neuron %d out of range", neuron)
	}
	return n.Neurons[neuron].Activation, nil
}

// SetActivationFunctionLayer sets the activation function for every
// non-bias neuron in layer li.
func (n *Network[T]) SetActivationFunctionLayer(li int, fn ActivationFunc) error {
	if li < 0 || li >= len(n.Layers) {
		return n.setError(ErrIndexOutOfBound, "SetActivationFunctionLayer: layer %d out of range", li)
	}
	l := n.Layers[li]
	biased := l.HasBias(li, len(n.Layers), n.Type)
	last := l.LastNeuron
	if biased {
		last--
	}
	for i := l.FirstNeuron; i < last; i++ {
		n.Neurons[i].Activation = fn
	}
	return nil
}

// SetActivationFunctionHidden sets the activation function for every
// hidden layer (every layer but the first and last).
func (n *Network[T]) SetActivationFunctionHidden(fn ActivationFunc) {
	for li := 1; li < len(n.Layers)-1; li++ {
		n.SetActivationFunctionLayer(li, fn)
	}
}

// SetActivationFunctionOutput sets the activation function for the
// output layer.
func (n *Network[T]) SetActivationFunctionOutput(fn ActivationFunc) {
	n.SetActivationFunctionLayer(len(n.Layers)-1, fn)
}

// SetActivationSteepnessLayer sets the activation steepness for every
// non-bias neuron in layer li.
func (n *Network[T]) SetActivationSteepnessLayer(li int, steepness T) error {
	if li < 0 || li >= len(n.Layers) {
		return n.setError(ErrIndexOutOfBound, "SetActivationSteepnessLayer: layer %d out of range", li)
	}
	l := n.Layers[li]
	biased := l.HasBias(li, len(n.Layers), n.Type)
	last := l.LastNeuron
	if biased {
		last--
	}
	for i := l.FirstNeuron; i < last; i++ {
		n.Neurons[i].Steepness = steepness
	}
	return nil
}

// SetActivationSteepnessHidden sets the steepness for every hidden layer.
func (n *Network[T]) SetActivationSteepnessHidden(s T) {
	for li := 1; li < len(n.Layers)-1; li++ {
		n.SetActivationSteepnessLayer(li, s)
	}
}

// SetActivationSteepnessOutput sets the steepness for the output layer.
func (n *Network[T]) SetActivationSteepnessOutput(s T) {
	n.SetActivationSteepnessLayer(len(n.Layers)-1, s)
}

// Copy returns a deep copy of the network: weights, topology, scratch
// buffers, and scaling parameters are all independent of the original,
// so training one never affects the other (spec.md 8, 10: "copy(net) is
// run-equivalent to net").
func (n *Network[T]) Copy() *Network[T] {
	cp := &Network[T]{
		Type:         n.Type,
		LearningRate: n.LearningRate,
		Momentum:     n.Momentum,
		ErrorFunc:    n.ErrorFunc,
		StopFunc:     n.StopFunc,
		BitFailLimit: n.BitFailLimit,
		Algorithm:    n.Algorithm,
		Rprop:        n.Rprop,
		Quickprop:    n.Quickprop,
		Sarprop:      n.Sarprop,
		sarpropEpoch: n.sarpropEpoch,
		MSEValue:     n.MSEValue,
		NumMSE:       n.NumMSE,
		NumBitFail:   n.NumBitFail,
	}
	cp.Cascade = n.Cascade
	cp.Cascade.ActivationFunctions = append([]ActivationFunc(nil), n.Cascade.ActivationFunctions...)
	cp.Cascade.ActivationSteepnesses = append([]T(nil), n.Cascade.ActivationSteepnesses...)
	cp.Layers = append([]Layer(nil), n.Layers...)
	cp.Neurons = append([]Neuron[T](nil), n.Neurons...)
	cp.Weights = append([]T(nil), n.Weights...)
	cp.Sources = append([]int32(nil), n.Sources...)
	cp.Output = make([]T, len(n.Output))
	cp.scratch = trainScratch[T]{
		errors:           append([]T(nil), n.scratch.errors...),
		slopes:           append([]T(nil), n.scratch.slopes...),
		prevSteps:        append([]T(nil), n.scratch.prevSteps...),
		prevSlopes:       append([]T(nil), n.scratch.prevSlopes...),
		prevWeightDeltas: append([]T(nil), n.scratch.prevWeightDeltas...),
	}
	if n.scale.set() {
		cp.scale.Mean = append([]T(nil), n.scale.Mean...)
		cp.scale.Deviation = append([]T(nil), n.scale.Deviation...)
		cp.scale.NewMin = append([]T(nil), n.scale.NewMin...)
		cp.scale.Factor = append([]T(nil), n.scale.Factor...)
	}
	return cp
}
