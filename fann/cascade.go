// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "github.com/libfann/gofann/paths"

// candidate is one member of a cascade candidate pool: a single neuron,
// not yet wired into the output layer, trained in isolation against the
// output layer's own training error signal with its own weight set and
// RPROP-style scratch (spec.md 4.9).
type candidate[T Float] struct {
	activation ActivationFunc
	steepness  T

	// inWeights are this candidate's input-side weights, one per source
	// neuron in the network (every neuron that exists before the
	// candidate phase starts, bias units included).
	inWeights []T
	// outWeights are this candidate's least-squares weights onto each
	// output, v_o in spec.md 4.9's `diff = a*v_o - e_o`. They are trained
	// alongside inWeights, and when the candidate is installed each
	// output's new incoming connection starts at v_o times
	// CascadeParams.WeightMultiplier.
	outWeights []T

	inSlopes, inPrevSlopes, inPrevSteps    []T
	outSlopes, outPrevSlopes, outPrevSteps []T

	// score is -Sigma_o Sigma_p (a*v_o - e_o)^2 (spec.md 4.9): always
	// <= 0, with 0 meaning a perfect fit to the output error signal.
	score T
}

// cascadeScratch is the candidate-phase working state, allocated only
// while a Cascade-Correlation training run is in progress.
type cascadeScratch[T Float] struct {
	active     bool
	candidates []candidate[T]
	best       int

	outputBestMSE    float64
	outputStagnation int
	candBestScore    T
	candStagnation   int

	epoch int
}

// NewCascade constructs a minimal two-layer network (input directly
// connected to output, every input-to-output weight present) of the kind
// Cascade-Correlation training grows neuron by neuron (spec.md 4.9,
// original_source fann_cascade.c's fann_create_shortcut seed topology).
func NewCascade[T Float](numInput, numOutput int) *Network[T] {
	n := &Network[T]{Type: Shortcut}
	n.defaultHyperparams()
	n.Algorithm = RPROP

	n.Layers = []Layer{
		{FirstNeuron: 0, LastNeuron: int32(numInput + 1)},
		{FirstNeuron: int32(numInput + 1), LastNeuron: int32(numInput + 1 + numOutput)},
	}
	n.Neurons = make([]Neuron[T], numInput+1+numOutput)
	for i := 0; i <= numInput; i++ {
		n.Neurons[i] = Neuron[T]{Activation: Linear, Steepness: 1}
	}
	full := paths.Full{}
	conns := full.Connect(numInput+1, numOutput)
	weights := make([]T, 0, (numInput+1)*numOutput)
	sources := make([]int32, 0, (numInput+1)*numOutput)
	for o := 0; o < numOutput; o++ {
		nrn := &n.Neurons[numInput+1+o]
		nrn.Activation = SigmoidSymmetric
		nrn.Steepness = 0.5
		nrn.FirstCon = int32(len(weights))
		for _, src := range conns[o] {
			sources = append(sources, src)
			weights = append(weights, T(n.rand().Uniform(-0.1, 0.1)))
		}
		nrn.LastCon = int32(len(weights))
	}
	n.Weights = weights
	n.Sources = sources
	n.Output = make([]T, numOutput)
	return n
}

// candidatePool returns the configured candidate tags this network's
// cascade params describe: every (activation, steepness) pair repeated
// NumCandidateGroups times, matching fann_cascade.c's group layout so
// that ties in score are broken only by training-noise, not by pool
// ordering bias.
func (n *Network[T]) candidatePool() []struct {
	fn        ActivationFunc
	steepness T
} {
	cp := &n.Cascade
	out := make([]struct {
		fn        ActivationFunc
		steepness T
	}, 0, cp.NumCandidates())
	for g := 0; g < cp.NumCandidateGroups; g++ {
		for _, fn := range cp.ActivationFunctions {
			for _, s := range cp.ActivationSteepnesses {
				out = append(out, struct {
					fn        ActivationFunc
					steepness T
				}{fn, s})
			}
		}
	}
	return out
}

// initCandidates (re)allocates the candidate pool and randomizes every
// candidate's input weights in [-1/sqrt(fanin), 1/sqrt(fanin)], the
// Widrow-Nguyen-flavored range fann_cascade.c's fann_init_candidates
// uses (spec.md 10).
func (n *Network[T]) initCandidates() {
	pool := n.candidatePool()
	numInputs := len(n.Neurons) - n.NumOutput() // every existing neuron feeds every candidate
	numOutputs := n.NumOutput()

	cs := &n.cascadeScratch
	cs.active = true
	cs.candidates = make([]candidate[T], len(pool))
	cs.best = -1
	cs.candBestScore = 0
	cs.candStagnation = 0
	cs.epoch = 0

	bound := 1.0
	if numInputs > 0 {
		bound = 1.0 / sqrtFloat(float64(numInputs))
	}
	if limit := float64(absT(n.Cascade.CandidateLimit)); limit > 0 && bound > limit {
		bound = limit
	}
	for i, p := range pool {
		c := &cs.candidates[i]
		c.activation = p.fn
		c.steepness = p.steepness
		c.inWeights = make([]T, numInputs)
		c.outWeights = make([]T, numOutputs)
		c.inSlopes = make([]T, numInputs)
		c.inPrevSlopes = make([]T, numInputs)
		c.inPrevSteps = make([]T, numInputs)
		c.outSlopes = make([]T, numOutputs)
		c.outPrevSlopes = make([]T, numOutputs)
		c.outPrevSteps = make([]T, numOutputs)
		for j := range c.inWeights {
			c.inWeights[j] = T(n.rand().Uniform(-bound, bound))
		}
		for j := range c.outWeights {
			c.outWeights[j] = T(n.rand().Uniform(-bound, bound))
		}
		for j := range c.inPrevSteps {
			c.inPrevSteps[j] = n.Rprop.DeltaZero
		}
		for j := range c.outPrevSteps {
			c.outPrevSteps[j] = n.Rprop.DeltaZero
		}
	}
}

func sqrtFloat(x float64) float64 {
	if x <= 0 {
		return 1
	}
	z := x
	for i := 0; i < 30; i++ {
		z -= (z*z - x) / (2 * z)
	}
	return z
}

// trainCandidates runs one epoch of candidate training: every candidate
// independently sees every pattern and is scored against the output
// layer's own per-pattern training error signal e_o by the explicit
// least-squares formulas of spec.md 4.9 -- for each candidate and
// output, `diff = a·v_o - e_o` with `a` the candidate's activation and
// v_o its output weight, accumulating `back_error += diff·v_o` and
// `score -= diff²`. The slopes hold the negated gradient of Σdiff²
// (`slope_of_v_o -= 2·diff·a`, and `back_error` through the candidate's
// own derivative for the input slopes), the same downhill convention
// Backpropagate's slopes follow, so the iRPROP- update that follows
// raises each candidate's score. The
// candidate with the highest (least negative) score becomes
// cascadeScratch.best.
func (n *Network[T]) trainCandidates(data *TrainData[T]) {
	cs := &n.cascadeScratch
	for ci := range cs.candidates {
		c := &cs.candidates[ci]
		for j := range c.inSlopes {
			c.inSlopes[j] = 0
		}
		for j := range c.outSlopes {
			c.outSlopes[j] = 0
		}
		c.score = 0
	}

	errSignal := make([]T, n.NumOutput())

	for p := 0; p < data.NumData(); p++ {
		in, out := data.At(p)
		if _, err := n.Run(in); err != nil {
			continue
		}
		if err := n.outputErrorSignal(out, errSignal); err != nil {
			continue
		}
		for ci := range cs.candidates {
			c := &cs.candidates[ci]
			sum := T(0)
			for j, w := range c.inWeights {
				sum += w * n.Neurons[j].Value
			}
			sum *= c.steepness
			a := Activate(c.activation, sum)
			deriv, err := Derivative(c.activation, c.steepness, a, sum)
			if err != nil {
				continue
			}

			backError := T(0)
			for o, eo := range errSignal {
				diff := a*c.outWeights[o] - eo
				c.outSlopes[o] -= 2 * diff * a
				backError += diff * c.outWeights[o]
				c.score -= diff * diff
			}
			slopeFactor := backError * deriv
			for j := range c.inWeights {
				c.inSlopes[j] -= slopeFactor * n.Neurons[j].Value
			}
		}
	}

	n.updateCandidatesRprop()

	best, bestScore := -1, T(0)
	for ci := range cs.candidates {
		if best < 0 || cs.candidates[ci].score > bestScore {
			bestScore = cs.candidates[ci].score
			best = ci
		}
	}
	cs.best = best
	// bestScore is <= 0; stagnation tracks its magnitude shrinking the
	// same way output-phase stagnation tracks MSE shrinking.
	mag := -bestScore
	if cs.epoch == 0 || mag < cs.candBestScore*(1-n.Cascade.CandidateChangeFraction) {
		cs.candBestScore = mag
		cs.candStagnation = 0
	} else {
		cs.candStagnation++
	}
	cs.epoch++
}

// updateCandidatesRprop applies iRPROP- to every candidate's input and
// output weights using the slopes trainCandidates accumulated, exactly
// as fann_cascade.c does regardless of the network's own Algorithm (a
// cascade candidate is always trained with RPROP).
func (n *Network[T]) updateCandidatesRprop() {
	cs := &n.cascadeScratch
	inc, dec := n.Rprop.IncreaseFactor, n.Rprop.DecreaseFactor
	dmin, dmax := n.Rprop.DeltaMin, n.Rprop.DeltaMax
	for ci := range cs.candidates {
		c := &cs.candidates[ci]
		rpropStep(c.inWeights, c.inSlopes, c.inPrevSlopes, c.inPrevSteps, inc, dec, dmin, dmax)
		rpropStep(c.outWeights, c.outSlopes, c.outPrevSlopes, c.outPrevSteps, inc, dec, dmin, dmax)
	}
}

// installBest wires cascadeScratch's best candidate into the network as
// a new hidden neuron appended just before the output layer: its input
// weights are copied in unchanged, every output neuron o gains one new
// incoming connection from it with weight v_o * WeightMultiplier (v_o
// being the candidate's trained output weight), and the candidate pool
// is discarded. CandidateLimit plays no part here.
func (n *Network[T]) installBest() error {
	cs := &n.cascadeScratch
	if cs.best < 0 {
		return n.setError(ErrInvalidConfiguration, "installBest: no trained candidate to install")
	}
	c := &cs.candidates[cs.best]

	outLayer := n.Layers[len(n.Layers)-1]
	hiddenIdx := outLayer.FirstNeuron // new neuron is inserted right before the output layer

	// Every output neuron keeps its existing connections and gains
	// exactly one more, from the new hidden neuron; every other
	// neuron's FirstCon/LastCon shift by however many weights were
	// inserted before it. Rebuilding the weight/source/neuron arrays
	// from scratch keeps that bookkeeping in one place instead of
	// splicing three parallel slices in lockstep.
	newWeights := make([]T, 0, len(n.Weights)+len(c.inWeights)+n.NumOutput())
	newSources := make([]int32, 0, cap(newWeights))
	newNeurons := make([]Neuron[T], 0, len(n.Neurons)+1)

	for i := int32(0); i < hiddenIdx; i++ {
		nrn := n.Neurons[i]
		first := int32(len(newWeights))
		for k := nrn.FirstCon; k < nrn.LastCon; k++ {
			newWeights = append(newWeights, n.Weights[k])
			newSources = append(newSources, n.Sources[k])
		}
		nrn.FirstCon, nrn.LastCon = first, int32(len(newWeights))
		newNeurons = append(newNeurons, nrn)
	}

	hidden := Neuron[T]{Activation: c.activation, Steepness: c.steepness}
	hidden.FirstCon = int32(len(newWeights))
	for j, w := range c.inWeights {
		newWeights = append(newWeights, w)
		newSources = append(newSources, int32(j))
	}
	hidden.LastCon = int32(len(newWeights))
	newNeurons = append(newNeurons, hidden)

	for i := hiddenIdx; i < int32(len(n.Neurons)); i++ {
		nrn := n.Neurons[i]
		first := int32(len(newWeights))
		for k := nrn.FirstCon; k < nrn.LastCon; k++ {
			newWeights = append(newWeights, n.Weights[k])
			newSources = append(newSources, n.Sources[k])
		}
		newWeights = append(newWeights, c.outWeights[i-hiddenIdx]*n.Cascade.WeightMultiplier)
		newSources = append(newSources, hiddenIdx)
		nrn.FirstCon, nrn.LastCon = first, int32(len(newWeights))
		newNeurons = append(newNeurons, nrn)
	}

	n.Neurons = newNeurons
	n.Weights = newWeights
	n.Sources = newSources
	last := len(n.Layers) - 1
	n.Layers[last].FirstNeuron++
	n.Layers[last].LastNeuron++
	n.Output = make([]T, n.NumOutput())

	cs.active = false
	cs.candidates = nil
	cs.best = -1
	return nil
}

// CascadeTrainOnData grows the network one neuron at a time,
// alternating output-phase training (the network's own Algorithm,
// restricted to the output layer's incoming connections) with
// candidate-phase training (the pool of untrained neurons above). After
// every output phase cb, if set, receives the number of neurons
// installed so far; training ends when cb returns Stop, when that output
// phase leaves a bit-fail count of zero, or once maxNeurons have been
// installed. There is no MSE target, StopFunc is not consulted, and no
// output phase runs after the last installation.
func (n *Network[T]) CascadeTrainOnData(data *TrainData[T], maxNeurons int, cb Callback[T]) error {
	if !n.Algorithm.CascadeEligible() {
		return n.setError(ErrCantUseTrainAlgForCascade, "CascadeTrainOnData: algorithm %s cannot drive cascade output-phase training", n.Algorithm)
	}
	installed := 0
	for installed < maxNeurons {
		if err := n.runOutputPhase(data); err != nil {
			return err
		}
		if cb != nil && cb(n, installed, n.GetMSE(), n.NumBitFail) == Stop {
			return nil
		}
		if n.NumBitFail == 0 {
			return nil
		}
		if err := n.runCandidatePhase(data); err != nil {
			return err
		}
		if err := n.installBest(); err != nil {
			return err
		}
		installed++
	}
	return nil
}

// trainOutputEpoch runs one epoch over data updating only the output
// layer's incoming connections, [lo,hi) in Weights (spec.md 4.9): every
// other weight was already trained as part of an earlier neuron's
// installation and cascade never revisits it.
func (n *Network[T]) trainOutputEpoch(data *TrainData[T]) (float64, error) {
	n.ResetMSE()
	lo, hi := n.outputWeightRange()
	if n.Algorithm == RPROP && n.scratch.prevSteps == nil {
		n.initRpropSteps()
	}
	for p := 0; p < data.NumData(); p++ {
		in, out := data.At(p)
		if _, err := n.Run(in); err != nil {
			return 0, err
		}
		if err := n.backpropagateOutputOnly(out); err != nil {
			return 0, err
		}
		if n.Algorithm == Incremental {
			n.applyIncrementalRange(lo, hi)
		}
	}
	switch n.Algorithm {
	case Batch:
		n.applyBatchRange(lo, hi, data.NumData())
	case RPROP:
		n.applyRpropRange(lo, hi)
	case Quickprop:
		n.applyQuickpropRange(lo, hi)
	case SARPROP:
		n.sarpropEpoch++
		n.applySarpropRange(lo, hi, n.sarpropEpoch)
	}
	return n.GetMSE(), nil
}

// runOutputPhase trains only the output layer's incoming connections
// (every earlier neuron's weights stay frozen once installed) with the
// network's own Algorithm until MaxOutEpochs is reached or
// output-change-fraction stagnation triggers an early finish.
func (n *Network[T]) runOutputPhase(data *TrainData[T]) error {
	cs := &n.cascadeScratch
	cs.outputBestMSE = 0
	cs.outputStagnation = 0
	n.clearTrainScratch()
	for e := 0; e < n.Cascade.MaxOutEpochs; e++ {
		mse, err := n.trainOutputEpoch(data)
		if err != nil {
			return err
		}
		if e == 0 || mse < cs.outputBestMSE*(1-n.Cascade.OutputChangeFraction) {
			cs.outputBestMSE = mse
			cs.outputStagnation = 0
		} else {
			cs.outputStagnation++
		}
		if e+1 >= n.Cascade.MinOutEpochs && cs.outputStagnation >= n.Cascade.OutputStagnationEpochs {
			break
		}
	}
	return nil
}

// runCandidatePhase initializes a fresh candidate pool and trains it
// for up to MaxCandEpochs epochs, stopping early on
// candidate-change-fraction stagnation.
func (n *Network[T]) runCandidatePhase(data *TrainData[T]) error {
	n.initCandidates()
	cs := &n.cascadeScratch
	for e := 0; e < n.Cascade.MaxCandEpochs; e++ {
		n.trainCandidates(data)
		if e+1 >= n.Cascade.MinCandEpochs && cs.candStagnation >= n.Cascade.CandidateStagnationEpochs {
			break
		}
	}
	return nil
}
