// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

// RpropParams groups the iRPROP- step-size controls (spec.md 4.6). Each
// weight carries its own adaptive step; these are the global knobs that
// govern how that per-weight step grows, shrinks, and is bounded.
type RpropParams[T Float] struct {
	// IncreaseFactor grows a weight's step when its slope keeps the same
	// sign across epochs.
	IncreaseFactor T
	// DecreaseFactor shrinks a weight's step when its slope flips sign.
	DecreaseFactor T
	// DeltaMin floors the step size.
	DeltaMin T
	// DeltaMax ceils the step size.
	DeltaMax T
	// DeltaZero is the step every weight starts at.
	DeltaZero T
}

func (p *RpropParams[T]) Defaults() {
	p.IncreaseFactor = 1.2
	p.DecreaseFactor = 0.5
	p.DeltaMin = 0
	p.DeltaMax = 50
	p.DeltaZero = 0.1
}

// QuickpropParams groups the Quickprop knobs (spec.md 4.6).
type QuickpropParams[T Float] struct {
	// Decay is the weight-decay term folded into the slope (negative).
	Decay T
	// Mu caps how large a quadratic-estimate step may grow relative to
	// the previous step.
	Mu T
}

func (p *QuickpropParams[T]) Defaults() {
	p.Decay = -0.0001
	p.Mu = 1.75
}

// SarpropParams groups the SARPROP (simulated-annealing RPROP) knobs
// (spec.md 4.6). Field names intentionally do not alias RpropParams'
// fields -- the reference implementation's sarprop getters erroneously
// read back rprop_delta_max, which spec.md 9 flags as a bug; this
// implementation keeps the fields distinct so that mistake cannot recur.
type SarpropParams[T Float] struct {
	WeightDecayShift         T
	StepErrorThresholdFactor T
	StepErrorShift           T
	Temperature              T
}

func (p *SarpropParams[T]) Defaults() {
	p.WeightDecayShift = -6.644
	p.StepErrorThresholdFactor = 0.1
	p.StepErrorShift = 1.585
	p.Temperature = 0.015
}

// CascadeParams groups every Cascade-Correlation hyperparameter
// (spec.md 4.9).
type CascadeParams[T Float] struct {
	OutputChangeFraction      T
	OutputStagnationEpochs    int
	CandidateChangeFraction   T
	CandidateStagnationEpochs int
	WeightMultiplier          T
	CandidateLimit            T
	MaxOutEpochs              int
	MinOutEpochs              int
	MaxCandEpochs             int
	MinCandEpochs             int
	NumCandidateGroups        int
	ActivationFunctions       []ActivationFunc
	ActivationSteepnesses     []T
}

func (p *CascadeParams[T]) Defaults() {
	p.OutputChangeFraction = 0.01
	p.OutputStagnationEpochs = 12
	p.CandidateChangeFraction = 0.01
	p.CandidateStagnationEpochs = 12
	p.WeightMultiplier = 0.4
	p.CandidateLimit = 1000
	p.MaxOutEpochs = 150
	p.MinOutEpochs = 50
	p.MaxCandEpochs = 150
	p.MinCandEpochs = 50
	p.NumCandidateGroups = 2
	p.ActivationFunctions = []ActivationFunc{
		Sigmoid, SigmoidSymmetric, Gaussian, GaussianSymmetric,
		Elliot, ElliotSymmetric, Sin, Cos, SinSymmetric, CosSymmetric,
	}
	p.ActivationSteepnesses = []T{0.25, 0.5, 0.75, 1.0}
}

// NumCandidates returns |activation functions| * |steepnesses| *
// num_candidate_groups, the size of one candidate pool (spec.md 4.9).
func (p *CascadeParams[T]) NumCandidates() int {
	return len(p.ActivationFunctions) * len(p.ActivationSteepnesses) * p.NumCandidateGroups
}
