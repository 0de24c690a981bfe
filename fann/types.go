// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "github.com/iancoleman/strcase"

// ActivationFunc tags one of the sixteen named activation nonlinearities.
// The enumeration is closed; forward and derivative evaluation dispatch
// on this tag rather than through a polymorphic interface, so the hot
// per-neuron loop stays a flat switch.
type ActivationFunc int

const (
	Linear ActivationFunc = iota
	LinearPiece
	LinearPieceSymmetric
	Threshold
	ThresholdSymmetric
	Sigmoid
	SigmoidStepwise
	SigmoidSymmetric
	SigmoidSymmetricStepwise
	Gaussian
	GaussianSymmetric
	Elliot
	ElliotSymmetric
	Sin
	Cos
	SinSymmetric
	CosSymmetric
)

var activationNames = [...]string{
	"Linear",
	"LinearPiece",
	"LinearPieceSymmetric",
	"Threshold",
	"ThresholdSymmetric",
	"Sigmoid",
	"SigmoidStepwise",
	"SigmoidSymmetric",
	"SigmoidSymmetricStepwise",
	"Gaussian",
	"GaussianSymmetric",
	"Elliot",
	"ElliotSymmetric",
	"Sin",
	"Cos",
	"SinSymmetric",
	"CosSymmetric",
}

func (a ActivationFunc) String() string {
	if a < 0 || int(a) >= len(activationNames) {
		return "ActivationFunc(?)"
	}
	return activationNames[a]
}

// SnakeName renders the activation tag in snake_case, for diagnostic
// output.
func (a ActivationFunc) SnakeName() string {
	return strcase.ToSnake(a.String())
}

// Differentiable reports whether Derivative is defined for this function.
// Threshold and ThresholdSymmetric have a zero derivative almost
// everywhere and a discontinuity at zero, so training against them is
// rejected rather than silently computing a useless all-zero gradient.
func (a ActivationFunc) Differentiable() bool {
	return a != Threshold && a != ThresholdSymmetric
}

// Symmetric reports whether the function's output range is centered on
// zero (roughly [-1,1]) rather than [0,1]. Symmetric-range diffs are
// halved before MSE/bit-fail accounting so both families share one
// bit_fail_limit (spec.md 4.4).
func (a ActivationFunc) Symmetric() bool {
	switch a {
	case LinearPieceSymmetric, ThresholdSymmetric, SigmoidSymmetric,
		SigmoidSymmetricStepwise, GaussianSymmetric, ElliotSymmetric,
		SinSymmetric, CosSymmetric:
		return true
	default:
		return false
	}
}

// ErrorFunc selects how a raw (desired - actual) difference is converted
// into the value backpropagated from the output layer.
type ErrorFunc int

const (
	// ErrorLinear backpropagates the difference unchanged.
	ErrorLinear ErrorFunc = iota
	// ErrorTanh applies log((1+diff)/(1-diff)), an aggressive penalty on
	// confidently-wrong saturated outputs. It is the default ErrorFunc of
	// every constructor, NewCascade included; neither Incremental
	// training nor CascadeTrainOnData rejects it.
	ErrorTanh
)

func (e ErrorFunc) String() string {
	if e == ErrorTanh {
		return "Tanh"
	}
	return "Linear"
}

// StopFunc selects the condition TrainOnData checks after every epoch to
// decide whether the target has been reached. CascadeTrainOnData does
// not consult it.
type StopFunc int

const (
	// StopMSE stops once the running mean squared error is at or below
	// the desired error.
	StopMSE StopFunc = iota
	// StopBitFail stops once the running bit-fail count is at or below
	// the desired error (treated as an integer threshold).
	StopBitFail
)

func (s StopFunc) String() string {
	if s == StopBitFail {
		return "BitFail"
	}
	return "MSE"
}

// TrainAlgorithm selects one of the four weight-update rules (plus
// incremental, which is the fifth mode in spec.md's component F but
// shares this tag since exactly one rule governs a given Network).
type TrainAlgorithm int

const (
	Incremental TrainAlgorithm = iota
	Batch
	RPROP
	Quickprop
	SARPROP
)

func (t TrainAlgorithm) String() string {
	switch t {
	case Incremental:
		return "Incremental"
	case Batch:
		return "Batch"
	case RPROP:
		return "RPROP"
	case Quickprop:
		return "Quickprop"
	case SARPROP:
		return "SARPROP"
	default:
		return "TrainAlgorithm(?)"
	}
}

// CascadeEligible reports whether this algorithm may drive cascade
// output-phase training (iRPROP-, Quickprop, or SARPROP; batch and
// incremental are rejected). Candidates are always trained with iRPROP-.
func (t TrainAlgorithm) CascadeEligible() bool {
	return t == RPROP || t == Quickprop || t == SARPROP
}

// NetworkType distinguishes the three topology classes of spec.md 4.2.
type NetworkType int

const (
	// Layered networks (fully connected or sparse) only ever connect a
	// neuron to the immediately preceding layer.
	Layered NetworkType = iota
	// Shortcut networks connect every neuron to every neuron in every
	// strictly earlier layer, including the bias.
	Shortcut
)

func (n NetworkType) String() string {
	if n == Shortcut {
		return "Shortcut"
	}
	return "Layered"
}

// CallbackAction is returned from a training callback to request that
// train_on_data / cascadetrain_on_data continue or stop early. It is the
// Go-native replacement for the reference API's "negative return value
// aborts training" convention.
type CallbackAction int

const (
	Continue CallbackAction = iota
	Stop
)
