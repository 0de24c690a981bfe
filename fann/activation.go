// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the scalar type trained networks are built over. Training is
// defined only for these two instantiations (spec.md 3); fixed-point
// evaluation lives in package fixedfann and is derived from a trained
// float32 network rather than trained directly.
type Float interface {
	~float32 | ~float64
}

// expT, tanhT, etc. dispatch to github.com/chewxy/math32's float32
// routines when T is float32 (the common case for trained networks meant
// to run fast) and to the standard math package otherwise, so the
// generic activation code never pays a float64 round-trip on the
// float32 path.
func expT[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Exp(v))
	}
	return T(math.Exp(float64(x)))
}

func tanhT[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tanh(v))
	}
	return T(math.Tanh(float64(x)))
}

func sinT[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

func cosT[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

func logT[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log(v))
	}
	return T(math.Log(float64(x)))
}

func absT[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func clipT[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// stepwisePoint is one breakpoint of a six-segment piecewise-linear
// approximation to a sigmoid, tabulated to match the smooth sigmoid's
// value exactly at each breakpoint (spec.md 4.1).
type stepwisePoint struct {
	v, r float64
}

var sigmoidStepwisePoints = [6]stepwisePoint{
	{-2.64665293693542480469e+00, 4.99999988824129104614e-03},
	{-1.47221934795379638672e+00, 5.00000007450580596924e-02},
	{-5.49306154251098632812e-01, 2.50000000000000000000e-01},
	{5.49306154251098632812e-01, 7.50000000000000000000e-01},
	{1.47221934795379638672e+00, 9.49999988079071044922e-01},
	{2.64665293693542480469e+00, 9.95000004768371582031e-01},
}

var sigmoidSymmetricStepwisePoints = [6]stepwisePoint{
	{-2.64665293693542480469e+00, -9.90000009536743164062e-01},
	{-1.47221934795379638672e+00, -8.99999976158142089844e-01},
	{-5.49306154251098632812e-01, -5.00000000000000000000e-01},
	{5.49306154251098632812e-01, 5.00000000000000000000e-01},
	{1.47221934795379638672e+00, 8.99999976158142089844e-01},
	{2.64665293693542480469e+00, 9.90000009536743164062e-01},
}

// stepwise evaluates the six-segment piecewise-linear table, clamping to
// min/max outside the outer breakpoints and linearly interpolating
// between consecutive breakpoints inside.
func stepwise[T Float](pts *[6]stepwisePoint, min, max T, sum T) T {
	s := float64(sum)
	p := pts
	switch {
	case s < p[2].v:
		if s < p[1].v {
			if s < p[0].v {
				return min
			}
			return linterp(p[0], p[1], s)
		}
		return linterp(p[1], p[2], s)
	case s < p[4].v:
		if s < p[3].v {
			return linterp(p[2], p[3], s)
		}
		return linterp(p[3], p[4], s)
	default:
		if s < p[5].v {
			return linterp(p[4], p[5], s)
		}
		return max
	}
}

func linterp[T Float](a, b stepwisePoint, s float64) T {
	return T(((b.r-a.r)*(s-a.v))/(b.v-a.v) + a.r)
}

// Activate evaluates neuron's nonlinearity for the given pre-activation
// sum, which is assumed to already include the steepness multiply and
// overflow saturation (see Network.Run).
func Activate[T Float](fn ActivationFunc, sum T) T {
	switch fn {
	case Linear:
		return sum
	case LinearPiece:
		return clipT(sum, 0, 1)
	case LinearPieceSymmetric:
		return clipT(sum, -1, 1)
	case Threshold:
		if sum < 0 {
			return 0
		}
		return 1
	case ThresholdSymmetric:
		if sum < 0 {
			return -1
		}
		return 1
	case Sigmoid:
		return 1 / (1 + expT(-2*sum))
	case SigmoidStepwise:
		return stepwise(&sigmoidStepwisePoints, 0, 1, sum)
	case SigmoidSymmetric:
		return tanhT(sum)
	case SigmoidSymmetricStepwise:
		return stepwise(&sigmoidSymmetricStepwisePoints, -1, 1, sum)
	case Gaussian:
		return expT(-sum * sum)
	case GaussianSymmetric:
		return 2*expT(-sum*sum) - 1
	case Elliot:
		return (sum/2)/(1+absT(sum)) + 0.5
	case ElliotSymmetric:
		return sum / (1 + absT(sum))
	case Sin:
		return sinT(sum)/2 + 0.5
	case Cos:
		return cosT(sum)/2 + 0.5
	case SinSymmetric:
		return sinT(sum)
	case CosSymmetric:
		return cosT(sum)
	default:
		return 0
	}
}

// Derivative evaluates d(value)/d(sum) for the given activation tag,
// steepness, post-activation value, and pre-activation sum. Threshold
// and ThresholdSymmetric have no usable derivative and return an error.
// Network.Backpropagate does not consult ActivationFunc.Differentiable:
// an output neuron with such a tag makes it return this error, and a
// hidden neuron with one receives no propagated error.
func Derivative[T Float](fn ActivationFunc, steepness, value, sum T) (T, error) {
	switch fn {
	case Linear, LinearPiece, LinearPieceSymmetric:
		return steepness, nil
	case Sigmoid, SigmoidStepwise:
		v := clipT(value, 0.01, 0.99)
		return 2 * steepness * v * (1 - v), nil
	case SigmoidSymmetric, SigmoidSymmetricStepwise:
		v := clipT(value, -0.98, 0.98)
		return steepness * (1 - v*v), nil
	case Gaussian:
		return -2 * sum * value * steepness * steepness, nil
	case GaussianSymmetric:
		return -2 * sum * (value + 1) * steepness * steepness, nil
	case Elliot:
		d := 1 + absT(sum)
		return steepness * 1 / (2 * d * d), nil
	case ElliotSymmetric:
		d := 1 + absT(sum)
		return steepness * 1 / (d * d), nil
	case SinSymmetric:
		return steepness * cosT(steepness*sum), nil
	case CosSymmetric:
		return -steepness * sinT(steepness*sum), nil
	case Sin:
		return steepness * cosT(steepness*sum) / 2, nil
	case Cos:
		return -steepness * sinT(steepness*sum) / 2, nil
	case Threshold, ThresholdSymmetric:
		return 0, newError(ErrCantTrainActivation, "activation function %s has no usable derivative", fn)
	default:
		return 0, newError(ErrCantTrainActivation, "unknown activation function %d", int(fn))
	}
}
