// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "gonum.org/v1/gonum/stat"

// SetScalingParams fits a per-feature affine transform from data's
// input and output statistics: each feature is mapped so its dataset
// mean sits at the midpoint of [newMin, newMin+newRange] and one
// standard deviation spans newRange/2 (spec.md 4.8). Every subsequent
// Run, Train, and Test call transparently scales inputs in and outputs
// out through this transform until ClearScalingParams is called.
func (n *Network[T]) SetScalingParams(data *TrainData[T], inputNewMin, inputNewMax, outputNewMin, outputNewMax T) error {
	if data.NumInput() != n.NumInput() || data.NumOutput() != n.NumOutput() {
		return n.setError(ErrInputOutputSizeMismatch, "SetScalingParams: dataset shape does not match network")
	}
	numIn, numOut := n.NumInput(), n.NumOutput()
	n.scale.Mean = make([]T, numIn+numOut)
	n.scale.Deviation = make([]T, numIn+numOut)
	n.scale.NewMin = make([]T, numIn+numOut)
	n.scale.Factor = make([]T, numIn+numOut)

	fitColumn := func(col int, width int, stride int, base []T, newMin, newMax T, slot int) {
		vals := make([]float64, data.NumData())
		for p := 0; p < data.NumData(); p++ {
			vals[p] = float64(base[p*stride+col])
		}
		mean, dev := stat.MeanStdDev(vals, nil)
		if dev == 0 {
			dev = 1
		}
		n.scale.Mean[slot] = T(mean)
		n.scale.Deviation[slot] = T(dev)
		n.scale.NewMin[slot] = newMin
		n.scale.Factor[slot] = (newMax - newMin) / 2
	}
	for i := 0; i < numIn; i++ {
		fitColumn(i, numIn, numIn, data.input, inputNewMin, inputNewMax, i)
	}
	for o := 0; o < numOut; o++ {
		fitColumn(o, numOut, numOut, data.output, outputNewMin, outputNewMax, numIn+o)
	}
	return nil
}

// ClearScalingParams discards any fitted scaling so Run, Train, and Test
// operate on raw input/output again.
func (n *Network[T]) ClearScalingParams() {
	n.scale = ScalingParams[T]{}
}

// ScalingSet reports whether SetScalingParams has been called since
// construction or the last ClearScalingParams.
func (n *Network[T]) ScalingSet() bool { return n.scale.set() }

func (n *Network[T]) scaleInputInto(in []T) {
	for i := range in {
		in[i] = (in[i]-n.scale.Mean[i])/n.scale.Deviation[i]*n.scale.Factor[i] + n.scale.Factor[i] + n.scale.NewMin[i]
	}
}

func (n *Network[T]) descaleOutputInto(out []T) {
	base := n.NumInput()
	for i := range out {
		slot := base + i
		out[i] = (out[i]-n.scale.NewMin[slot]-n.scale.Factor[slot])/n.scale.Factor[slot]*n.scale.Deviation[slot] + n.scale.Mean[slot]
	}
}

func (n *Network[T]) scaleOutputInto(out []T) {
	base := n.NumInput()
	for i := range out {
		slot := base + i
		out[i] = (out[i]-n.scale.Mean[slot])/n.scale.Deviation[slot]*n.scale.Factor[slot] + n.scale.Factor[slot] + n.scale.NewMin[slot]
	}
}

// ScaleInput applies the fitted input transform to in in place.
func (n *Network[T]) ScaleInput(in []T) error {
	if !n.scale.set() {
		return n.setError(ErrScalingNotSet, "ScaleInput: no scaling parameters set")
	}
	n.scaleInputInto(in)
	return nil
}

// ScaleOutput applies the fitted output transform to out in place.
func (n *Network[T]) ScaleOutput(out []T) error {
	if !n.scale.set() {
		return n.setError(ErrScalingNotSet, "ScaleOutput: no scaling parameters set")
	}
	n.scaleOutputInto(out)
	return nil
}

// DescaleInput reverses the fitted input transform on in in place.
func (n *Network[T]) DescaleInput(in []T) error {
	if !n.scale.set() {
		return n.setError(ErrScalingNotSet, "DescaleInput: no scaling parameters set")
	}
	for i := range in {
		in[i] = (in[i]-n.scale.NewMin[i]-n.scale.Factor[i])/n.scale.Factor[i]*n.scale.Deviation[i] + n.scale.Mean[i]
	}
	return nil
}

// DescaleOutput reverses the fitted output transform on out in place.
func (n *Network[T]) DescaleOutput(out []T) error {
	if !n.scale.set() {
		return n.setError(ErrScalingNotSet, "DescaleOutput: no scaling parameters set")
	}
	n.descaleOutputInto(out)
	return nil
}

// ScaleTrain applies the fitted input/output transforms to every
// pattern of data in place.
func (n *Network[T]) ScaleTrain(data *TrainData[T]) error {
	if !n.scale.set() {
		return n.setError(ErrScalingNotSet, "ScaleTrain: no scaling parameters set")
	}
	for p := 0; p < data.NumData(); p++ {
		in, out := data.At(p)
		n.scaleInputInto(in)
		n.scaleOutputInto(out)
	}
	return nil
}

// DescaleTrain reverses the fitted input/output transforms on every
// pattern of data in place.
func (n *Network[T]) DescaleTrain(data *TrainData[T]) error {
	if !n.scale.set() {
		return n.setError(ErrScalingNotSet, "DescaleTrain: no scaling parameters set")
	}
	for p := 0; p < data.NumData(); p++ {
		in, out := data.At(p)
		_ = n.DescaleInput(in)
		n.descaleOutputInto(out)
	}
	return nil
}
