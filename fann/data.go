// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "github.com/libfann/gofann/erand"

// TrainData holds a training set as two flat arrays, each pattern a
// contiguous run of numInput/numOutput values, rather than a slice of
// per-pattern structs -- the same layout Network uses for neurons and
// weights, and for the same reason: training walks every pattern's
// input/output in sequence far more often than it addresses one in
// isolation (spec.md 3).
type TrainData[T Float] struct {
	ErrState

	numInput, numOutput int
	input, output       []T // length numData*numInput / numData*numOutput
}

// CreateTrain builds a TrainData from row-major input and output slices;
// len(inputs) must be a multiple of numInput and likewise for outputs,
// with the same number of rows in each.
func CreateTrain[T Float](numInput, numOutput int, inputs, outputs []T) (*TrainData[T], error) {
	d := &TrainData[T]{numInput: numInput, numOutput: numOutput}
	if numInput <= 0 || numOutput <= 0 {
		return nil, d.setError(ErrInvalidConfiguration, "CreateTrain: numInput and numOutput must be positive")
	}
	if len(inputs)%numInput != 0 || len(outputs)%numOutput != 0 {
		return nil, d.setError(ErrTrainDataMismatch, "CreateTrain: input/output lengths are not multiples of their row sizes")
	}
	if len(inputs)/numInput != len(outputs)/numOutput {
		return nil, d.setError(ErrTrainDataMismatch, "CreateTrain: input and output row counts differ")
	}
	d.input = append([]T(nil), inputs...)
	d.output = append([]T(nil), outputs...)
	return d, nil
}

// CreateTrainFromCallback builds a TrainData by invoking gen once per
// pattern index, the callback-driven construction spec.md 4.7 requires
// for datasets too large, or too naturally procedural, to stage as flat
// arrays up front.
func CreateTrainFromCallback[T Float](numData, numInput, numOutput int, gen func(i int, in, out []T)) *TrainData[T] {
	d := &TrainData[T]{
		numInput:  numInput,
		numOutput: numOutput,
		input:     make([]T, numData*numInput),
		output:    make([]T, numData*numOutput),
	}
	for i := 0; i < numData; i++ {
		in := d.input[i*numInput : (i+1)*numInput]
		out := d.output[i*numOutput : (i+1)*numOutput]
		gen(i, in, out)
	}
	return d
}

// NumData returns the number of patterns.
func (d *TrainData[T]) NumData() int {
	if d.numInput == 0 {
		return 0
	}
	return len(d.input) / d.numInput
}

// NumInput returns the input width of every pattern.
func (d *TrainData[T]) NumInput() int { return d.numInput }

// NumOutput returns the output width of every pattern.
func (d *TrainData[T]) NumOutput() int { return d.numOutput }

// At returns pattern i's input and output rows as slices sharing the
// dataset's backing array; callers must not retain them across Shuffle,
// which replaces that array.
func (d *TrainData[T]) At(i int) (in, out []T) {
	return d.input[i*d.numInput : (i+1)*d.numInput], d.output[i*d.numOutput : (i+1)*d.numOutput]
}

// Shuffle randomizes pattern order in place using the Fisher-Yates
// permutation erand.Seeded.Perm produces.
func (d *TrainData[T]) Shuffle(r *erand.Seeded) {
	if r == nil {
		r = erand.Global
	}
	n := d.NumData()
	perm := r.Perm(n)
	newIn := make([]T, len(d.input))
	newOut := make([]T, len(d.output))
	for dst, src := range perm {
		copy(newIn[dst*d.numInput:(dst+1)*d.numInput], d.input[src*d.numInput:(src+1)*d.numInput])
		copy(newOut[dst*d.numOutput:(dst+1)*d.numOutput], d.output[src*d.numOutput:(src+1)*d.numOutput])
	}
	d.input, d.output = newIn, newOut
}

// Merge returns a new dataset containing this dataset's patterns
// followed by other's. Both must share input/output widths.
func (d *TrainData[T]) Merge(other *TrainData[T]) (*TrainData[T], error) {
	if d.numInput != other.numInput || d.numOutput != other.numOutput {
		return nil, d.setError(ErrTrainDataMismatch, "Merge: datasets have different input/output widths")
	}
	m := &TrainData[T]{numInput: d.numInput, numOutput: d.numOutput}
	m.input = append(append([]T(nil), d.input...), other.input...)
	m.output = append(append([]T(nil), d.output...), other.output...)
	return m, nil
}

// Subset returns a new dataset over patterns [pos, pos+length).
func (d *TrainData[T]) Subset(pos, length int) (*TrainData[T], error) {
	if pos < 0 || length < 0 || pos+length > d.NumData() {
		return nil, d.setError(ErrSubsetOutOfRange, "Subset: range [%d,%d) exceeds %d patterns", pos, pos+length, d.NumData())
	}
	s := &TrainData[T]{numInput: d.numInput, numOutput: d.numOutput}
	s.input = append([]T(nil), d.input[pos*d.numInput:(pos+length)*d.numInput]...)
	s.output = append([]T(nil), d.output[pos*d.numOutput:(pos+length)*d.numOutput]...)
	return s, nil
}

// Duplicate returns an independent deep copy of the dataset.
func (d *TrainData[T]) Duplicate() *TrainData[T] {
	cp := &TrainData[T]{numInput: d.numInput, numOutput: d.numOutput}
	cp.input = append([]T(nil), d.input...)
	cp.output = append([]T(nil), d.output...)
	return cp
}

// InputRange returns, per input feature, the minimum and maximum value
// across the dataset -- the statistic scale.go's affine fit is built on.
func (d *TrainData[T]) InputRange() (min, max []T) {
	min = make([]T, d.numInput)
	max = make([]T, d.numInput)
	for i := 0; i < d.numInput; i++ {
		min[i], max[i] = d.input[i], d.input[i]
	}
	for p := 1; p < d.NumData(); p++ {
		for i := 0; i < d.numInput; i++ {
			v := d.input[p*d.numInput+i]
			if v < min[i] {
				min[i] = v
			}
			if v > max[i] {
				max[i] = v
			}
		}
	}
	return
}

// OutputRange returns, per output feature, the minimum and maximum
// value across the dataset.
func (d *TrainData[T]) OutputRange() (min, max []T) {
	min = make([]T, d.numOutput)
	max = make([]T, d.numOutput)
	for i := 0; i < d.numOutput; i++ {
		min[i], max[i] = d.output[i], d.output[i]
	}
	for p := 1; p < d.NumData(); p++ {
		for i := 0; i < d.numOutput; i++ {
			v := d.output[p*d.numOutput+i]
			if v < min[i] {
				min[i] = v
			}
			if v > max[i] {
				max[i] = v
			}
		}
	}
	return
}
