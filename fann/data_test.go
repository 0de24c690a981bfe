// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "testing"

func TestCreateTrainRejectsMismatchedRows(t *testing.T) {
	_, err := CreateTrain[float32](2, 1, []float32{1, 2, 3, 4}, []float32{1})
	if err == nil {
		t.Error("CreateTrain should reject mismatched row counts")
	}
}

func TestCreateTrainAt(t *testing.T) {
	data, err := CreateTrain[float32](2, 1,
		[]float32{0, 0, 0, 1, 1, 0, 1, 1},
		[]float32{0, 1, 1, 0},
	)
	if err != nil {
		t.Fatalf("CreateTrain: %v", err)
	}
	if data.NumData() != 4 {
		t.Fatalf("NumData() = %d, want 4", data.NumData())
	}
	in, out := data.At(2)
	if in[0] != 1 || in[1] != 0 || out[0] != 1 {
		t.Errorf("At(2) = %v -> %v, want [1 0] -> [1]", in, out)
	}
}

func TestSubsetOutOfRange(t *testing.T) {
	data, _ := CreateTrain[float32](1, 1, []float32{1, 2, 3}, []float32{1, 2, 3})
	if _, err := data.Subset(1, 10); err == nil {
		t.Error("Subset beyond dataset length should error")
	}
}

func TestMergeRequiresMatchingShape(t *testing.T) {
	a, _ := CreateTrain[float32](2, 1, []float32{1, 2}, []float32{1})
	b, _ := CreateTrain[float32](3, 1, []float32{1, 2, 3}, []float32{1})
	if _, err := a.Merge(b); err == nil {
		t.Error("Merge of mismatched shapes should error")
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	data, _ := CreateTrain[float32](1, 1, []float32{1, 2}, []float32{1, 2})
	cp := data.Duplicate()
	in, _ := cp.At(0)
	in[0] = 99
	orig, _ := data.At(0)
	if orig[0] == 99 {
		t.Error("Duplicate should not share backing storage with the original")
	}
}
