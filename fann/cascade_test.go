// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "testing"

func TestNewCascadeSeedTopology(t *testing.T) {
	net := NewCascade[float32](2, 1)
	if net.NumInput() != 2 || net.NumOutput() != 1 {
		t.Fatalf("NewCascade(2,1) input/output = %d/%d, want 2/1", net.NumInput(), net.NumOutput())
	}
	if net.Type != Shortcut {
		t.Errorf("NewCascade network type = %v, want Shortcut", net.Type)
	}
	// 2 inputs + bias = 3 sources, fully connected to the 1 output neuron.
	if got := net.TotalConnections(); got != 3 {
		t.Errorf("TotalConnections() = %d, want 3", got)
	}
}

func TestCandidatePoolSize(t *testing.T) {
	net := NewCascade[float32](2, 1)
	pool := net.candidatePool()
	want := net.Cascade.NumCandidates()
	if len(pool) != want {
		t.Errorf("candidatePool() size = %d, want %d", len(pool), want)
	}
}

func TestInstallBestGrowsNetwork(t *testing.T) {
	net := NewCascade[float32](2, 1)
	data, err := CreateTrain[float32](2, 1,
		[]float32{-1, -1, -1, 1, 1, -1, 1, 1},
		[]float32{-1, 1, 1, -1},
	)
	if err != nil {
		t.Fatalf("CreateTrain: %v", err)
	}

	before := net.TotalNeurons()
	net.initCandidates()
	net.trainCandidates(data)
	if net.cascadeScratch.best < 0 {
		t.Fatal("trainCandidates left no best candidate selected")
	}
	if err := net.installBest(); err != nil {
		t.Fatalf("installBest: %v", err)
	}
	if got := net.TotalNeurons(); got != before+1 {
		t.Errorf("TotalNeurons() after installBest = %d, want %d", got, before+1)
	}
	if net.NumOutput() != 1 {
		t.Errorf("NumOutput() after installBest = %d, want 1", net.NumOutput())
	}
	if _, err := net.Run([]float32{1, -1}); err != nil {
		t.Fatalf("Run after installBest: %v", err)
	}
}

func TestCascadeTrainOnDataRejectsIneligibleAlgorithm(t *testing.T) {
	net := NewCascade[float32](2, 1)
	net.Algorithm = Batch
	data, _ := CreateTrain[float32](2, 1, []float32{-1, -1, 1, 1}, []float32{-1, 1})
	if err := net.CascadeTrainOnData(data, 5, nil); err == nil {
		t.Error("CascadeTrainOnData with Batch algorithm should error")
	}
}
