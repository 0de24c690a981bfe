// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "testing"

func TestNewStandardTopology(t *testing.T) {
	net, err := NewStandard[float32]([]int{2, 3, 1})
	if err != nil {
		t.Fatalf("NewStandard: %v", err)
	}
	if net.NumInput() != 2 {
		t.Errorf("NumInput() = %d, want 2", net.NumInput())
	}
	if net.NumOutput() != 1 {
		t.Errorf("NumOutput() = %d, want 1", net.NumOutput())
	}
	// input layer: 2 + bias = 3, hidden: 3 + bias = 4, output: 1
	if got, want := net.TotalNeurons(), 3+4+1; got != want {
		t.Errorf("TotalNeurons() = %d, want %d", got, want)
	}
	// hidden layer: 3 neurons * 3 inputs (2 + bias) = 9
	// output layer: 1 neuron * 4 inputs (3 + bias) = 4
	if got, want := net.TotalConnections(), 9+4; got != want {
		t.Errorf("TotalConnections() = %d, want %d", got, want)
	}
}

func TestRunRejectsWrongInputWidth(t *testing.T) {
	net, _ := NewStandard[float32]([]int{2, 3, 1})
	if _, err := net.Run([]float32{1}); err == nil {
		t.Error("Run with wrong input width should error")
	}
}

func TestRunProducesFiniteOutput(t *testing.T) {
	net, _ := NewStandard[float32]([]int{2, 3, 1})
	net.SetActivationFunctionHidden(SigmoidSymmetric)
	net.SetActivationFunctionOutput(SigmoidSymmetric)
	out, err := net.Run([]float32{1, -1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("Run returned %d outputs, want 1", len(out))
	}
	if out[0] < -1 || out[0] > 1 {
		t.Errorf("Run output %v out of SigmoidSymmetric range", out[0])
	}
}

func TestNewShortcutConnectsEveryEarlierNeuron(t *testing.T) {
	net, err := NewShortcut[float32]([]int{2, 2, 1})
	if err != nil {
		t.Fatalf("NewShortcut: %v", err)
	}
	// layer0: 2+bias=3, layer1: 2 (no bias, shortcut), layer2: 1
	// layer1 neurons connect to all 3 of layer0: 2*3 = 6
	// layer2 neuron connects to all of layer0+layer1: 1*(3+2) = 5
	if got, want := net.TotalConnections(), 6+5; got != want {
		t.Errorf("TotalConnections() = %d, want %d", got, want)
	}
}

func TestNewSparseRespectsQuota(t *testing.T) {
	net, err := NewSparse[float32](0.5, []int{10, 4, 1})
	if err != nil {
		t.Fatalf("NewSparse: %v", err)
	}
	hiddenLayer := net.Layers[1]
	for ni := hiddenLayer.FirstNeuron; ni < hiddenLayer.LastNeuron-1; ni++ {
		fanIn := net.Neurons[ni].FanIn()
		if fanIn != 5 { // 10 inputs + bias = 11, rate 0.5 -> quota 5
			t.Errorf("hidden neuron %d fan-in = %d, want 5", ni, fanIn)
		}
	}
}
