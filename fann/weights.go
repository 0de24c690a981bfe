// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "log/slog"

// GetLayerArray returns each layer's neuron count, bias included.
func (n *Network[T]) GetLayerArray() []int { return n.LayerSizes() }

// GetBiasArray returns, per layer, its bias-neuron count (0 or 1).
func (n *Network[T]) GetBiasArray() []int { return n.BiasArray() }

// GetConnectionArray returns, per connection in destination order, its
// source-neuron index.
func (n *Network[T]) GetConnectionArray() []int32 { return n.ConnectionArray() }

// GetWeights returns a copy of the flat connection-weight array.
func (n *Network[T]) GetWeights() []T { return n.WeightsArray() }

// GetTotalNeurons returns the total neuron count, bias units included.
func (n *Network[T]) GetTotalNeurons() int { return n.TotalNeurons() }

// GetTotalConnections returns the total connection count.
func (n *Network[T]) GetTotalConnections() int { return n.TotalConnections() }

// GetNetworkType returns whether the network is Layered or Shortcut.
func (n *Network[T]) GetNetworkType() NetworkType { return n.Type }

// GetNumLayers returns the number of layers, input and output included.
func (n *Network[T]) GetNumLayers() int { return n.NumLayers() }

// PrintConnections logs every connection as (source -> destination:
// weight), grouped by destination neuron, to the given logger (or
// slog.Default() if nil). Mirrors fann_print_connections' dump, routed
// through structured logging instead of stdout.
func (n *Network[T]) PrintConnections(log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	for dst := range n.Neurons {
		nrn := &n.Neurons[dst]
		if nrn.IsBias() {
			continue
		}
		for c := nrn.FirstCon; c < nrn.LastCon; c++ {
			src := n.sourceOf(c)
			log.Info("connection", "src", src, "dst", dst, "weight", n.Weights[c])
		}
	}
}

// sourceOf returns the source-neuron index feeding connection slot c,
// accounting for the fully-layered fast path where Sources is unused.
func (n *Network[T]) sourceOf(c int32) int32 {
	if len(n.Sources) > 0 {
		return n.Sources[c]
	}
	for li := 1; li < len(n.Layers); li++ {
		layer := n.Layers[li]
		for ni := layer.FirstNeuron; ni < layer.LastNeuron; ni++ {
			nrn := &n.Neurons[ni]
			if c >= nrn.FirstCon && c < nrn.LastCon {
				return n.Layers[li-1].FirstNeuron + (c - nrn.FirstCon)
			}
		}
	}
	return -1
}

// PrintParameters logs every hyperparameter group at Info level, the
// structured-logging equivalent of fann_print_parameters.
func (n *Network[T]) PrintParameters(log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	log.Info("network parameters",
		"type", n.Type,
		"algorithm", n.Algorithm,
		"learning_rate", n.LearningRate,
		"momentum", n.Momentum,
		"error_func", n.ErrorFunc,
		"stop_func", n.StopFunc,
		"bit_fail_limit", n.BitFailLimit,
		"num_layers", n.NumLayers(),
		"total_neurons", n.TotalNeurons(),
		"total_connections", n.TotalConnections(),
	)
	log.Info("rprop parameters",
		"increase_factor", n.Rprop.IncreaseFactor,
		"decrease_factor", n.Rprop.DecreaseFactor,
		"delta_min", n.Rprop.DeltaMin,
		"delta_max", n.Rprop.DeltaMax,
		"delta_zero", n.Rprop.DeltaZero,
	)
	log.Info("quickprop parameters", "decay", n.Quickprop.Decay, "mu", n.Quickprop.Mu)
	log.Info("sarprop parameters",
		"weight_decay_shift", n.Sarprop.WeightDecayShift,
		"step_error_threshold_factor", n.Sarprop.StepErrorThresholdFactor,
		"step_error_shift", n.Sarprop.StepErrorShift,
		"temperature", n.Sarprop.Temperature,
	)
}
