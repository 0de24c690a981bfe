// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paths

import (
	"testing"

	"github.com/libfann/gofann/erand"
)

func TestFullConnectsEveryPair(t *testing.T) {
	conns := Full{}.Connect(3, 2)
	if len(conns) != 2 {
		t.Fatalf("Connect returned %d receivers, want 2", len(conns))
	}
	for r, srcs := range conns {
		if len(srcs) != 3 {
			t.Errorf("receiver %d has %d sources, want 3", r, len(srcs))
		}
	}
}

func TestSampleWithoutReplacementNoDuplicates(t *testing.T) {
	r := &erand.Seeded{}
	r.Seed(3)
	ur := &UniformRandom{Rng: r}
	picks := ur.SampleWithoutReplacement(10, 4)
	if len(picks) != 4 {
		t.Fatalf("SampleWithoutReplacement returned %d picks, want 4", len(picks))
	}
	seen := map[int32]bool{}
	for _, p := range picks {
		if p < 0 || p >= 10 || seen[p] {
			t.Fatalf("invalid or duplicate pick %d", p)
		}
		seen[p] = true
	}
}

func TestSampleWithoutReplacementClampsToN(t *testing.T) {
	r := &erand.Seeded{}
	r.Seed(9)
	ur := &UniformRandom{Rng: r}
	picks := ur.SampleWithoutReplacement(3, 10)
	if len(picks) != 3 {
		t.Errorf("SampleWithoutReplacement(3,10) returned %d picks, want 3", len(picks))
	}
}

func TestUniformRandomReshufflesOnExhaustion(t *testing.T) {
	r := &erand.Seeded{}
	r.Seed(11)
	ur := &UniformRandom{Rng: r}
	conns := ur.Connect(2, 5)
	if len(conns) != 5 {
		t.Fatalf("Connect returned %d receivers, want 5", len(conns))
	}
	for _, srcs := range conns {
		if len(srcs) != 1 || srcs[0] < 0 || srcs[0] >= 2 {
			t.Errorf("invalid connection %v", srcs)
		}
	}
}
