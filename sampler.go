// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package polya

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws a single index from a categorical distribution.  p holds
// one probability per category and sums to one.
type Sampler interface {
	Sample(p []float64) (int, error)
}

// SamplerFunc adapts an ordinary function to the Sampler interface
type SamplerFunc func(p []float64) (int, error)

// Sample calls f(p)
func (f SamplerFunc) Sample(p []float64) (int, error) {
	return f(p)
}

// CategoricalSampler is a seedable Sampler backed by a PCG stream.  It is
// not safe for concurrent use; give every simulation run its own.
type CategoricalSampler struct {
	seed uint64
	src  rand.Source
}

// NewSampler returns a CategoricalSampler whose draws are fully
// determined by seed
func NewSampler(seed uint64) *CategoricalSampler {
	return &CategoricalSampler{
		seed: seed,
		src:  rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
}

// Seed reports the seed the sampler was created with
func (s *CategoricalSampler) Seed() uint64 {
	return s.seed
}

// Sample draws index i with probability p[i]
func (s *CategoricalSampler) Sample(p []float64) (int, error) {
	if len(p) == 0 {
		return 0, ErrEmpty
	}
	for i, v := range p {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("polya: invalid probability %v at index %d", v, i)
		}
	}
	c := distuv.NewCategorical(p, s.src)
	return int(c.Rand()), nil
}

var _ Sampler = (*CategoricalSampler)(nil)
var _ Sampler = SamplerFunc(nil)
