// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package polya

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for a shares or adopters vector with no
	// elements
	ErrEmpty = errors.New("polya: empty vector")
	// ErrTimesteps is returned when a negative number of timesteps is
	// requested
	ErrTimesteps = errors.New("polya: negative number of timesteps")
	// ErrNoSampler is returned when Simulate is called without a source
	// of randomness
	ErrNoSampler = errors.New("polya: nil sampler")
	// ErrSampleRange is returned when a Sampler produces an index outside
	// of the probability vector it was given
	ErrSampleRange = errors.New("polya: sampled index out of range")
	// ErrShareRange is returned when a share lies outside of [0,1]
	ErrShareRange = errors.New("polya: share outside of [0,1]")
)

// ValidationError reports a vector which does not sum to unity, and
// whose deviation is too large to be floating point drift.
type ValidationError struct {
	Sum float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("polya: vector does not sum to unity but to %v", e.Sum)
}

// DegenerateInputError is returned when every weight of a vector is zero
// and there is nothing to normalize by.  This is the case for all-zero
// shares and for an all-zero initial adopter vector.
type DegenerateInputError struct {
	Values []float64
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("polya: degenerate input, all weights are zero: %v", e.Values)
}

// StepError wraps a failure raised while computing a simulation step.
type StepError struct {
	// Step is the zero based index of the adoption which failed
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("polya: step %d: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
