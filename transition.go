// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package polya simulates a generalized Polya urn in which research
// programs (paradigms) compete for adopters.  The probability of the next
// adoption is not proportional to the current share of a paradigm but to
// a nonlinear transition function of it, which yields:
//  1. increasing returns: a paradigm above the fixed point 1/n attracts
//     more than its share of new adopters
//  2. path dependent lock-in to a single paradigm
//  3. reproducible sample paths given a seed
package polya

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tolerance is the largest deviation from unity that is attributed to
// floating point drift and silently corrected.  Anything at or beyond it
// is reported as a ValidationError.
const Tolerance = 1e-6

// Weight is the unnormalized attractiveness of a paradigm holding share
// x, 12x^2 - 5x^3.  It is convex then concave on [0,1] and zero at x = 0.
func Weight(x float64) float64 {
	return 12*x*x - 5*x*x*x
}

// NormalizeOrFail returns a copy of v which sums to exactly one.  If v
// misses unity by less than tolerance the first element absorbs the
// residual, otherwise a *ValidationError carrying the actual sum is
// returned.  v itself is never modified.
func NormalizeOrFail(v []float64, tolerance float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, ErrEmpty
	}
	out := make([]float64, len(v))
	copy(out, v)
	sum := floats.Sum(out)
	if sum == 1.0 {
		return out, nil
	}
	if math.IsNaN(sum) || math.Abs(1.0-sum) >= tolerance {
		return nil, &ValidationError{Sum: sum}
	}
	out[0] = 1 - floats.Sum(out[1:])
	return out, nil
}

// Transition maps a shares vector onto the probability that the next
// adopter joins each paradigm.  shares must sum to one within Tolerance;
// the returned vector has the same length and sums to one.
func Transition(shares []float64) ([]float64, error) {
	x, err := NormalizeOrFail(shares, Tolerance)
	if err != nil {
		return nil, err
	}
	for _, xi := range x {
		if xi < -Tolerance || xi > 1+Tolerance {
			return nil, ErrShareRange
		}
	}

	w := make([]float64, len(x))
	for i, xi := range x {
		w[i] = Weight(xi)
	}
	total := floats.Sum(w)
	if total == 0 {
		return nil, &DegenerateInputError{Values: x}
	}
	for i := range w {
		w[i] /= total
	}
	return NormalizeOrFail(w, Tolerance)
}
