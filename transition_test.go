// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package polya

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestWeight(t *testing.T) {
	assert.Equal(t, 0.0, Weight(0))
	assert.Equal(t, 7.0, Weight(1))
	assert.InDelta(t, 3.24, Weight(0.6), 1e-12)
	assert.InDelta(t, 1.6, Weight(0.4), 1e-12)
	for x := 0.01; x <= 1; x += 0.01 {
		assert.Greater(t, Weight(x), Weight(x-0.01), "weight not increasing at %v", x)
	}
}

func TestTransitionExamples(t *testing.T) {
	p, err := Transition([]float64{0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, p)

	p, err = Transition([]float64{0.6, 0.4})
	require.NoError(t, err)
	assert.InDelta(t, 3.24/4.84, p[0], 1e-12)
	assert.InDelta(t, 1.6/4.84, p[1], 1e-12)
	assert.InDelta(t, 0.6694, p[0], 1e-4)
	assert.InDelta(t, 0.3306, p[1], 1e-4)
	assert.InDelta(t, 1.0, floats.Sum(p), 1e-15)
}

func TestTransitionRejectsBadSum(t *testing.T) {
	_, err := Transition([]float64{0.5, 0.6})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
	assert.InDelta(t, 1.1, verr.Sum, 1e-12)
	assert.Contains(t, err.Error(), "1.1")

	_, err = Transition([]float64{0.4, 0.4})
	require.True(t, errors.As(err, &verr))
	assert.InDelta(t, 0.8, verr.Sum, 1e-12)

	// all zero shares sum to zero, not one
	_, err = Transition([]float64{0, 0, 0})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 0.0, verr.Sum)
}

func TestTransitionEdgeCases(t *testing.T) {
	_, err := Transition(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	p, err := Transition([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, p)

	p, err = Transition([]float64{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, p)

	_, err = Transition([]float64{1.5, -0.5})
	assert.ErrorIs(t, err, ErrShareRange)
}

func TestTransitionDoesNotModifyInput(t *testing.T) {
	shares := []float64{0.3, 0.3, 0.4 - 1e-9}
	orig := append([]float64(nil), shares...)
	_, err := Transition(shares)
	require.NoError(t, err)
	assert.Equal(t, orig, shares)
}

func TestFixedPoint(t *testing.T) {
	for n := 2; n <= 10; n++ {
		shares := make([]float64, n)
		for i := range shares {
			shares[i] = FixedPoint(n)
		}
		p, err := Transition(shares)
		require.NoError(t, err, "n=%d", n)
		for i := range p {
			assert.InDelta(t, 1/float64(n), p[i], 1e-12, "n=%d i=%d", n, i)
		}
	}
}

func TestTransitionProperties(t *testing.T) {
	r := rand.New(rand.NewSource(77)) //intentionally fixed seed
	for trial := 0; trial < 1000; trial++ {
		n := 2 + r.Intn(8)
		shares := make([]float64, n)
		for i := range shares {
			shares[i] = r.Float64()
		}
		floats.Scale(1/floats.Sum(shares), shares)

		p, err := Transition(shares)
		require.NoError(t, err, "shares %v", shares)
		require.Len(t, p, n)
		assert.InDelta(t, 1.0, floats.Sum(p), 1e-12)
		for _, v := range p {
			assert.GreaterOrEqual(t, v, -1e-12)
			assert.LessOrEqual(t, v, 1+1e-12)
		}
	}
}

// p(x_i) grows with x_i and matches the closed form everywhere
func TestTransitionMonotone(t *testing.T) {
	closed := func(x float64, n int) float64 {
		rest := (1 - x) / float64(n-1)
		return Weight(x) / (Weight(x) + float64(n-1)*Weight(rest))
	}
	for n := 2; n <= 5; n++ {
		prev := -1.0
		for i := 1; i <= 100; i++ {
			x := float64(i) / 100
			p, err := Transition(SymmetricShares(x, n))
			require.NoError(t, err)
			assert.InDelta(t, closed(x, n), p[0], 1e-12, "n=%d x=%v", n, x)
			if x > FixedPoint(n) && x < 1 {
				assert.Greater(t, p[0], x, "n=%d x=%v should be pulled toward lock-in", n, x)
			} else if x < FixedPoint(n) {
				assert.Less(t, p[0], x, "n=%d x=%v should be pushed out", n, x)
			}
			assert.Greater(t, p[0], prev, "n=%d x=%v", n, x)
			prev = p[0]
		}
	}
}

func TestNormalizeOrFail(t *testing.T) {
	v := []float64{0.5, 0.5 - 1e-9}
	out, err := NormalizeOrFail(v, Tolerance)
	require.NoError(t, err)
	assert.Equal(t, 1-out[1], out[0])
	assert.Equal(t, 0.5, v[0], "input must not be modified")

	out, err = NormalizeOrFail([]float64{0.5, 0.5 + 1e-9}, Tolerance)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[0]+out[1], 1e-15)

	// either side of the tolerance, with deficits well clear of rounding
	out, err = NormalizeOrFail([]float64{0.5, 0.5 - 5e-7}, Tolerance)
	require.NoError(t, err)
	assert.Equal(t, 1-out[1], out[0])

	_, err = NormalizeOrFail([]float64{0.5, 0.5 - 2e-6}, Tolerance)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.InDelta(t, 1-2e-6, verr.Sum, 1e-12)

	_, err = NormalizeOrFail([]float64{0.5, 0.5 + 2e-6}, Tolerance)
	require.True(t, errors.As(err, &verr))
	assert.InDelta(t, 1+2e-6, verr.Sum, 1e-12)

	out, err = NormalizeOrFail([]float64{0.9, 0.2}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, out[0], 1e-12)

	_, err = NormalizeOrFail(nil, Tolerance)
	assert.ErrorIs(t, err, ErrEmpty)
}

func BenchmarkTransition(b *testing.B) {
	shares := SymmetricShares(0.4, 5)
	for n := 0; n < b.N; n++ {
		Transition(shares)
	}
}
