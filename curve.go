package polya

import "fmt"

// CurvePoint is one sample of the transition function: the probability P
// that paradigm 0 receives the next adopter when it holds share X and
// the remainder is split evenly among the other paradigms.
type CurvePoint struct {
	X, P float64
}

// FixedPoint returns the interior fixed point of the transition function
// for n paradigms, where every paradigm holds share 1/n
func FixedPoint(n int) float64 {
	return 1 / float64(n)
}

// SymmetricShares returns the shares vector in which paradigm 0 holds x
// and the other n-1 paradigms split 1-x evenly
func SymmetricShares(x float64, n int) []float64 {
	shares := make([]float64, n)
	shares[0] = x
	for i := 1; i < n; i++ {
		shares[i] = (1 - x) / float64(n-1)
	}
	return shares
}

// Curve samples p(x_0) at points evenly spaced shares in [0,1] for n
// paradigms.  At x = 0 with n > 1 the others hold everything, so the
// point is well defined.
func Curve(n, points int) ([]CurvePoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("polya: curve needs at least two paradigms, got %d", n)
	}
	if points < 2 {
		return nil, fmt.Errorf("polya: curve needs at least two points, got %d", points)
	}
	curve := make([]CurvePoint, points)
	for i := range curve {
		x := float64(i) / float64(points-1)
		p, err := Transition(SymmetricShares(x, n))
		if err != nil {
			return nil, fmt.Errorf("polya: curve at x=%v: %w", x, err)
		}
		curve[i] = CurvePoint{X: x, P: p[0]}
	}
	return curve, nil
}
