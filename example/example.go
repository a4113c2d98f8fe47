package main

import (
	"fmt"

	polya "github.com/facebookincubator/go-polya"
)

func main() {
	// the uniform split is a fixed point of the transition function,
	// any other split is pushed further from it
	for _, shares := range [][]float64{
		{0.5, 0.5},
		{0.6, 0.4},
		{0.2, 0.8},
		{1. / 3, 1. / 3, 1. / 3},
	} {
		p, err := polya.Transition(shares)
		if err != nil {
			fmt.Printf("%v: %s\n", shares, err)
			continue
		}
		fmt.Printf("%v -> %.4f\n", shares, p)
	}

	// a single sample path with three paradigms, one adopter each.  Use a
	// fixed seed to get the same path every time.
	trace, err := polya.Simulate([]uint64{1, 1, 1}, 500, polya.NewSampler(42))
	if err != nil {
		panic(err)
	}
	for t := 0; t <= trace.Steps(); t += 100 {
		fmt.Printf("t=%3d  %.3f\n", t, trace[t])
	}
}
