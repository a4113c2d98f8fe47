// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package polya

// Trace is the history of one simulation run: the shares vector before
// the first adoption followed by the shares after every adoption.
type Trace [][]float64

// Steps reports the number of adoptions recorded in the trace
func (t Trace) Steps() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// Final returns the shares after the last adoption
func (t Trace) Final() []float64 {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1]
}

// Series returns the share of paradigm i at every point in time, or nil
// if i is out of range
func (t Trace) Series(i int) []float64 {
	if len(t) == 0 || i < 0 || i >= len(t[0]) {
		return nil
	}
	series := make([]float64, len(t))
	for step, shares := range t {
		series[step] = shares[i]
	}
	return series
}

// Simulate runs the Polya process for timesteps adoptions starting from
// the adopter counts given.  At each step the next adopter joins paradigm
// i with probability Transition(shares)[i].  adopters is not modified;
// the run works on its own copy.
func Simulate(adopters []uint64, timesteps int, s Sampler) (Trace, error) {
	if len(adopters) == 0 {
		return nil, ErrEmpty
	}
	if timesteps < 0 {
		return nil, ErrTimesteps
	}
	if s == nil {
		return nil, ErrNoSampler
	}

	counts := make([]uint64, len(adopters))
	copy(counts, adopters)
	var total uint64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, &DegenerateInputError{Values: make([]float64, len(counts))}
	}

	trace := make(Trace, 0, timesteps+1)
	trace = append(trace, shares(counts, total))
	for t := 0; t < timesteps; t++ {
		p, err := Transition(trace[t])
		if err != nil {
			return nil, &StepError{Step: t, Err: err}
		}
		i, err := s.Sample(p)
		if err != nil {
			return nil, &StepError{Step: t, Err: err}
		}
		if i < 0 || i >= len(counts) {
			return nil, &StepError{Step: t, Err: ErrSampleRange}
		}
		counts[i]++
		total++
		trace = append(trace, shares(counts, total))
	}
	return trace, nil
}

func shares(counts []uint64, total uint64) []float64 {
	x := make([]float64, len(counts))
	for i, c := range counts {
		x[i] = float64(c) / float64(total)
	}
	return x
}
