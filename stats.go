package polya

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LockInThreshold is the final share above which a run counts as locked
// in to a paradigm
const LockInThreshold = 0.9

// Summary describes the distribution of one paradigm's final share across
// the runs of an ensemble
type Summary struct {
	Paradigm int
	Runs     int
	Mean     float64
	// Variance is the unbiased sample variance, zero for a single run
	Variance float64
	Min, Max float64
	// LockedIn is the fraction of runs in which the paradigm finished at
	// or above LockInThreshold
	LockedIn float64
}

// Summarize computes a Summary of the final share of paradigm over runs
func Summarize(runs []Run, paradigm int) (Summary, error) {
	s := Summary{Paradigm: paradigm, Runs: len(runs)}
	if len(runs) == 0 {
		return s, ErrEmpty
	}
	final := make([]float64, len(runs))
	locked := 0
	for i, r := range runs {
		shares := r.Trace.Final()
		if paradigm < 0 || paradigm >= len(shares) {
			return s, fmt.Errorf("polya: run %d has no paradigm %d", r.Index, paradigm)
		}
		final[i] = shares[paradigm]
		if final[i] >= LockInThreshold {
			locked++
		}
	}
	if len(final) > 1 {
		s.Mean, s.Variance = stat.MeanVariance(final, nil)
	} else {
		s.Mean = final[0]
	}
	s.Min = floats.Min(final)
	s.Max = floats.Max(final)
	s.LockedIn = float64(locked) / float64(len(final))
	return s, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("x_%d over %d runs: mean %.4f, variance %.4f, range [%.4f, %.4f], locked in %.0f%%",
		s.Paradigm, s.Runs, s.Mean, s.Variance, s.Min, s.Max, 100*s.LockedIn)
}
