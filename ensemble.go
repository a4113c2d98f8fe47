// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package polya

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// runNamespace scopes the deterministic identifiers handed to runs
var runNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("polya/run"))

// Run is the outcome of one member of an Ensemble
type Run struct {
	Index int
	// ID identifies the run in logs.  It is derived from the label, base
	// seed and index, so repeating an experiment repeats the IDs.
	ID    uuid.UUID
	Seed  uint64
	Trace Trace
}

// Ensemble describes a family of independent simulation runs sharing an
// initial condition.  Runs are executed concurrently, each with its own
// adopter counts and its own random stream.
type Ensemble struct {
	// Adopters is the initial adopter count per paradigm
	Adopters []uint64
	// Timesteps is the number of adoptions simulated per run
	Timesteps int
	// Runs is the number of sample paths
	Runs int
	// Seed is the base seed from which per-run seeds are derived
	Seed uint64
	// Label distinguishes ensembles which share a base seed.  Defaults to
	// the number of paradigms.
	Label string
	// Workers bounds concurrency, runtime.NumCPU() when zero
	Workers int
}

func (e *Ensemble) label() string {
	if e.Label != "" {
		return e.Label
	}
	return fmt.Sprintf("n=%d", len(e.Adopters))
}

// Run simulates every member of the ensemble and returns them ordered by
// index.  The first failing run cancels those not yet started.  The result
// depends only on the ensemble's fields, not on Workers or scheduling.
func (e *Ensemble) Run(ctx context.Context) ([]Run, error) {
	if e.Runs < 0 {
		return nil, fmt.Errorf("polya: negative number of runs: %d", e.Runs)
	}
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > e.Runs {
		workers = e.Runs
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	label := e.label()
	runs := make([]Run, e.Runs)
	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				seed := StreamSeed(e.Seed, label, i)
				id := uuid.NewSHA1(runNamespace, []byte(fmt.Sprintf("%s/%d/%d", label, e.Seed, i)))
				log.Debugf("run %s (%s #%d) starting with seed %d", id, label, i, seed)
				trace, err := Simulate(e.Adopters, e.Timesteps, NewSampler(seed))
				if err != nil {
					fail(fmt.Errorf("run %d of %s: %w", i, label, err))
					continue
				}
				runs[i] = Run{Index: i, ID: id, Seed: seed, Trace: trace}
				log.Debugf("run %s finished with shares %v", id, trace.Final())
			}
		}()
	}

feed:
	for i := 0; i < e.Runs; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}
