package figure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	polya "github.com/facebookincubator/go-polya"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("polya/figure")

func init() {
	logging.SetLevel(logging.WARNING, "polya/figure")
}

// Results holds everything the two figures are drawn from
type Results struct {
	Curves map[int][]polya.CurvePoint
	Runs   map[int][]polya.Run
}

// Compute evaluates the transition curves and simulates the ensembles of
// every panel of the experiment
func Compute(ctx context.Context, e polya.Experiment) (*Results, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	res := &Results{
		Curves: make(map[int][]polya.CurvePoint, len(e.Paradigms)),
		Runs:   make(map[int][]polya.Run, len(e.Paradigms)),
	}
	for _, n := range e.Paradigms {
		curve, err := polya.Curve(n, e.CurvePoints)
		if err != nil {
			return nil, err
		}
		res.Curves[n] = curve

		start := time.Now()
		runs, err := e.Ensemble(n).Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("simulating %d paradigms: %w", n, err)
		}
		res.Runs[n] = runs
		log.Infof("simulated %d runs with %d paradigms in %s", len(runs), n, time.Since(start))
	}
	return res, nil
}

// Reproduce computes the experiment and writes both figures into its
// output directory, returning the paths written
func Reproduce(ctx context.Context, e polya.Experiment) ([]string, error) {
	res, err := Compute(ctx, e)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return nil, err
	}

	transition, err := TransitionFigure(res.Curves, e.Paradigms)
	if err != nil {
		return nil, err
	}
	paths, err := PolyaFigure(res.Runs, e.Paradigms)
	if err != nil {
		return nil, err
	}
	figures := map[string]*Figure{
		TransitionName: transition,
		PolyaName:      paths,
	}
	written := make([]string, 0, len(figures))
	for _, name := range []string{TransitionName, PolyaName} {
		path := filepath.Join(e.OutputDir, name+"."+e.Format)
		if err := figures[name].Save(path); err != nil {
			return nil, err
		}
		log.Infof("wrote %s", path)
		written = append(written, path)
	}
	return written, nil
}
