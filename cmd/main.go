// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	polya "github.com/facebookincubator/go-polya"
	"github.com/facebookincubator/go-polya/figure"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "YAML file overriding the default experiment",
}

var logger = logging.MustGetLogger("polya/cmd")

// setupLogging replaces the library's quiet default with a backend on w
// logging INFO, or DEBUG when verbose
func setupLogging(w io.Writer, verbose bool) {
	backend := logging.NewLogBackend(w, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func loadExperiment(c *cli.Context) (polya.Experiment, error) {
	if !c.IsSet("config") {
		return polya.DefaultExperiment(), nil
	}
	e, err := polya.LoadExperiment(c.String("config"))
	if err != nil {
		return e, fmt.Errorf("can't load experiment: %w", err)
	}
	return e, nil
}

func parseAdopters(s string) ([]uint64, error) {
	fields := strings.Split(s, ",")
	adopters := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad adopter count %q: %w", f, err)
		}
		adopters = append(adopters, v)
	}
	return adopters, nil
}

// newEnsemble checks the simulate flags before any run starts
func newEnsemble(adopters string, steps, runs int, seed uint64) (*polya.Ensemble, error) {
	a, err := parseAdopters(adopters)
	if err != nil {
		return nil, err
	}
	if runs < 1 {
		return nil, fmt.Errorf("need at least one run, got %d", runs)
	}
	if steps < 0 {
		return nil, fmt.Errorf("steps must not be negative, got %d", steps)
	}
	return &polya.Ensemble{
		Adopters:  a,
		Timesteps: steps,
		Runs:      runs,
		Seed:      seed,
	}, nil
}

func formatShares(shares []float64) string {
	parts := make([]string, len(shares))
	for i, x := range shares {
		parts[i] = strconv.FormatFloat(x, 'f', 4, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func main() {
	app := &cli.App{
		Name:  "polya",
		Usage: "simulate competing research programs as a generalized Polya process",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every simulation run",
			},
		},
		Before: func(c *cli.Context) error {
			setupLogging(os.Stderr, c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "figures",
				Usage: "reproduce the transition function and Polya process figures",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"out", "o"},
						Usage:   "directory to write the figures to",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "figure format, pdf or png",
					},
					&cli.Uint64Flag{
						Name:  "seed",
						Usage: "base seed of the simulated runs",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}
					e, err := loadExperiment(c)
					if err != nil {
						return err
					}
					if c.IsSet("output") {
						e.OutputDir = c.String("output")
					}
					if c.IsSet("format") {
						e.Format = c.String("format")
					}
					if c.IsSet("seed") {
						e.Seed = c.Uint64("seed")
					}
					start := time.Now()
					paths, err := figure.Reproduce(c.Context, e)
					if err != nil {
						return fmt.Errorf("figures: %w", err)
					}
					logger.Infof("reproduced %d figures in %s", len(paths), time.Since(start))
					return nil
				},
			},
			{
				Name:  "simulate",
				Usage: "simulate sample paths and summarize where they end up",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "adopters",
						Aliases: []string{"a"},
						Value:   "1,1,1",
						Usage:   "comma separated initial adopters per paradigm",
					},
					&cli.IntFlag{
						Name:    "steps",
						Aliases: []string{"t"},
						Value:   500,
						Usage:   "adoptions per run",
					},
					&cli.IntFlag{
						Name:    "runs",
						Aliases: []string{"r"},
						Value:   10,
						Usage:   "number of runs",
					},
					&cli.Uint64Flag{
						Name:  "seed",
						Usage: "base seed of the simulated runs",
					},
				},
				Action: func(c *cli.Context) error {
					ens, err := newEnsemble(c.String("adopters"), c.Int("steps"), c.Int("runs"), c.Uint64("seed"))
					if err != nil {
						return fmt.Errorf("simulate: %w", err)
					}
					runs, err := ens.Run(c.Context)
					if err != nil {
						return fmt.Errorf("simulate: %w", err)
					}
					for _, r := range runs {
						fmt.Printf("run %2d  %s  %s\n", r.Index, r.ID, formatShares(r.Trace.Final()))
					}
					for i := range ens.Adopters {
						s, err := polya.Summarize(runs, i)
						if err != nil {
							return fmt.Errorf("simulate: %w", err)
						}
						fmt.Println(s)
					}
					return nil
				},
			},
			{
				Name:      "transition",
				Usage:     "print adoption probabilities for the given shares",
				ArgsUsage: "share [share...]",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("transition: no shares given")
					}
					shares := make([]float64, c.NArg())
					for i, a := range c.Args().Slice() {
						v, err := strconv.ParseFloat(a, 64)
						if err != nil {
							return fmt.Errorf("transition: bad share %q: %w", a, err)
						}
						shares[i] = v
					}
					p, err := polya.Transition(shares)
					if err != nil {
						return fmt.Errorf("transition: %w", err)
					}
					fmt.Printf("p(%s) = %s\n", formatShares(shares), formatShares(p))
					return nil
				},
			},
			{
				Name:  "describe",
				Usage: "describe the experiment that figures would run",
				Flags: []cli.Flag{configFlag},
				Action: func(c *cli.Context) error {
					e, err := loadExperiment(c)
					if err != nil {
						return fmt.Errorf("describe: %w", err)
					}
					if err := e.Validate(); err != nil {
						return fmt.Errorf("describe: %w", err)
					}
					e.Explain()
					return nil
				},
			},
		},
	}

	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
