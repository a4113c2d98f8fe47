package polya

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// MinParadigms is the smallest number of competing paradigms an
// experiment may simulate
const MinParadigms = 2

// Experiment describes a reproduction of the transition function and
// Polya process figures
type Experiment struct {
	// Paradigms lists the number of research programs of each panel
	Paradigms []int `yaml:"paradigms"`
	// Runs is the number of sample paths simulated per panel
	Runs int `yaml:"runs"`
	// Timesteps is the number of adoptions simulated per path
	Timesteps int `yaml:"timesteps"`
	// CurvePoints is the number of shares at which the transition
	// function is evaluated
	CurvePoints int `yaml:"curve_points"`
	// Seed is the base seed of every random stream.  Zero is a valid
	// seed.
	Seed uint64 `yaml:"seed"`
	// OutputDir is the directory figures are written to
	OutputDir string `yaml:"output_dir"`
	// Format is the figure file format, "pdf" or "png"
	Format string `yaml:"format"`
}

// DefaultExperiment returns the parameters used for the published
// figures: two to five paradigms, ten paths of 500 steps each
func DefaultExperiment() Experiment {
	return Experiment{
		Paradigms:   []int{2, 3, 4, 5},
		Runs:        10,
		Timesteps:   500,
		CurvePoints: 110,
		OutputDir:   "output",
		Format:      "pdf",
	}
}

// LoadExperiment reads an experiment from a YAML file.  Fields absent
// from the file keep their DefaultExperiment values.
func LoadExperiment(path string) (Experiment, error) {
	e := DefaultExperiment()
	data, err := os.ReadFile(path)
	if err != nil {
		return e, err
	}
	if err := yaml.Unmarshal(data, &e); err != nil {
		return e, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return e, e.Validate()
}

// Validate reports the first problem found with the experiment
func (e *Experiment) Validate() error {
	if len(e.Paradigms) == 0 {
		return errors.New("experiment has no paradigm counts")
	}
	for _, n := range e.Paradigms {
		if n < MinParadigms {
			return fmt.Errorf("experiment needs at least %d paradigms per panel, got %d", MinParadigms, n)
		}
	}
	if e.Runs < 1 {
		return fmt.Errorf("experiment needs at least one run, got %d", e.Runs)
	}
	if e.Timesteps < 1 {
		return fmt.Errorf("experiment needs at least one timestep, got %d", e.Timesteps)
	}
	if e.CurvePoints < 2 {
		return fmt.Errorf("experiment needs at least two curve points, got %d", e.CurvePoints)
	}
	switch e.Format {
	case "pdf", "png":
	default:
		return fmt.Errorf("unsupported figure format %q", e.Format)
	}
	return nil
}

// Ensemble returns the ensemble simulated for the panel with n paradigms,
// starting from a single adopter per paradigm
func (e *Experiment) Ensemble(n int) *Ensemble {
	adopters := make([]uint64, n)
	for i := range adopters {
		adopters[i] = 1
	}
	return &Ensemble{
		Adopters:  adopters,
		Timesteps: e.Timesteps,
		Runs:      e.Runs,
		Seed:      e.Seed,
	}
}

// TotalSteps reports the number of adoptions simulated across all panels
func (e *Experiment) TotalSteps() int64 {
	return int64(len(e.Paradigms)) * int64(e.Runs) * int64(e.Timesteps)
}

// ExplainIndent will print an indented summary of the experiment to stdout
func (e *Experiment) ExplainIndent(indent string) {
	fmt.Printf("%s%v paradigms per panel\n", indent, e.Paradigms)
	fmt.Printf("%s%s runs of %s adoptions per panel\n", indent, humanize.Comma(int64(e.Runs)), humanize.Comma(int64(e.Timesteps)))
	fmt.Printf("%s%s adoptions simulated in total\n", indent, humanize.Comma(e.TotalSteps()))
	fmt.Printf("%s%s transition function samples per panel\n", indent, humanize.Comma(int64(e.CurvePoints)))
	fmt.Printf("%sbase seed %d\n", indent, e.Seed)
	fmt.Printf("%sfigures written as %s to %s\n", indent, e.Format, e.OutputDir)
}

// Explain will print a summary of the experiment to stdout
func (e *Experiment) Explain() {
	e.ExplainIndent("")
}
