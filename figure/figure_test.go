package figure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	polya "github.com/facebookincubator/go-polya"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallExperiment(dir string) polya.Experiment {
	e := polya.DefaultExperiment()
	e.Runs = 3
	e.Timesteps = 50
	e.CurvePoints = 20
	e.OutputDir = dir
	return e
}

func TestCompute(t *testing.T) {
	e := smallExperiment(t.TempDir())
	res, err := Compute(context.Background(), e)
	require.NoError(t, err)
	for _, n := range e.Paradigms {
		assert.Len(t, res.Curves[n], 20, "n=%d", n)
		require.Len(t, res.Runs[n], 3, "n=%d", n)
		assert.Len(t, res.Runs[n][0].Trace, 51, "n=%d", n)
		assert.Len(t, res.Runs[n][0].Trace.Final(), n)
	}

	e.Format = "gif"
	_, err = Compute(context.Background(), e)
	assert.Error(t, err)
}

func TestReproduce(t *testing.T) {
	for _, format := range []string{"pdf", "png"} {
		dir := t.TempDir()
		e := smallExperiment(filepath.Join(dir, "output"))
		e.Format = format
		paths, err := Reproduce(context.Background(), e)
		require.NoError(t, err, format)
		require.Equal(t, []string{
			filepath.Join(dir, "output", TransitionName+"."+format),
			filepath.Join(dir, "output", PolyaName+"."+format),
		}, paths)
		for _, p := range paths {
			st, err := os.Stat(p)
			require.NoError(t, err)
			assert.Greater(t, st.Size(), int64(0), p)
		}
	}
}

func TestFigureLayout(t *testing.T) {
	curves := map[int][]polya.CurvePoint{}
	for _, n := range []int{2, 3, 4} {
		c, err := polya.Curve(n, 10)
		require.NoError(t, err)
		curves[n] = c
	}
	f, err := TransitionFigure(curves, []int{2, 3, 4})
	require.NoError(t, err)
	rows, cols := f.Panels()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	require.NoError(t, f.Save(filepath.Join(t.TempDir(), "odd.png")))

	_, err = TransitionFigure(curves, []int{5})
	assert.Error(t, err)
	_, err = PolyaFigure(map[int][]polya.Run{}, []int{2})
	assert.Error(t, err)
	assert.Error(t, f.Save(filepath.Join(t.TempDir(), "fig.svgz")))
}

func TestNumberName(t *testing.T) {
	assert.Equal(t, "three", numberName(3))
	assert.Equal(t, "12", numberName(12))
	assert.Equal(t, "Three", capitalize(numberName(3)))
	assert.Equal(t, "12", capitalize("12"))
}
