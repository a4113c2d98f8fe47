package figure

import (
	"fmt"

	polya "github.com/facebookincubator/go-polya"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var numberNames = map[int]string{
	2: "two", 3: "three", 4: "four", 5: "five", 6: "six",
	7: "seven", 8: "eight", 9: "nine", 10: "ten",
}

func numberName(n int) string {
	if s, ok := numberNames[n]; ok {
		return s
	}
	return fmt.Sprint(n)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// TransitionFigure draws p(x_i) against x_i, one panel per paradigm count.
// Each panel shows the 45 degree line and marks the interior fixed point.
func TransitionFigure(curves map[int][]polya.CurvePoint, paradigms []int) (*Figure, error) {
	panels := make([]*plot.Plot, 0, len(paradigms))
	for _, n := range paradigms {
		curve, ok := curves[n]
		if !ok {
			return nil, fmt.Errorf("no transition curve for %d paradigms", n)
		}
		p := plot.New()
		p.Title.Text = capitalize(numberName(n)) + " research programs"
		p.X.Label.Text = "x_i"
		p.Y.Label.Text = "p(x_i)"
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1

		diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
		if err != nil {
			return nil, err
		}
		diagonal.LineStyle.Color = diagonalColor
		diagonal.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

		xys := make(plotter.XYs, len(curve))
		for i, pt := range curve {
			xys[i].X, xys[i].Y = pt.X, pt.P
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = curveColor
		line.LineStyle.Width = vg.Points(1.5)

		fp := polya.FixedPoint(n)
		marker, err := plotter.NewScatter(plotter.XYs{{X: fp, Y: fp}})
		if err != nil {
			return nil, err
		}
		marker.GlyphStyle.Shape = draw.CircleGlyph{}
		marker.GlyphStyle.Radius = vg.Points(4)
		marker.GlyphStyle.Color = pointColor

		p.Add(diagonal, line, marker)
		panels = append(panels, p)
	}
	return newFigure(panels), nil
}

// PolyaFigure draws the share of the first paradigm over time for every
// run, one panel per paradigm count
func PolyaFigure(runs map[int][]polya.Run, paradigms []int) (*Figure, error) {
	panels := make([]*plot.Plot, 0, len(paradigms))
	for _, n := range paradigms {
		rs, ok := runs[n]
		if !ok {
			return nil, fmt.Errorf("no simulation runs for %d paradigms", n)
		}
		p := plot.New()
		p.Title.Text = "Shares for the first of " + numberName(n) + " research programs"
		p.X.Label.Text = "t"
		p.Y.Label.Text = "x_0"
		p.Y.Min, p.Y.Max = 0, 1

		for i, r := range rs {
			series := r.Trace.Series(0)
			xys := make(plotter.XYs, len(series))
			for t, x := range series {
				xys[t].X, xys[t].Y = float64(t), x
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("run %d of %d paradigms: %w", r.Index, n, err)
			}
			line.LineStyle.Color = plotutil.Color(i)
			p.Add(line)
		}
		panels = append(panels, p)
	}
	return newFigure(panels), nil
}
