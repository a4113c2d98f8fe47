// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package figure renders transition function curves and Polya sample
// paths as grids of panels, two panels per row.
package figure

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// File names of the two figures, without extension
const (
	TransitionName = "fig02_transition-function"
	PolyaName      = "fig03_polya-process"
)

// Columns is the number of panels per row
const Columns = 2

var (
	curveColor    = color.NRGBA{R: 0x00, G: 0x80, B: 0xFF, A: 0x80}
	pointColor    = color.NRGBA{R: 0x00, G: 0x80, B: 0xFF, A: 0xFF}
	diagonalColor = color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
)

// Figure is a grid of panels which can be written to disk
type Figure struct {
	panels        [][]*plot.Plot
	Width, Height vg.Length
}

func newFigure(panels []*plot.Plot) *Figure {
	rows := (len(panels) + Columns - 1) / Columns
	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, Columns)
		for c := range grid[r] {
			if ix := r*Columns + c; ix < len(panels) {
				grid[r][c] = panels[ix]
			} else {
				blank := plot.New()
				blank.HideAxes()
				grid[r][c] = blank
			}
		}
	}
	return &Figure{
		panels: grid,
		Width:  12 * vg.Inch,
		Height: vg.Length(rows) * 4.5 * vg.Inch,
	}
}

// Panels reports the number of rows and columns of the grid
func (f *Figure) Panels() (rows, cols int) {
	return len(f.panels), Columns
}

func (f *Figure) draw(c vg.CanvasSizer) {
	dc := draw.New(c)
	tiles := draw.Tiles{
		Rows:      len(f.panels),
		Cols:      Columns,
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(f.panels, tiles, dc)
	for r := range f.panels {
		for c := range f.panels[r] {
			f.panels[r][c].Draw(canvases[r][c])
		}
	}
}

// Save writes the figure to path.  The format is chosen by the file
// extension, either .pdf or .png.
func (f *Figure) Save(path string) error {
	var c interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		c = vgpdf.New(f.Width, f.Height)
	case ".png":
		c = vgimg.PngCanvas{Canvas: vgimg.New(f.Width, f.Height)}
	default:
		return fmt.Errorf("unsupported figure format %q", ext)
	}
	f.draw(c)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer out.Close()
	if _, err := c.WriteTo(out); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return out.Close()
}
