// Package render evaluates the Mandelbrot set over a glyph grid
//
// Two strategies share one pixel pipeline:
//   - Sequential scans every pixel in raster order on the calling goroutine
//   - RowParallel hands rows to a bounded worker pool and joins before returning
//
// Both produce identical frames for identical Params and dimensions.
package render

import (
	"github.com/lixenwraith/termbrot/fractal"
	"github.com/lixenwraith/termbrot/palette"
)

// Params is the explicit input record for a render
type Params struct {
	Region  fractal.Region
	MaxIter int
	Palette palette.Palette
}

// Renderer builds a complete frame for a width x height grid
type Renderer interface {
	Name() string
	Render(width, height int) *Frame
}

// Strategy names a renderer
type Strategy string

const (
	StrategySequential Strategy = "sequential"
	StrategyParallel   Strategy = "parallel"
)

// New returns the renderer for a strategy, nil if unknown
// workers only applies to StrategyParallel; 0 means GOMAXPROCS
func New(s Strategy, p Params, workers int) Renderer {
	switch s {
	case StrategySequential:
		return NewSequential(p)
	case StrategyParallel:
		return NewRowParallel(p, workers)
	}
	return nil
}

// rowImag maps row j onto the imaginary axis, row 0 at Ymax
func (p Params) rowImag(j, height int) float64 {
	return fractal.Map(0, float64(height), p.Region.Ymax, p.Region.Ymin, float64(j))
}

// colReal maps column i onto the real axis
func (p Params) colReal(i, width int) float64 {
	return fractal.Map(0, float64(width), p.Region.Xmin, p.Region.Xmax, float64(i))
}

// fillRow computes every glyph of row j into dst
// dst is the only memory written
func (p Params) fillRow(dst []rune, j, width, height int) {
	im := p.rowImag(j, height)
	for i := range dst {
		c := fractal.Complex{Re: p.colReal(i, width), Im: im}
		dst[i] = p.Palette.Glyph(fractal.Escape(c, p.MaxIter), p.MaxIter)
	}
}
