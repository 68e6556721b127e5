package render

import (
	"github.com/lixenwraith/termbrot/fractal"
)

// Sequential renders in raster order on the calling goroutine
type Sequential struct {
	params Params
}

// NewSequential creates a single-threaded renderer
func NewSequential(p Params) *Sequential {
	return &Sequential{params: p}
}

// Name implements Renderer
func (s *Sequential) Name() string {
	return string(StrategySequential)
}

// Render implements Renderer
func (s *Sequential) Render(width, height int) *Frame {
	f := NewFrame(width, height)
	p := s.params
	for j := 0; j < f.Height(); j++ {
		for i := 0; i < f.Width(); i++ {
			c := fractal.Complex{Re: p.colReal(i, width), Im: p.rowImag(j, height)}
			f.Set(j, i, p.Palette.Glyph(fractal.Escape(c, p.MaxIter), p.MaxIter))
		}
	}
	return f
}
