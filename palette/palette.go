// Package palette quantizes escape-time iteration counts into glyphs
package palette

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termbrot/fractal"
)

// DefaultGlyphs is the ASCII density ramp, darkest first
const DefaultGlyphs = ".'`^,:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

var (
	ErrEmpty      = errors.New("palette: no glyphs")
	ErrGlyphWidth = errors.New("palette: glyph is not a single printable column")
)

// Default is the process-wide ramp built from DefaultGlyphs
var Default = MustNew(DefaultGlyphs)

// Palette is an immutable ordered glyph gradient
// Zero value is unusable; construct with New
type Palette struct {
	glyphs []rune
}

// New validates glyphs and builds a palette
// Every glyph must be printable and occupy exactly one terminal column
func New(glyphs string) (Palette, error) {
	runes := []rune(glyphs)
	if len(runes) == 0 {
		return Palette{}, ErrEmpty
	}
	for i, r := range runes {
		if !unicode.IsPrint(r) || runewidth.RuneWidth(r) != 1 {
			return Palette{}, fmt.Errorf("%w: %q at index %d", ErrGlyphWidth, r, i)
		}
	}
	return Palette{glyphs: runes}, nil
}

// MustNew is New for package-level constants, panics on invalid input
func MustNew(glyphs string) Palette {
	p, err := New(glyphs)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the quantization resolution
func (p Palette) Len() int {
	return len(p.glyphs)
}

// Index maps iter in [0, maxIter] onto [0, Len-1], truncating toward zero
// The result is clamped so non-finite mappings (maxIter 0) stay in range
func (p Palette) Index(iter, maxIter int) int {
	last := len(p.glyphs) - 1
	if maxIter <= 0 {
		return 0
	}
	idx := int(fractal.Map(0, float64(maxIter), 0, float64(last), float64(iter)))
	if idx < 0 {
		return 0
	}
	if idx > last {
		return last
	}
	return idx
}

// Glyph returns the glyph for an iteration count
// iter == maxIter, the presumed interior, is the last and densest glyph
func (p Palette) Glyph(iter, maxIter int) rune {
	return p.glyphs[p.Index(iter, maxIter)]
}

// String returns the glyphs in order
func (p Palette) String() string {
	return string(p.glyphs)
}
