package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"
)

// Grid is a read-only row-major glyph grid
type Grid interface {
	Width() int
	Height() int
	Row(j int) []rune
}

// Output writes frames and timing lines through a single buffer
// Not safe for concurrent use
type Output struct {
	writer *bufio.Writer
	clear  bool
}

// NewOutput wraps w; clear emits clear-and-home before each frame
func NewOutput(w io.Writer, clear bool) *Output {
	return &Output{
		writer: bufio.NewWriterSize(w, 131072), // 128KB buffer
		clear:  clear,
	}
}

// WriteFrame emits the grid as one contiguous block, rows concatenated with no
// delimiter, followed by a newline, then flushes
func (o *Output) WriteFrame(g Grid) error {
	w := o.writer
	if o.clear {
		w.Write(csiClear)
	}

	for j := 0; j < g.Height(); j++ {
		for _, r := range g.Row(j) {
			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
			}
		}
	}
	w.WriteByte('\n')

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// WriteElapsed emits the human-readable timing line for a render
func (o *Output) WriteElapsed(label string, d time.Duration) error {
	fmt.Fprintf(o.writer, "%.6f s %s\n", d.Seconds(), label)
	if err := o.writer.Flush(); err != nil {
		return fmt.Errorf("write elapsed: %w", err)
	}
	return nil
}

// EmergencyReset restores cursor visibility, attributes and auto-wrap
// Best-effort from crash handlers; errors ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
