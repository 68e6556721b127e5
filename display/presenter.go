// Package display presents a rendered frame on a full tcell screen
package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Grid is a read-only row-major glyph grid
type Grid interface {
	Width() int
	Height() int
	Row(j int) []rune
}

// Presenter draws frames onto a tcell.Screen
type Presenter struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewPresenter wraps an initialized screen
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Size returns the screen's character grid
func (p *Presenter) Size() (width, height int) {
	return p.screen.Size()
}

// Draw clears the screen, copies the grid cell by cell and shows it
// Cells beyond the screen bounds are dropped
func (p *Presenter) Draw(g Grid) {
	p.screen.Clear()
	sw, sh := p.screen.Size()
	for y := 0; y < g.Height() && y < sh; y++ {
		row := g.Row(y)
		for x := 0; x < len(row) && x < sw; x++ {
			p.screen.SetContent(x, y, row[x], nil, p.style)
		}
	}
	p.screen.Show()
}

// WaitDismiss blocks until a key is pressed or the screen is finalized
func (p *Presenter) WaitDismiss() {
	for {
		switch p.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

// Open creates and initializes the terminal screen
// Caller must Fini the returned screen
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}
