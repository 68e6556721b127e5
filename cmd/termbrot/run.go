package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/termbrot/config"
	"github.com/lixenwraith/termbrot/display"
	"github.com/lixenwraith/termbrot/render"
	"github.com/lixenwraith/termbrot/terminal"
)

// result is one renderer's output and wall-clock cost
type result struct {
	name    string
	frame   *render.Frame
	elapsed time.Duration
}

// resolveSize applies config overrides on top of the queried grid
func resolveSize(cfg config.Config, queried terminal.Size) terminal.Size {
	s := queried
	if cfg.Width > 0 {
		s.Width = cfg.Width
	}
	if cfg.Height > 0 {
		s.Height = cfg.Height
	}
	return s
}

// runText renders each strategy to w, timing compute plus emit
func runText(cfg config.Config, w io.Writer) error {
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	size := resolveSize(cfg, terminal.SizeOr(os.Stdout, terminal.DefaultSize))
	log.Printf("size: %s", size)

	out := terminal.NewOutput(w, cfg.Clear)
	var results []result
	for _, s := range cfg.Strategies() {
		r := render.New(s, params, cfg.Workers)

		start := time.Now()
		frame := r.Render(size.Width, size.Height)
		if err := out.WriteFrame(frame); err != nil {
			return err
		}
		elapsed := time.Since(start)

		if err := out.WriteElapsed(r.Name(), elapsed); err != nil {
			return err
		}
		log.Printf("%s: %v", r.Name(), elapsed)
		results = append(results, result{name: r.Name(), frame: frame, elapsed: elapsed})
	}

	compareResults(results)
	return nil
}

// runScreen renders at the tcell screen size, shows the last frame until a key press,
// then prints timings after the screen is released
func runScreen(cfg config.Config) error {
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	screen, err := display.Open()
	if err != nil {
		return err
	}
	p := display.NewPresenter(screen)

	w, h := p.Size()
	size := resolveSize(cfg, terminal.Size{Width: w, Height: h})
	log.Printf("size: %s", size)

	var results []result
	for _, s := range cfg.Strategies() {
		r := render.New(s, params, cfg.Workers)
		start := time.Now()
		frame := r.Render(size.Width, size.Height)
		p.Draw(frame)
		results = append(results, result{name: r.Name(), frame: frame, elapsed: time.Since(start)})
	}

	p.WaitDismiss()
	screen.Fini()

	out := terminal.NewOutput(os.Stdout, false)
	for _, res := range results {
		if err := out.WriteElapsed(res.name, res.elapsed); err != nil {
			return err
		}
		log.Printf("%s: %v", res.name, res.elapsed)
	}
	compareResults(results)
	return nil
}

// compareResults logs whether every strategy produced the same grid
func compareResults(results []result) {
	for i := 1; i < len(results); i++ {
		base, other := results[0], results[i]
		if row, col, differs := base.frame.Diff(other.frame); differs {
			log.Printf("frames differ: %s vs %s at row %d col %d", base.name, other.name, row, col)
			continue
		}
		log.Printf("frames match: %s == %s", base.name, other.name)
	}
}
