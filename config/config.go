// Package config resolves the run configuration from defaults, a TOML file and flags
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/termbrot/fractal"
	"github.com/lixenwraith/termbrot/palette"
	"github.com/lixenwraith/termbrot/render"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// StrategyBoth runs the parallel renderer, then the sequential one, on identical input
const StrategyBoth = "both"

// Display targets
const (
	DisplayText   = "text"
	DisplayScreen = "screen"
)

// Region mirrors fractal.Region with TOML keys
type Region struct {
	Xmin float64 `toml:"xmin"`
	Xmax float64 `toml:"xmax"`
	Ymin float64 `toml:"ymin"`
	Ymax float64 `toml:"ymax"`
}

// Config is the resolved run configuration
type Config struct {
	Region   Region `toml:"region"`
	Landmark string `toml:"landmark"`
	MaxIter  int    `toml:"max_iter"`
	Workers  int    `toml:"workers"`
	Palette  string `toml:"palette"`
	Strategy string `toml:"strategy"`
	Display  string `toml:"display"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Clear    bool   `toml:"clear"`
}

// Default returns the stock run: main cardioid view, 6000 iterations, both strategies
func Default() Config {
	return Config{
		Region:   fromFractal(fractal.MainCardioid),
		MaxIter:  6000,
		Palette:  palette.DefaultGlyphs,
		Strategy: StrategyBoth,
		Display:  DisplayText,
	}
}

// Load decodes a TOML file over the defaults
// Unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.decode(string(data)); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.Landmark != "" {
		if _, ok := fractal.Landmarks[c.Landmark]; !ok {
			return fmt.Errorf("%w: landmark %q, want one of %s", ErrInvalid, c.Landmark, strings.Join(fractal.LandmarkNames(), ", "))
		}
	}
	if !c.View().Valid() {
		return fmt.Errorf("%w: region %v must satisfy xmin < xmax and ymin < ymax", ErrInvalid, c.View())
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("%w: max_iter %d must be positive", ErrInvalid, c.MaxIter)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d must be >= 0", ErrInvalid, c.Workers)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: size %dx%d must be >= 0", ErrInvalid, c.Width, c.Height)
	}
	if _, err := palette.New(c.Palette); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Strategy {
	case StrategyBoth, string(render.StrategyParallel), string(render.StrategySequential):
	default:
		return fmt.Errorf("%w: strategy %q", ErrInvalid, c.Strategy)
	}
	switch c.Display {
	case DisplayText, DisplayScreen:
	default:
		return fmt.Errorf("%w: display %q", ErrInvalid, c.Display)
	}
	return nil
}

// View returns the effective region, a landmark overriding the explicit bounds
func (c Config) View() fractal.Region {
	if r, ok := fractal.Landmarks[c.Landmark]; ok {
		return r
	}
	return fractal.Region{
		Xmin: c.Region.Xmin,
		Xmax: c.Region.Xmax,
		Ymin: c.Region.Ymin,
		Ymax: c.Region.Ymax,
	}
}

// Strategies returns the renderers to run, in order
func (c Config) Strategies() []render.Strategy {
	switch c.Strategy {
	case string(render.StrategyParallel):
		return []render.Strategy{render.StrategyParallel}
	case string(render.StrategySequential):
		return []render.Strategy{render.StrategySequential}
	}
	return []render.Strategy{render.StrategyParallel, render.StrategySequential}
}

// Params builds the render input record; call after Validate
func (c Config) Params() (render.Params, error) {
	pal, err := palette.New(c.Palette)
	if err != nil {
		return render.Params{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return render.Params{
		Region:  c.View(),
		MaxIter: c.MaxIter,
		Palette: pal,
	}, nil
}

func fromFractal(r fractal.Region) Region {
	return Region{Xmin: r.Xmin, Xmax: r.Xmax, Ymin: r.Ymin, Ymax: r.Ymax}
}
