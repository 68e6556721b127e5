package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/termbrot/fractal"
	"github.com/lixenwraith/termbrot/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termbrot.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.View() != fractal.MainCardioid {
		t.Errorf("Expected main cardioid view, got %v", cfg.View())
	}
	if cfg.MaxIter != 6000 {
		t.Errorf("Expected 6000 iterations, got %d", cfg.MaxIter)
	}
	got := cfg.Strategies()
	if len(got) != 2 || got[0] != render.StrategyParallel || got[1] != render.StrategySequential {
		t.Errorf("Expected parallel then sequential, got %v", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
max_iter = 250
workers = 3
strategy = "sequential"
palette = " .:-=+*#%@"

[region]
xmin = -2.0
xmax = 1.0
ymin = -1.0
ymax = 1.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	want := fractal.Region{Xmin: -2, Xmax: 1, Ymin: -1, Ymax: 1}
	if cfg.View() != want {
		t.Errorf("View() = %v, want %v", cfg.View(), want)
	}
	if cfg.MaxIter != 250 || cfg.Workers != 3 {
		t.Errorf("Expected max_iter 250 workers 3, got %d %d", cfg.MaxIter, cfg.Workers)
	}
	if s := cfg.Strategies(); len(s) != 1 || s[0] != render.StrategySequential {
		t.Errorf("Expected sequential only, got %v", s)
	}
	// Untouched keys keep defaults
	if cfg.Display != DisplayText {
		t.Errorf("Expected default display, got %q", cfg.Display)
	}

	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.Palette.Len() != 10 || p.MaxIter != 250 || p.Region != want {
		t.Errorf("Unexpected params %+v", p)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "max_iter = 10\nzoom = 2.0\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown key, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "max_iter = = 3\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestLandmarkOverridesRegion(t *testing.T) {
	cfg := Default()
	cfg.Landmark = "seahorse-valley"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.View() != fractal.SeahorseValley {
		t.Errorf("Expected seahorse valley, got %v", cfg.View())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Degenerate region", func(c *Config) { c.Region.Xmax = c.Region.Xmin }},
		{"Inverted region", func(c *Config) { c.Region.Ymin, c.Region.Ymax = 1, -1 }},
		{"Zero iterations", func(c *Config) { c.MaxIter = 0 }},
		{"Negative workers", func(c *Config) { c.Workers = -1 }},
		{"Negative width", func(c *Config) { c.Width = -80 }},
		{"Empty palette", func(c *Config) { c.Palette = "" }},
		{"Unknown strategy", func(c *Config) { c.Strategy = "gpu" }},
		{"Unknown display", func(c *Config) { c.Display = "sixel" }},
		{"Unknown landmark", func(c *Config) { c.Landmark = "atlantis" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}
