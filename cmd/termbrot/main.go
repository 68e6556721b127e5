package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termbrot/config"
	"github.com/lixenwraith/termbrot/terminal"
)

var (
	configPath  = flag.String("config", "", "TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/termbrot.log")
	xminFlag    = flag.Float64("xmin", 0, "View left bound")
	xmaxFlag    = flag.Float64("xmax", 0, "View right bound")
	yminFlag    = flag.Float64("ymin", 0, "View bottom bound")
	ymaxFlag    = flag.Float64("ymax", 0, "View top bound")
	landmarkArg = flag.String("landmark", "", "Named view region (overrides bounds)")
	iterFlag    = flag.Int("iter", 0, "Iteration cap")
	workersFlag = flag.Int("workers", 0, "Parallel worker cap, 0 = GOMAXPROCS")
	paletteFlag = flag.String("palette", "", "Glyph ramp, darkest first")
	strategyArg = flag.String("strategy", "", "Renderer: both, parallel, sequential")
	displayArg  = flag.String("display", "", "Output: text, screen")
	widthFlag   = flag.Int("width", 0, "Columns, 0 = terminal width")
	heightFlag  = flag.Int("height", 0, "Rows, 0 = terminal height")
	clearFlag   = flag.Bool("clear", false, "Clear the terminal before each frame")
)

func main() {
	// Panic Recovery: leave the terminal usable even if a render crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERMBROT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("run: %v", err)
		fmt.Fprintf(os.Stderr, "termbrot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.Printf("config: view=%v iter=%d workers=%d strategy=%s display=%s",
		cfg.View(), cfg.MaxIter, cfg.Workers, cfg.Strategy, cfg.Display)

	if cfg.Display == config.DisplayScreen {
		return runScreen(cfg)
	}
	return runText(cfg, os.Stdout)
}

// loadConfig layers defaults, the optional file and explicitly set flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	applyFlags(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFlags overrides only the flags present on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "xmin":
			cfg.Region.Xmin = *xminFlag
		case "xmax":
			cfg.Region.Xmax = *xmaxFlag
		case "ymin":
			cfg.Region.Ymin = *yminFlag
		case "ymax":
			cfg.Region.Ymax = *ymaxFlag
		case "landmark":
			cfg.Landmark = *landmarkArg
		case "iter":
			cfg.MaxIter = *iterFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "palette":
			cfg.Palette = *paletteFlag
		case "strategy":
			cfg.Strategy = *strategyArg
		case "display":
			cfg.Display = *displayArg
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "clear":
			cfg.Clear = *clearFlag
		}
	})
}
