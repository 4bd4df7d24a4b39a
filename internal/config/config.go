// Package config holds the runtime configuration shared by every front end.
// Values come from defaults, an optional YAML file and command-line flags, in
// that order of precedence (flags win).
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"lifegrid/internal/core"
	"lifegrid/internal/render"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
	DefaultCellSize       = 5
	DefaultTPS            = 30
	DefaultSeeder         = "random"
	DefaultLogLevel       = "info"
)

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Config represents the parameters for a run.
type Config struct {
	Viewport    Viewport `yaml:"viewport"`
	CellSize    int      `yaml:"cell_size"`
	Width       uint32   `yaml:"width,omitempty"`
	Height      uint32   `yaml:"height,omitempty"`
	TPS         int      `yaml:"tps"`
	Seeder      Seeder   `yaml:"seeder"`
	Colors      Colors   `yaml:"colors"`
	DrawOnHover bool     `yaml:"draw_on_hover"`
	GridLines   bool     `yaml:"grid_lines"`
	LogLevel    string   `yaml:"log_level"`
}

// Viewport is the drawable area in pixels the grid is sized from.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Seeder names the initial-state policy and its options.
type Seeder struct {
	Name    string            `yaml:"name"`
	Options map[string]string `yaml:"options,omitempty"`
}

// Colors are "#RRGGBB" strings.
type Colors struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
	Grid  string `yaml:"grid"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Viewport: Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		CellSize: DefaultCellSize,
		TPS:      DefaultTPS,
		Seeder:   Seeder{Name: DefaultSeeder, Options: map[string]string{}},
		Colors:   Colors{Alive: "#83A598", Dead: "#282828", Grid: "#CCCCCC"},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Seeder.Options == nil {
		cfg.Seeder.Options = map[string]string{}
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GridSize returns the grid dimensions: the explicit Width/Height when set,
// otherwise the viewport divided by the cell size, rounded down.
func (c *Config) GridSize() core.Size {
	s := core.Size{W: c.Width, H: c.Height}
	if c.CellSize <= 0 {
		return s
	}
	if s.W == 0 && c.Viewport.Width > 0 {
		s.W = uint32(c.Viewport.Width / c.CellSize)
	}
	if s.H == 0 && c.Viewport.Height > 0 {
		s.H = uint32(c.Viewport.Height / c.CellSize)
	}
	return s
}

// Palette converts the configured colours.
func (c *Config) Palette() render.Palette {
	return render.PaletteFromHex(c.Colors.Alive, c.Colors.Dead, c.Colors.Grid)
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.CellSize))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if s := c.GridSize(); s.W == 0 || s.H == 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d is empty; viewport %dx%d is smaller than one %dpx cell",
			s.W, s.H, c.Viewport.Width, c.Viewport.Height, c.CellSize))
	}
	if _, ok := core.Seeders()[c.Seeder.Name]; !ok {
		errs = append(errs, fmt.Errorf("%w %q (have %v)", core.ErrUnknownSeeder, c.Seeder.Name, core.SeederNames()))
	} else if unknown := core.UnknownOptions(c.Seeder.Name, c.Seeder.Options); len(unknown) > 0 {
		errs = append(errs, fmt.Errorf("seeder %q does not accept options %v", c.Seeder.Name, unknown))
	}
	for name, v := range map[string]string{"alive": c.Colors.Alive, "dead": c.Colors.Dead, "grid": c.Colors.Grid} {
		if !hexColor.MatchString(v) {
			errs = append(errs, fmt.Errorf("colors.%s: %q is not a hex colour", name, v))
		}
	}
	return errors.Join(errs...)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Viewport.Width, "viewport-width", c.Viewport.Width, "viewport width in pixels")
	fs.IntVar(&c.Viewport.Height, "viewport-height", c.Viewport.Height, "viewport height in pixels")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.Uint32Var(&c.Width, "width", c.Width, "grid columns (overrides viewport sizing)")
	fs.Uint32Var(&c.Height, "height", c.Height, "grid rows (overrides viewport sizing)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.StringVar(&c.Seeder.Name, "seeder", c.Seeder.Name, "initial state policy")
	fs.StringToStringVar(&c.Seeder.Options, "seed-opt", c.Seeder.Options, "seeder option key=value (repeatable)")
	fs.BoolVar(&c.DrawOnHover, "draw-on-hover", c.DrawOnHover, "toggle cells on pointer movement without a button held")
	fs.BoolVar(&c.GridLines, "grid-lines", c.GridLines, "draw grid lines in snapshots")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Overlay copies into c every value whose flag was set explicitly on fs.
// src must be the Config that was bound to fs.
func (c *Config) Overlay(src *Config, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "viewport-width":
			c.Viewport.Width = src.Viewport.Width
		case "viewport-height":
			c.Viewport.Height = src.Viewport.Height
		case "cell-size":
			c.CellSize = src.CellSize
		case "width":
			c.Width = src.Width
		case "height":
			c.Height = src.Height
		case "tps":
			c.TPS = src.TPS
		case "seeder":
			c.Seeder.Name = src.Seeder.Name
		case "seed-opt":
			if c.Seeder.Options == nil {
				c.Seeder.Options = map[string]string{}
			}
			for k, v := range src.Seeder.Options {
				c.Seeder.Options[k] = v
			}
		case "draw-on-hover":
			c.DrawOnHover = src.DrawOnHover
		case "grid-lines":
			c.GridLines = src.GridLines
		case "log-level":
			c.LogLevel = src.LogLevel
		}
	})
}
