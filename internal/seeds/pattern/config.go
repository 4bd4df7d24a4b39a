package pattern

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

// Config selects a pattern source and its placement.
type Config struct {
	Name   string
	File   string
	Cells  string
	Row    int
	Col    int
	Center bool

	// Width and Height are the target grid dimensions, used for centring.
	Width  int
	Height int
}

// DefaultConfig returns the standard configuration: a centred glider.
func DefaultConfig() Config {
	return Config{Name: "glider", Center: true}
}

// FromMap populates a Config from a string map. Setting "row" or "col"
// disables centring unless "center" is given explicitly. Values that do not
// parse are reported with core.ErrInvalidOption.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if v, ok := cfg["name"]; ok && v != "" {
		c.Name = v
	}
	if v, ok := cfg["file"]; ok {
		c.File = v
	}
	if v, ok := cfg["cells"]; ok {
		c.Cells = v
	}
	for key, dst := range map[string]*int{"row": &c.Row, "col": &c.Col} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, core.InvalidOption(key, v, "an integer")
		}
		*dst = parsed
		c.Center = false
	}
	if v, ok := cfg["center"]; ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c, core.InvalidOption("center", v, "true or false")
		}
		c.Center = parsed
	}
	for key, dst := range map[string]*int{"w": &c.Width, "h": &c.Height} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, core.InvalidOption(key, v, "a positive integer")
		}
		*dst = parsed
	}
	return c, nil
}

// Load resolves the configured pattern. Inline cells win over a file, and a
// file wins over a builtin name.
func (c Config) Load() (*Pattern, error) {
	switch {
	case c.Cells != "":
		return ParseString(c.Cells)
	case c.File != "":
		f, err := os.Open(c.File)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		defer f.Close()
		p, err := Parse(f)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", c.File, err)
		}
		return p, nil
	}
	p, ok := Builtin(c.Name)
	if !ok {
		return nil, fmt.Errorf("pattern: unknown builtin %q (have %v)", c.Name, Names())
	}
	return p, nil
}

// New builds a seeder from c.
func New(c Config) (life.Seeder, error) {
	p, err := c.Load()
	if err != nil {
		return nil, err
	}
	row, col := c.Row, c.Col
	if c.Center {
		if c.Width <= 0 || c.Height <= 0 {
			return nil, errors.New("pattern: centring needs the grid size")
		}
		row, col = p.Centered(c.Width, c.Height)
	}
	return p.Seeder(row, col), nil
}

func init() {
	core.RegisterSeeder("pattern", func(cfg map[string]string) (life.Seeder, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
	core.DescribeSeeder("pattern",
		core.Parameter{Key: "name", Type: core.ParamTypeString, Default: "glider", Description: "built-in pattern"},
		core.Parameter{Key: "file", Type: core.ParamTypeString, Description: "plaintext .cells file"},
		core.Parameter{Key: "cells", Type: core.ParamTypeString, Description: "inline plaintext cells"},
		core.Parameter{Key: "row", Type: core.ParamTypeInt, Default: "0", Description: "top offset; disables centring"},
		core.Parameter{Key: "col", Type: core.ParamTypeInt, Default: "0", Description: "left offset; disables centring"},
		core.Parameter{Key: "center", Type: core.ParamTypeBool, Default: "true", Description: "centre the pattern on the grid"},
	)
}
