package random

import (
	"strconv"

	"lifegrid/internal/core"
	pcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// Config holds parameters for uniform random seeding.
type Config struct {
	Seed    int64
	Density float64
}

// DefaultConfig returns the default configuration: a fair coin per cell.
func DefaultConfig() Config {
	return Config{Seed: 42, Density: 0.5}
}

// FromMap populates a Config from a string map. Missing keys keep their
// defaults; values that do not parse or are out of range are reported with
// core.ErrInvalidOption.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, core.InvalidOption("seed", v, "an integer")
		}
		c.Seed = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || !(parsed >= 0 && parsed <= 1) {
			return c, core.InvalidOption("density", v, "a number in [0, 1]")
		}
		c.Density = parsed
	}
	return c, nil
}

// New returns a seeder that marks each cell alive with probability
// c.Density. Each seeder owns its own RNG stream, so two seeders built from
// the same Config produce identical grids.
func New(c Config) life.Seeder {
	rng := pcore.NewRNG(c.Seed)
	return life.SeederFunc(func(uint32, uint32) bool {
		return rng.Chance(c.Density)
	})
}

func init() {
	core.RegisterSeeder("random", func(cfg map[string]string) (life.Seeder, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c), nil
	})
	core.DescribeSeeder("random",
		core.Parameter{Key: "seed", Type: core.ParamTypeInt, Default: "42", Description: "RNG seed"},
		core.Parameter{Key: "density", Type: core.ParamTypeFloat, Default: "0.5", Description: "probability that a cell starts alive"},
	)
}
