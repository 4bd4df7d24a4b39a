package noise

import (
	"math"
	"strconv"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"

	"github.com/aquilax/go-perlin"
)

// Config controls Perlin-noise seeding. Cells whose noise sample exceeds
// Threshold start alive, which yields blobby continents rather than static.
type Config struct {
	Seed      int64
	Scale     float64
	Threshold float64
	Alpha     float64
	Beta      float64
	Octaves   int32
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Seed: 42, Scale: 0.1, Threshold: 0, Alpha: 2, Beta: 2, Octaves: 3}
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
	if v, ok := cfg["threshold"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(parsed) {
			return c, core.InvalidOption("threshold", v, "a number")
		}
		c.Threshold = parsed
	}
	for key, dst := range map[string]*float64{"scale": &c.Scale, "alpha": &c.Alpha, "beta": &c.Beta} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || !(parsed > 0) || math.IsInf(parsed, 1) {
			return c, core.InvalidOption(key, v, "a positive number")
		}
		*dst = parsed
	}
	if v, ok := cfg["octaves"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil || parsed <= 0 {
			return c, core.InvalidOption("octaves", v, "a positive integer")
		}
		c.Octaves = int32(parsed)
	}
	return c, nil
}

// New returns a seeder that samples 2D Perlin noise at (col, row) * Scale.
func New(c Config) life.Seeder {
	p := perlin.NewPerlin(c.Alpha, c.Beta, c.Octaves, c.Seed)
	return life.SeederFunc(func(row, col uint32) bool {
		return p.Noise2D(float64(col)*c.Scale, float64(row)*c.Scale) > c.Threshold
	})
}

func init() {
	core.RegisterSeeder("noise", func(cfg map[string]string) (life.Seeder, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c), nil
	})
	core.DescribeSeeder("noise",
		core.Parameter{Key: "seed", Type: core.ParamTypeInt, Default: "42", Description: "noise seed"},
		core.Parameter{Key: "scale", Type: core.ParamTypeFloat, Default: "0.1", Description: "noise coordinates per cell"},
		core.Parameter{Key: "threshold", Type: core.ParamTypeFloat, Default: "0", Description: "cells above this value start alive"},
		core.Parameter{Key: "alpha", Type: core.ParamTypeFloat, Default: "2", Description: "weight falloff between octaves"},
		core.Parameter{Key: "beta", Type: core.ParamTypeFloat, Default: "2", Description: "frequency multiplier between octaves"},
		core.Parameter{Key: "octaves", Type: core.ParamTypeInt, Default: "3", Description: "number of noise octaves"},
	)
}
