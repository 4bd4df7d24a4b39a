package core

import (
	"strconv"

	"lifegrid/pkg/life"
)

// Spawner recreates a loop's grid. Loops never reset a grid in place; they
// replace it with a freshly constructed one.
type Spawner struct {
	Size    Size
	Seeder  string
	Options map[string]string
}

// Spawn builds a new grid from the spawner's policy.
func (s Spawner) Spawn() (*life.Grid, error) {
	return NewGrid(s.Size, s.Seeder, s.Options)
}

// Reseeded returns a copy whose "seed" option is replaced.
func (s Spawner) Reseeded(seed int64) Spawner {
	opts := make(map[string]string, len(s.Options)+1)
	for k, v := range s.Options {
		opts[k] = v
	}
	opts["seed"] = strconv.FormatInt(seed, 10)
	s.Options = opts
	return s
}

// Cleared returns a copy that spawns an all-dead grid.
func (s Spawner) Cleared() Spawner {
	return Spawner{Size: s.Size, Seeder: "dead"}
}
