package core

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"lifegrid/pkg/life"
)

// ErrUnknownSeeder is returned when no seeding policy is registered under a name.
var ErrUnknownSeeder = errors.New("unknown seeder")

// Size describes the dimensions of a grid in cells.
type Size struct {
	W uint32
	H uint32
}

// Automaton is the contract the render and interaction loops drive.
// Each frame calls Tick once and then reads RawCellBuffer.
type Automaton interface {
	Width() uint32
	Height() uint32
	CellState(row, col uint32) (bool, error)
	ToggleCell(row, col uint32) error
	Tick()
	RawCellBuffer() life.View
	Generation() uint64
	Population() int
}

var _ Automaton = (*life.Grid)(nil)

// SeederFactory constructs an initial-state policy from an optional
// configuration map.
type SeederFactory func(cfg map[string]string) (life.Seeder, error)

var seeders = map[string]SeederFactory{
	"dead": func(map[string]string) (life.Seeder, error) { return life.Dead, nil },
}

// RegisterSeeder adds a seeding policy under the provided name.
func RegisterSeeder(name string, f SeederFactory) {
	if name == "" || f == nil {
		return
	}
	seeders[name] = f
}

// Seeders exposes the registry of available seeding policies.
func Seeders() map[string]SeederFactory {
	return seeders
}

// SeederNames lists registered policies in lexical order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSeeder builds the named seeding policy.
func NewSeeder(name string, cfg map[string]string) (life.Seeder, error) {
	f, ok := seeders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSeeder, name, SeederNames())
	}
	return f(cfg)
}

// NewGrid creates a grid of the given size seeded by the named policy. The
// grid dimensions are passed to the factory as the "w" and "h" keys so
// policies can position themselves; cfg itself is not modified.
func NewGrid(size Size, seeder string, cfg map[string]string) (*life.Grid, error) {
	merged := make(map[string]string, len(cfg)+2)
	for k, v := range cfg {
		merged[k] = v
	}
	merged["w"] = strconv.FormatUint(uint64(size.W), 10)
	merged["h"] = strconv.FormatUint(uint64(size.H), 10)

	s, err := NewSeeder(seeder, merged)
	if err != nil {
		return nil, err
	}
	return life.New(size.W, size.H, life.WithSeeder(s))
}
