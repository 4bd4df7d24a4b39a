package life

// Seeder decides the initial state of each cell. New calls Seed exactly once
// per cell in row-major order, so a seeder driven by a seeded RNG produces
// the same grid every time.
type Seeder interface {
	Seed(row, col uint32) bool
}

// SeederFunc adapts a function to the Seeder interface.
type SeederFunc func(row, col uint32) bool

// Seed calls f(row, col).
func (f SeederFunc) Seed(row, col uint32) bool { return f(row, col) }

// Dead leaves every cell dead. It is the default policy.
var Dead Seeder = SeederFunc(func(uint32, uint32) bool { return false })

// Coord addresses a single cell.
type Coord struct {
	Row, Col uint32
}

// Points seeds exactly the listed cells as alive. Coordinates outside the
// grid are never consulted and so are ignored.
func Points(coords ...Coord) Seeder {
	alive := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		alive[c] = struct{}{}
	}
	return SeederFunc(func(row, col uint32) bool {
		_, ok := alive[Coord{Row: row, Col: col}]
		return ok
	})
}

// Option configures New.
type Option func(*options)

type options struct {
	seeder Seeder
}

// WithSeeder sets the initial-state policy.
func WithSeeder(s Seeder) Option {
	return func(o *options) { o.seeder = s }
}
