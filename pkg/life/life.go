package life

import "math/bits"

// MaxCells is the largest width*height accepted by New.
const MaxCells = 1 << 31

// Grid implements Conway's Game of Life on a bounded, bit-packed board.
// Cells beyond the edges never count as neighbours; there is no wraparound.
//
// A Grid is not safe for concurrent use. Tick, ToggleCell and reads through a
// View must be serialized by the owner.
type Grid struct {
	w, h  uint32
	cur   []byte
	nxt   []byte
	gen   uint64
	epoch uint64
}

// New returns a width x height grid. Every cell starts dead unless a Seeder
// is supplied with WithSeeder.
func New(width, height uint32, opts ...Option) (*Grid, error) {
	if width == 0 || height == 0 {
		return nil, &ConstructionError{Width: width, Height: height, Err: ErrZeroDimension}
	}
	total := uint64(width) * uint64(height)
	if total > MaxCells {
		return nil, &ConstructionError{Width: width, Height: height, Err: ErrTooLarge}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := byteLen(total)
	g := &Grid{w: width, h: height, cur: make([]byte, n), nxt: make([]byte, n)}
	if o.seeder != nil {
		g.seed(o.seeder)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() uint32 { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() uint32 { return g.h }

// Generation returns how many ticks have been applied.
func (g *Grid) Generation() uint64 { return g.gen }

// CellState reports whether the cell at (row, col) is alive.
func (g *Grid) CellState(row, col uint32) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, err
	}
	return get(g.cur, g.index(row, col)), nil
}

// ToggleCell flips the cell at (row, col). Out-of-range coordinates are
// rejected with a *CoordinateError and leave the grid untouched.
func (g *Grid) ToggleCell(row, col uint32) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	flip(g.cur, g.index(row, col))
	g.epoch++
	return nil
}

// Tick advances the grid by one generation. Every cell is evaluated against
// the pre-tick state; the result is written to the spare buffer and swapped in.
func (g *Grid) Tick() {
	w, h := g.w, g.h
	clear(g.nxt)
	for row := uint32(0); row < h; row++ {
		for col := uint32(0); col < w; col++ {
			idx := g.index(row, col)
			if nextState(get(g.cur, idx), g.liveNeighbors(row, col)) {
				set(g.nxt, idx)
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
	g.epoch++
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, b := range g.cur {
		n += bits.OnesCount8(b)
	}
	return n
}

func (g *Grid) index(row, col uint32) int { return int(row)*int(g.w) + int(col) }

func (g *Grid) checkBounds(row, col uint32) error {
	if row >= g.h || col >= g.w {
		return &CoordinateError{Row: row, Col: col, Width: g.w, Height: g.h}
	}
	return nil
}

// liveNeighbors counts live cells among the in-bounds neighbours of
// (row, col). Corners have at most 3 neighbours, edges at most 5.
func (g *Grid) liveNeighbors(row, col uint32) int {
	rowLo, rowHi := row, row
	if row > 0 {
		rowLo = row - 1
	}
	if row+1 < g.h {
		rowHi = row + 1
	}
	colLo, colHi := col, col
	if col > 0 {
		colLo = col - 1
	}
	if col+1 < g.w {
		colHi = col + 1
	}

	count := 0
	for r := rowLo; r <= rowHi; r++ {
		for c := colLo; c <= colHi; c++ {
			if r == row && c == col {
				continue
			}
			if get(g.cur, g.index(r, c)) {
				count++
			}
		}
	}
	return count
}

func (g *Grid) seed(s Seeder) {
	for row := uint32(0); row < g.h; row++ {
		for col := uint32(0); col < g.w; col++ {
			if s.Seed(row, col) {
				set(g.cur, g.index(row, col))
			}
		}
	}
}

// nextState applies the B3/S23 rule.
func nextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
