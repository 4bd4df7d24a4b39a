package life

import (
	"errors"
	"slices"
	"testing"
)

func mustNew(t *testing.T, w, h uint32, opts ...Option) *Grid {
	t.Helper()
	g, err := New(w, h, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return g
}

func expectAlive(t *testing.T, g *Grid, want map[Coord]bool, stage string) {
	t.Helper()
	for row := uint32(0); row < g.Height(); row++ {
		for col := uint32(0); col < g.Width(); col++ {
			alive, err := g.CellState(row, col)
			if err != nil {
				t.Fatalf("%s: CellState(%d,%d): %v", stage, row, col, err)
			}
			if alive != want[Coord{row, col}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, row, col, alive, want[Coord{row, col}])
			}
		}
	}
}

func TestNewDimensions(t *testing.T) {
	tests := []struct {
		w, h  uint32
		bytes int
	}{
		{1, 1, 1},
		{4, 4, 2},
		{3, 3, 2},
		{8, 1, 1},
		{17, 5, 11},
		{64, 48, 384},
	}

	for _, tt := range tests {
		g := mustNew(t, tt.w, tt.h)
		if g.Width() != tt.w || g.Height() != tt.h {
			t.Fatalf("got %dx%d, expected %dx%d", g.Width(), g.Height(), tt.w, tt.h)
		}
		if n := g.RawCellBuffer().Len(); n != tt.bytes {
			t.Errorf("%dx%d: buffer len %d, expected %d", tt.w, tt.h, n, tt.bytes)
		}

		live, dead := 0, 0
		for row := uint32(0); row < tt.h; row++ {
			for col := uint32(0); col < tt.w; col++ {
				alive, err := g.CellState(row, col)
				if err != nil {
					t.Fatalf("CellState(%d,%d): %v", row, col, err)
				}
				if alive {
					live++
				} else {
					dead++
				}
			}
		}
		if live+dead != int(tt.w*tt.h) {
			t.Errorf("%dx%d: counted %d cells, expected %d", tt.w, tt.h, live+dead, tt.w*tt.h)
		}
		if live != 0 || g.Population() != 0 {
			t.Errorf("%dx%d: default grid should start dead, got %d live", tt.w, tt.h, live)
		}
	}
}

func TestNewRejectsZeroDimension(t *testing.T) {
	for _, dims := range [][2]uint32{{0, 4}, {4, 0}, {0, 0}} {
		g, err := New(dims[0], dims[1])
		if g != nil {
			t.Fatalf("New(%d, %d) returned a grid", dims[0], dims[1])
		}
		if !errors.Is(err, ErrZeroDimension) {
			t.Fatalf("New(%d, %d) error = %v, expected ErrZeroDimension", dims[0], dims[1], err)
		}
		var cerr *ConstructionError
		if !errors.As(err, &cerr) || cerr.Width != dims[0] || cerr.Height != dims[1] {
			t.Fatalf("expected *ConstructionError for %v, got %#v", dims, err)
		}
	}
}

func TestNewRejectsTooLarge(t *testing.T) {
	g, err := New(1<<16, 1<<16)
	if g != nil || !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got grid=%v err=%v", g != nil, err)
	}
}

func TestCellStateIdempotent(t *testing.T) {
	g := mustNew(t, 6, 5, WithSeeder(SeederFunc(func(row, col uint32) bool { return (row+col)%3 == 0 })))
	for row := uint32(0); row < 5; row++ {
		for col := uint32(0); col < 6; col++ {
			a, _ := g.CellState(row, col)
			b, _ := g.CellState(row, col)
			if a != b {
				t.Fatalf("cell (%d,%d) read %v then %v", row, col, a, b)
			}
		}
	}
}

func TestToggleInvolution(t *testing.T) {
	g := mustNew(t, 4, 4, WithSeeder(Points(Coord{1, 2})))
	for _, c := range []Coord{{0, 0}, {1, 2}, {3, 3}} {
		before, _ := g.CellState(c.Row, c.Col)
		if err := g.ToggleCell(c.Row, c.Col); err != nil {
			t.Fatalf("toggle (%d,%d): %v", c.Row, c.Col, err)
		}
		mid, _ := g.CellState(c.Row, c.Col)
		if mid == before {
			t.Fatalf("cell (%d,%d) unchanged after one toggle", c.Row, c.Col)
		}
		if err := g.ToggleCell(c.Row, c.Col); err != nil {
			t.Fatalf("toggle (%d,%d): %v", c.Row, c.Col, err)
		}
		after, _ := g.CellState(c.Row, c.Col)
		if after != before {
			t.Fatalf("cell (%d,%d) alive=%v after two toggles, expected %v", c.Row, c.Col, after, before)
		}
	}
}

func TestOutOfRangeCoordinates(t *testing.T) {
	g := mustNew(t, 4, 4)
	before := g.RawCellBuffer().Bytes()

	for _, c := range []Coord{{4, 0}, {0, 4}, {7, 7}, {^uint32(0), 0}} {
		if _, err := g.CellState(c.Row, c.Col); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("CellState(%d,%d) error = %v, expected ErrOutOfRange", c.Row, c.Col, err)
		}
		err := g.ToggleCell(c.Row, c.Col)
		var cerr *CoordinateError
		if !errors.As(err, &cerr) {
			t.Fatalf("ToggleCell(%d,%d) error = %v, expected *CoordinateError", c.Row, c.Col, err)
		}
		if cerr.Row != c.Row || cerr.Col != c.Col || cerr.Width != 4 || cerr.Height != 4 {
			t.Fatalf("unexpected error fields %+v", cerr)
		}
	}

	// (0,4) would alias (1,0) if the column were not checked.
	if !slices.Equal(before, g.RawCellBuffer().Bytes()) {
		t.Fatal("rejected toggles modified the grid")
	}
}

func TestSingleCellDies(t *testing.T) {
	g := mustNew(t, 5, 5, WithSeeder(Points(Coord{2, 2})))
	g.Tick()
	expectAlive(t, g, nil, "isolated cell")

	g = mustNew(t, 5, 5, WithSeeder(Points(Coord{2, 2}, Coord{2, 3})))
	g.Tick()
	expectAlive(t, g, nil, "pair")
}

func TestBlockStillLife(t *testing.T) {
	block := map[Coord]bool{{1, 1}: true, {1, 2}: true, {2, 1}: true, {2, 2}: true}
	g := mustNew(t, 4, 4, WithSeeder(Points(Coord{1, 1}, Coord{1, 2}, Coord{2, 1}, Coord{2, 2})))
	for i := 0; i < 10; i++ {
		g.Tick()
		expectAlive(t, g, block, "block")
	}
	if g.Generation() != 10 {
		t.Fatalf("generation %d, expected 10", g.Generation())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := map[Coord]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	horizontal := map[Coord]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}

	g := mustNew(t, 5, 5, WithSeeder(Points(Coord{1, 2}, Coord{2, 2}, Coord{3, 2})))

	g.Tick()
	expectAlive(t, g, horizontal, "first step")

	g.Tick()
	expectAlive(t, g, vertical, "second step")
}

func TestNoWraparound(t *testing.T) {
	// A vertical blinker on the left edge loses the half of its successor
	// that would land in column -1, and nothing appears on the right edge.
	g := mustNew(t, 5, 5, WithSeeder(Points(Coord{1, 0}, Coord{2, 0}, Coord{3, 0})))
	g.Tick()
	expectAlive(t, g, map[Coord]bool{{2, 0}: true, {2, 1}: true}, "edge blinker")
}

func TestEdgeNeighborCounts(t *testing.T) {
	full := SeederFunc(func(uint32, uint32) bool { return true })
	g := mustNew(t, 3, 3, WithSeeder(full))

	want := [3][3]int{
		{3, 5, 3},
		{5, 8, 5},
		{3, 5, 3},
	}
	for row := uint32(0); row < 3; row++ {
		for col := uint32(0); col < 3; col++ {
			if n := g.liveNeighbors(row, col); n != want[row][col] {
				t.Fatalf("cell (%d,%d) has %d live neighbours, expected %d", row, col, n, want[row][col])
			}
		}
	}

	// Corners keep 3 and survive; edges (5) and centre (8) die.
	g.Tick()
	expectAlive(t, g, map[Coord]bool{{0, 0}: true, {0, 2}: true, {2, 0}: true, {2, 2}: true}, "full 3x3")
}

func TestTickDeterministic(t *testing.T) {
	pattern := SeederFunc(func(row, col uint32) bool { return (row*7+col*3)%5 < 2 })
	a := mustNew(t, 23, 17, WithSeeder(pattern))
	b := mustNew(t, 23, 17, WithSeeder(pattern))

	for i := 0; i < 8; i++ {
		a.Tick()
		b.Tick()
		if !slices.Equal(a.RawCellBuffer().Bytes(), b.RawCellBuffer().Bytes()) {
			t.Fatalf("grids diverged at generation %d", i+1)
		}
	}
}

func TestPaddingBitsStayClear(t *testing.T) {
	full := SeederFunc(func(uint32, uint32) bool { return true })
	g := mustNew(t, 3, 3, WithSeeder(full))
	for i := 0; i < 4; i++ {
		if b := g.RawCellBuffer().Byte(1); b&^0x01 != 0 {
			t.Fatalf("generation %d: padding bits set in last byte %08b", g.Generation(), b)
		}
		g.Tick()
	}
}

func TestBitLayout(t *testing.T) {
	g := mustNew(t, 4, 4)
	if err := g.ToggleCell(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := g.ToggleCell(1, 1); err != nil { // n = 5
		t.Fatal(err)
	}
	if err := g.ToggleCell(3, 3); err != nil { // n = 15
		t.Fatal(err)
	}

	v := g.RawCellBuffer()
	if v.Byte(0) != 0x21 {
		t.Fatalf("byte 0 = %08b, expected 00100001", v.Byte(0))
	}
	if v.Byte(1) != 0x80 {
		t.Fatalf("byte 1 = %08b, expected 10000000", v.Byte(1))
	}
	for n := 0; n < 16; n++ {
		row, col := uint32(n/4), uint32(n%4)
		alive, _ := g.CellState(row, col)
		if v.Alive(n) != alive {
			t.Fatalf("bit %d disagrees with CellState(%d,%d)", n, row, col)
		}
	}
	if g.Population() != 3 {
		t.Fatalf("population %d, expected 3", g.Population())
	}
}

func TestString(t *testing.T) {
	g := mustNew(t, 3, 2, WithSeeder(Points(Coord{0, 1}, Coord{1, 2})))
	want := "◻◼◻\n◻◻◼\n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}
}
