package input

import (
	"testing"

	"lifegrid/pkg/life"
)

func TestResolve(t *testing.T) {
	m := Mapper{CellSize: 5, Rows: 4, Cols: 6}
	tests := []struct {
		x, y     float64
		row, col uint32
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{4.9, 4.9, 0, 0, true},
		{5, 0, 0, 1, true},
		{29.9, 19.9, 3, 5, true},
		{30, 0, 0, 0, false},
		{0, 20, 0, 0, false},
		{-0.1, 3, 0, 0, false},
		{3, -7, 0, 0, false},
	}
	for _, tt := range tests {
		row, col, ok := m.Resolve(tt.x, tt.y)
		if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
			t.Errorf("Resolve(%v, %v) = (%d, %d, %v), expected (%d, %d, %v)", tt.x, tt.y, row, col, ok, tt.row, tt.col, tt.ok)
		}
	}
}

func TestResolveScaleTransform(t *testing.T) {
	// Surface drawn at 100x50 but displayed at 50x25 starting at (10, 20).
	m := Mapper{CellSize: 10, ScaleX: 2, ScaleY: 2, OffsetX: 10, OffsetY: 20, Rows: 5, Cols: 10}
	row, col, ok := m.Resolve(10+12, 20+7)
	if !ok || row != 1 || col != 2 {
		t.Fatalf("got (%d, %d, %v), expected (1, 2, true)", row, col, ok)
	}
	if _, _, ok := m.Resolve(5, 25); ok {
		t.Fatal("point left of the surface should not resolve")
	}
}

func TestResolveRejectsZeroCellSize(t *testing.T) {
	if _, _, ok := (Mapper{Rows: 3, Cols: 3}).Resolve(1, 1); ok {
		t.Fatal("zero cell size should never resolve")
	}
}

func TestDebouncer(t *testing.T) {
	var d Debouncer
	if !d.Changed(0, 0) {
		t.Fatal("first target should count as changed")
	}
	if d.Changed(0, 0) {
		t.Fatal("repeat target should be debounced")
	}
	if !d.Changed(0, 1) {
		t.Fatal("new column should count as changed")
	}
	if !d.Changed(1, 1) {
		t.Fatal("new row should count as changed")
	}
	d.Reset()
	if !d.Changed(1, 1) {
		t.Fatal("target after Reset should count as changed")
	}
}

func TestBrushTogglesOncePerCell(t *testing.T) {
	g, err := life.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	b := Brush{Mapper: Mapper{CellSize: 5, Rows: 4, Cols: 4}}

	// Three events inside (0,0), then into (0,1), then back to (0,0).
	for _, p := range [][2]float64{{1, 1}, {2, 3}, {4, 4}, {6, 1}, {3, 3}} {
		if _, err := b.Move(g, p[0], p[1]); err != nil {
			t.Fatalf("Move(%v): %v", p, err)
		}
	}
	a, _ := g.CellState(0, 0)
	c, _ := g.CellState(0, 1)
	if a || !c {
		t.Fatalf("cell (0,0) alive=%v (0,1) alive=%v, expected false/true", a, c)
	}

	toggled, _ := b.Move(g, 2, 2)
	if toggled {
		t.Fatal("same cell toggled twice without lifting")
	}
	b.Lift()
	toggled, _ = b.Move(g, 2, 2)
	if !toggled {
		t.Fatal("expected toggle after Lift")
	}

	if toggled, _ := b.Move(g, 100, 100); toggled {
		t.Fatal("out-of-grid point toggled a cell")
	}
}
