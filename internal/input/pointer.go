// Package input translates pointer positions into grid coordinates for the
// interaction loops. All state here is owned by the loop that uses it.
package input

import "math"

// Toggler is the part of the automaton a pointer can mutate.
type Toggler interface {
	ToggleCell(row, col uint32) error
}

// Mapper converts device coordinates into grid coordinates.
//
// A device point (x, y) is first moved into surface space with
// ((x-OffsetX)*ScaleX, (y-OffsetY)*ScaleY), which accounts for a surface that
// is displayed at a different size than it is drawn. The surface point is
// then divided by CellSize. Zero scales are treated as 1.
type Mapper struct {
	CellSize float64
	ScaleX   float64
	ScaleY   float64
	OffsetX  float64
	OffsetY  float64
	Rows     uint32
	Cols     uint32
}

// Resolve returns the cell under (x, y). ok is false when the point lies
// outside the grid; coordinates are never clamped or wrapped.
func (m Mapper) Resolve(x, y float64) (row, col uint32, ok bool) {
	if m.CellSize <= 0 {
		return 0, 0, false
	}
	sx, sy := m.ScaleX, m.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	cx := (x - m.OffsetX) * sx
	cy := (y - m.OffsetY) * sy
	if cx < 0 || cy < 0 || math.IsNaN(cx) || math.IsNaN(cy) {
		return 0, 0, false
	}
	r := math.Floor(cy / m.CellSize)
	c := math.Floor(cx / m.CellSize)
	if r >= float64(m.Rows) || c >= float64(m.Cols) {
		return 0, 0, false
	}
	return uint32(r), uint32(c), true
}

// Debouncer remembers the previous pointer target so that a pointer moving
// within one cell only toggles it once.
type Debouncer struct {
	row, col uint32
	armed    bool
}

// Changed records (row, col) as the current target and reports whether it
// differs from the previous one. The first call after Reset always reports true.
func (d *Debouncer) Changed(row, col uint32) bool {
	if d.armed && d.row == row && d.col == col {
		return false
	}
	d.row, d.col, d.armed = row, col, true
	return true
}

// Reset forgets the previous target.
func (d *Debouncer) Reset() { d.armed = false }

// Brush toggles cells under a moving pointer, once per newly entered cell.
type Brush struct {
	Mapper   Mapper
	debounce Debouncer
}

// Move handles a pointer event at device position (x, y). It reports whether
// a cell was toggled. Points outside the grid are ignored and do not reset
// the debounce target.
func (b *Brush) Move(t Toggler, x, y float64) (bool, error) {
	row, col, ok := b.Mapper.Resolve(x, y)
	if !ok || !b.debounce.Changed(row, col) {
		return false, nil
	}
	if err := t.ToggleCell(row, col); err != nil {
		return false, err
	}
	return true, nil
}

// Lift ends a stroke so the next Move toggles even if it hits the same cell.
func (b *Brush) Lift() { b.debounce.Reset() }
