package life

// View is a read-only window into a grid's packed cell storage. It borrows
// the grid's buffer instead of copying it and is valid only until the next
// Tick or ToggleCell on that grid; reading a stale View panics with
// ErrStaleView. Use Bytes for a copy that outlives mutation.
//
// Bit n (row-major, row*width+col) is stored in byte n/8 under mask
// 1<<(n%8). A set bit means the cell is alive.
type View struct {
	g     *Grid
	buf   []byte
	epoch uint64
}

// RawCellBuffer returns a View over the current generation.
func (g *Grid) RawCellBuffer() View {
	return View{g: g, buf: g.cur, epoch: g.epoch}
}

// Valid reports whether the grid has not been mutated since the View was taken.
func (v View) Valid() bool { return v.g != nil && v.g.epoch == v.epoch }

// Size returns the grid dimensions the View was taken from.
func (v View) Size() (width, height uint32) {
	v.check()
	return v.g.w, v.g.h
}

// Len returns the number of bytes in the packed buffer, ceil(width*height/8).
func (v View) Len() int {
	v.check()
	return len(v.buf)
}

// Byte returns byte i of the packed buffer.
func (v View) Byte(i int) byte {
	v.check()
	return v.buf[i]
}

// Alive reports whether bit n is set. n must be below width*height.
func (v View) Alive(n int) bool {
	v.check()
	return get(v.buf, n)
}

// Bytes returns a copy of the packed buffer.
func (v View) Bytes() []byte {
	v.check()
	return append([]byte(nil), v.buf...)
}

func (v View) check() {
	if !v.Valid() {
		panic(ErrStaleView)
	}
}
