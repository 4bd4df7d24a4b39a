package life

import "strings"

const (
	aliveGlyph = '◼'
	deadGlyph  = '◻'
)

// String renders the grid one row per line, ◼ for live cells and ◻ for dead.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(int(g.h) * (int(g.w)*3 + 1))
	for row := uint32(0); row < g.h; row++ {
		for col := uint32(0); col < g.w; col++ {
			if get(g.cur, g.index(row, col)) {
				sb.WriteRune(aliveGlyph)
			} else {
				sb.WriteRune(deadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
