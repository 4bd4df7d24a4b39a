// Package pattern seeds a grid from a plaintext (.cells) pattern: one text
// line per row, 'O' or '*' for live cells, '.' for dead ones and '!' for
// comment lines.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"lifegrid/pkg/life"
)

// ErrSyntax reports a character that is not part of the plaintext format.
var ErrSyntax = errors.New("pattern: invalid plaintext cell")

// Point is a cell offset inside a pattern. Coordinates are signed so that a
// pattern can be placed partly outside the grid.
type Point struct {
	Row, Col int
}

// Pattern is a parsed plaintext pattern.
type Pattern struct {
	Name   string
	Width  int
	Height int
	Alive  []Point
}

// Parse reads a plaintext pattern. A "!Name: x" comment sets Name.
func Parse(r io.Reader) (*Pattern, error) {
	p := &Pattern{}
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for col, ch := range []rune(line) {
			switch ch {
			case 'O', 'o', '*':
				p.Alive = append(p.Alive, Point{Row: row, Col: col})
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w %q at line %d col %d", ErrSyntax, ch, row+1, col+1)
			}
		}
		if n := len([]rune(line)); n > p.Width {
			p.Width = n
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	p.Height = row
	return p, nil
}

// ParseString parses a pattern held in memory.
func ParseString(s string) (*Pattern, error) {
	return Parse(strings.NewReader(s))
}

// Seeder places the pattern with its top-left corner at (row, col). Cells
// that land outside the grid are dropped.
func (p *Pattern) Seeder(row, col int) life.Seeder {
	coords := make([]life.Coord, 0, len(p.Alive))
	for _, pt := range p.Alive {
		r, c := pt.Row+row, pt.Col+col
		if r < 0 || c < 0 || int64(r) > math.MaxUint32 || int64(c) > math.MaxUint32 {
			continue
		}
		coords = append(coords, life.Coord{Row: uint32(r), Col: uint32(c)})
	}
	return life.Points(coords...)
}

// Centered returns the top-left offset that centres p on a w x h grid.
func (p *Pattern) Centered(w, h int) (row, col int) {
	return (h - p.Height) / 2, (w - p.Width) / 2
}
