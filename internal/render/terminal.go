package render

import (
	"fmt"
	"image/color"
	"strings"

	"lifegrid/pkg/life"

	"github.com/charmbracelet/lipgloss"
)

// Terminal renders a grid as styled text, two columns per cell so that cells
// come out roughly square in most terminal fonts.
type Terminal struct {
	Alive      lipgloss.Style
	Dead       lipgloss.Style
	AliveGlyph string
	DeadGlyph  string
}

// NewTerminal returns a Terminal coloured from p.
func NewTerminal(p Palette) *Terminal {
	return &Terminal{
		Alive:      lipgloss.NewStyle().Foreground(toLipgloss(p.Alive)),
		Dead:       lipgloss.NewStyle().Foreground(toLipgloss(p.Dead)),
		AliveGlyph: "██",
		DeadGlyph:  "··",
	}
}

// CellWidth is the number of terminal columns a cell occupies.
func (t *Terminal) CellWidth() int { return lipgloss.Width(t.AliveGlyph) }

// Render draws every cell of v. Runs of equal cells are styled together to
// keep escape sequences short.
func (t *Terminal) Render(v life.View) string {
	w, h := v.Size()
	var sb strings.Builder
	for row := 0; row < int(h); row++ {
		base := row * int(w)
		col := 0
		for col < int(w) {
			alive := v.Alive(base + col)
			run := col + 1
			for run < int(w) && v.Alive(base+run) == alive {
				run++
			}
			if alive {
				sb.WriteString(t.Alive.Render(strings.Repeat(t.AliveGlyph, run-col)))
			} else {
				sb.WriteString(t.Dead.Render(strings.Repeat(t.DeadGlyph, run-col)))
			}
			col = run
		}
		if row < int(h)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func toLipgloss(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
