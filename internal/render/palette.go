package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Palette holds the colours used to draw a grid.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Grid  color.Color
}

// DefaultPalette returns the classic muted green-on-charcoal scheme.
func DefaultPalette() Palette {
	return PaletteFromHex("#83A598", "#282828", "#CCCCCC")
}

// PaletteFromHex builds a Palette from "#RRGGBB"-style strings.
func PaletteFromHex(alive, dead, grid string) Palette {
	return Palette{
		Alive: gg.Hex(alive).Color(),
		Dead:  gg.Hex(dead).Color(),
		Grid:  gg.Hex(grid).Color(),
	}
}
