//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a packed cell view.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the cells in v into the painter image and draws it scaled.
// v must come from a grid of the painter's size.
func (gp *GridPainter) Blit(dst *ebiten.Image, v life.View, on, off color.Color, scale int) {
	w, h := v.Size()
	if int(w) != gp.w || int(h) != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, v, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
