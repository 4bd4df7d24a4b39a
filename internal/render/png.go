package render

import (
	"fmt"
	"io"

	"lifegrid/pkg/life"

	"github.com/gogpu/gg"
)

// Snapshot rasterizes a grid into an image. With GridLines set the layout
// matches the canvas renderer: a 1px line before every row and column, so a
// cell occupies CellSize+1 pixels.
type Snapshot struct {
	CellSize  int
	GridLines bool
	Palette   Palette
}

// ImageSize returns the pixel dimensions for a w x h grid.
func (s Snapshot) ImageSize(w, h uint32) (int, int) {
	pitch := s.pitch()
	if s.GridLines {
		return int(w)*pitch + 1, int(h)*pitch + 1
	}
	return int(w) * pitch, int(h) * pitch
}

func (s Snapshot) pitch() int {
	cs := s.CellSize
	if cs <= 0 {
		cs = 1
	}
	if s.GridLines {
		return cs + 1
	}
	return cs
}

// Draw renders v into a new gg context. The caller must Close it.
func (s Snapshot) Draw(v life.View) (*gg.Context, error) {
	w, h := v.Size()
	iw, ih := s.ImageSize(w, h)
	pitch := float64(s.pitch())
	inset := 0.0
	if s.GridLines {
		inset = 1
	}
	size := pitch - inset

	dc := gg.NewContext(iw, ih)
	dc.ClearWithColor(gg.FromColor(s.Palette.Dead))

	dc.SetColor(s.Palette.Alive)
	drawn := false
	for row := uint32(0); row < h; row++ {
		for col := uint32(0); col < w; col++ {
			if !v.Alive(int(row*w + col)) {
				continue
			}
			dc.DrawRectangle(float64(col)*pitch+inset, float64(row)*pitch+inset, size, size)
			drawn = true
		}
	}
	if drawn {
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("fill cells: %w", err)
		}
	}

	if s.GridLines {
		dc.SetColor(s.Palette.Grid)
		dc.SetLineWidth(1)
		for i := uint32(0); i <= w; i++ {
			x := float64(i)*pitch + 0.5
			dc.MoveTo(x, 0)
			dc.LineTo(x, float64(ih))
		}
		for j := uint32(0); j <= h; j++ {
			y := float64(j)*pitch + 0.5
			dc.MoveTo(0, y)
			dc.LineTo(float64(iw), y)
		}
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("stroke grid: %w", err)
		}
	}
	return dc, nil
}

// EncodePNG writes v as a PNG image to out.
func (s Snapshot) EncodePNG(out io.Writer, v life.View) error {
	dc, err := s.Draw(v)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(out)
}

// SavePNG writes v as a PNG file at path.
func (s Snapshot) SavePNG(path string, v life.View) error {
	dc, err := s.Draw(v)
	if err != nil {
		return err
	}
	defer dc.Close()
	gg.Logger().Debug("saving snapshot", "path", path, "width", dc.Width(), "height", dc.Height())
	return dc.SavePNG(path)
}
