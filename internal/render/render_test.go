package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"lifegrid/pkg/life"

	"github.com/charmbracelet/lipgloss"
)

func testGrid(t *testing.T) *life.Grid {
	t.Helper()
	g, err := life.New(3, 2, life.WithSeeder(life.Points(
		life.Coord{Row: 0, Col: 0},
		life.Coord{Row: 0, Col: 1},
		life.Coord{Row: 1, Col: 2},
	)))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFillBinaryRGBA(t *testing.T) {
	g := testGrid(t)
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	buf := make([]byte, 4*3*2)
	fillBinaryRGBA(buf, g.RawCellBuffer(), on, off)

	want := []bool{true, true, false, false, false, true}
	for i, alive := range want {
		px := buf[i*4 : i*4+4]
		exp := off
		if alive {
			exp = on
		}
		if px[0] != exp.R || px[1] != exp.G || px[2] != exp.B || px[3] != exp.A {
			t.Fatalf("pixel %d = %v, expected %v", i, px, exp)
		}
	}
}

func TestTerminalRender(t *testing.T) {
	g := testGrid(t)
	term := &Terminal{
		Alive:      lipgloss.NewStyle(),
		Dead:       lipgloss.NewStyle(),
		AliveGlyph: "#",
		DeadGlyph:  ".",
	}
	got := term.Render(g.RawCellBuffer())
	if want := "##.\n..#"; got != want {
		t.Fatalf("Render() = %q, expected %q", got, want)
	}
	if term.CellWidth() != 1 {
		t.Fatalf("CellWidth() = %d, expected 1", term.CellWidth())
	}
	if NewTerminal(DefaultPalette()).CellWidth() != 2 {
		t.Fatal("default terminal cells should be two columns wide")
	}
}

func TestPaletteFromHex(t *testing.T) {
	p := PaletteFromHex("#ff0000", "#000000", "#00ff00")
	r, g, b, a := p.Alive.RGBA()
	if r>>8 != 0xff || g != 0 || b != 0 || a>>8 != 0xff {
		t.Fatalf("alive colour decoded as %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
	if got := toLipgloss(p.Grid); got != lipgloss.Color("#00ff00") {
		t.Fatalf("toLipgloss = %q", got)
	}
}

func near(a, b uint32) bool {
	a, b = a>>8, b>>8
	if a > b {
		a, b = b, a
	}
	return b-a <= 2
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return near(ar, br) && near(ag, bg) && near(ab, bb)
}

func TestSnapshotEncodePNG(t *testing.T) {
	g := testGrid(t)
	s := Snapshot{CellSize: 4, Palette: DefaultPalette()}

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf, g.RawCellBuffer()); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("image %dx%d, expected 12x8", b.Dx(), b.Dy())
	}
	if !sameColor(img.At(2, 2), s.Palette.Alive) {
		t.Fatalf("cell (0,0) centre %v, expected alive colour", img.At(2, 2))
	}
	if !sameColor(img.At(10, 2), s.Palette.Dead) {
		t.Fatalf("cell (0,2) centre %v, expected dead colour", img.At(10, 2))
	}
	if !sameColor(img.At(10, 6), s.Palette.Alive) {
		t.Fatalf("cell (1,2) centre %v, expected alive colour", img.At(10, 6))
	}
}

func TestSnapshotGridLines(t *testing.T) {
	s := Snapshot{CellSize: 5, GridLines: true, Palette: DefaultPalette()}
	if w, h := s.ImageSize(3, 2); w != 19 || h != 13 {
		t.Fatalf("ImageSize = %dx%d, expected 19x13", w, h)
	}

	path := filepath.Join(t.TempDir(), "grid.png")
	if err := s.SavePNG(path, testGrid(t).RawCellBuffer()); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
