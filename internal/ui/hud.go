//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the grid, with buttons to
// change the tick rate.
type HUD struct {
	width        int
	panel        *ebiten.Image
	lastHeight   int
	pixel        *ebiten.Image
	stats        Stats
	panelOffsetX int

	minusRect image.Rectangle
	plusRect  image.Rectangle
	setTPS    func(int)
}

// NewHUD constructs a HUD of the given panel width. setTPS is called with
// the new rate when a speed button is clicked.
func NewHUD(width int, setTPS func(int)) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width, setTPS: setTPS}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
		h.layoutControls()
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update records the latest stats and handles clicks on the speed buttons.
// It reports whether the click landed on the panel.
func (h *HUD) Update(panelOffsetX int, s Stats) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.stats = s
	return h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStats()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	switch {
	case pointInRect(px, my, h.minusRect):
		h.applyTPS(-1)
	case pointInRect(px, my, h.plusRect):
		h.applyTPS(1)
	}
	return true
}

func (h *HUD) applyTPS(dir int) {
	if h.setTPS == nil {
		return
	}
	next := StepTPS(h.stats.TPS, dir)
	if next != h.stats.TPS {
		h.setTPS(next)
		h.stats.TPS = next
	}
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Life", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y := statsTop
	for _, line := range h.stats.Lines() {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += statsLineHeight
	}

	text.Draw(h.panel, "speed", face, panelPadding, h.minusRect.Min.Y+labelBaseline-6, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	h.drawButton(h.minusRect, "-", h.stats.TPS > MinTPS)
	h.drawButton(h.plusRect, "+", h.stats.TPS < MaxTPS)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	top := statsTop + 6*statsLineHeight
	buttonY := top + (lineHeight-buttonSize)/2
	h.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, buttonY, h.plusRect.Min.X-buttonGap, buttonY+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding    = 12
	lineHeight      = 36
	buttonSize      = 24
	buttonGap       = 6
	headerBaseline  = 18
	labelBaseline   = 24
	statsTop        = panelPadding + headerBaseline + 24
	statsLineHeight = 18
)
