package app

import (
	"log/slog"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
)

const (
	defaultTitle = "lifegrid"
	defaultTPS   = 30
	hudWidth     = 180
)

// Options configure a window session.
type Options struct {
	Spawner     core.Spawner
	Palette     render.Palette
	Scale       int
	TPS         int
	DrawOnHover bool
	Title       string
	Logger      *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TPS <= 0 {
		o.TPS = defaultTPS
	}
	if o.Title == "" {
		o.Title = defaultTitle
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Palette.Alive == nil || o.Palette.Dead == nil {
		o.Palette = render.DefaultPalette()
	}
	return o
}

// WindowSize returns the outer window size in pixels for a grid of the
// spawner's size, including the status panel.
func (o Options) WindowSize() (int, int) {
	o = o.withDefaults()
	w := int(o.Spawner.Size.W)*o.Scale + hudWidth
	h := int(o.Spawner.Size.H) * o.Scale
	return w, h
}
