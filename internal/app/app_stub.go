//go:build !ebiten

package app

import "errors"

// ErrNoWindow is returned by Run in builds without window support.
var ErrNoWindow = errors.New("app.Run requires building with the 'ebiten' tag")

// Run always reports that the GUI build tag is missing.
func Run(Options) error {
	return ErrNoWindow
}
