//go:build ebiten

package app

import (
	"errors"
	"log/slog"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/input"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life grid to the ebiten.Game interface.
type Game struct {
	grid    *life.Grid
	spawner core.Spawner
	seeder  string

	painter *render.GridPainter
	hud     *ui.HUD
	brush   input.Brush
	palette render.Palette
	log     *slog.Logger

	scale       int
	tps         int
	drawOnHover bool
	paused      bool
	tickOnce    bool
}

// New constructs a Game whose grid is built by opts.Spawner.
func New(opts Options) (*Game, error) {
	opts = opts.withDefaults()
	grid, err := opts.Spawner.Spawn()
	if err != nil {
		return nil, err
	}
	w, h := grid.Width(), grid.Height()
	g := &Game{
		grid:        grid,
		spawner:     opts.Spawner,
		seeder:      opts.Spawner.Seeder,
		painter:     render.NewGridPainter(int(w), int(h)),
		palette:     opts.Palette,
		log:         opts.Logger,
		scale:       opts.Scale,
		tps:         opts.TPS,
		drawOnHover: opts.DrawOnHover,
	}
	g.brush.Mapper = input.Mapper{CellSize: float64(opts.Scale), Rows: h, Cols: w}
	g.hud = ui.NewHUD(hudWidth, g.setTPS)
	return g, nil
}

func (g *Game) setTPS(tps int) {
	g.tps = tps
	ebiten.SetTPS(tps)
	g.log.Debug("tick rate changed", "tps", tps)
}

// respawn replaces the grid with one built by s.
func (g *Game) respawn(s core.Spawner) {
	grid, err := s.Spawn()
	if err != nil {
		g.log.Error("respawn failed", "seeder", s.Seeder, "err", err)
		return
	}
	g.grid = grid
	g.seeder = s.Seeder
	g.tickOnce = false
	g.brush.Lift()
	g.log.Info("grid respawned", "seeder", s.Seeder)
}

func (g *Game) stats() ui.Stats {
	return ui.Stats{
		Generation: g.grid.Generation(),
		Population: g.grid.Population(),
		Size:       g.spawner.Size,
		TPS:        g.tps,
		Paused:     g.paused,
		Seeder:     g.seeder,
	}
}

// Update handles input, applies pointer toggles and advances one generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.respawn(g.spawner)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.spawner = g.spawner.Reseeded(time.Now().UnixNano())
		g.respawn(g.spawner)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.respawn(g.spawner.Cleared())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.setTPS(ui.StepTPS(g.tps, 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.setTPS(ui.StepTPS(g.tps, -1))
	}

	panelX := int(g.grid.Width()) * g.scale
	if !g.hud.Update(panelX, g.stats()) {
		g.handlePointer()
	}

	if !g.paused || g.tickOnce {
		g.grid.Tick()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePointer() {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.brush.Lift()
	}
	if !g.drawOnHover && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if _, err := g.brush.Move(g.grid, float64(x), float64(y)); err != nil {
		g.log.Warn("toggle rejected", "x", x, "y", y, "err", err)
	}
}

// Draw renders the current generation and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.RawCellBuffer(), g.palette.Alive, g.palette.Dead, g.scale)
	g.hud.Draw(screen, int(g.grid.Width())*g.scale, int(g.grid.Height())*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.grid.Width())*g.scale + g.hud.Width(), int(g.grid.Height()) * g.scale
}

// Run opens a window and blocks until it is closed.
func Run(opts Options) error {
	opts = opts.withDefaults()
	game, err := New(opts)
	if err != nil {
		return err
	}
	w, h := opts.WindowSize()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(w, h)
	opts.Logger.Info("window opened", "width", w, "height", h, "tps", opts.TPS, "seeder", opts.Spawner.Seeder)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
