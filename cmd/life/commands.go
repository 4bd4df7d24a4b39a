package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/history"
	"lifegrid/internal/render"
	"lifegrid/internal/seeds/pattern"
	"lifegrid/internal/tui"
	"lifegrid/pkg/life"

	"github.com/spf13/cobra"
)

// Terminal grid size used when no explicit width/height is configured.
const (
	tuiCols = 48
	tuiRows = 24
)

// maxPlotSamples bounds the population history kept by run --plot.
const maxPlotSamples = 4096

func plotCapacity(generations int) int {
	return min(generations+1, maxPlotSamples)
}

func (c *cli) guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "open the interactive window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE:  c.runGUI,
	}
}

func (c *cli) runGUI(cmd *cobra.Command, _ []string) error {
	return app.Run(app.Options{
		Spawner:     c.spawner(),
		Palette:     c.cfg.Palette(),
		Scale:       c.cfg.CellSize,
		TPS:         c.cfg.TPS,
		DrawOnHover: c.cfg.DrawOnHover,
		Title:       "lifegrid",
		Logger:      c.log,
	})
}

func (c *cli) tuiCmd() *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := discardLogger()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				if logger, err = newLogger(c.cfg.LogLevel, f); err != nil {
					return err
				}
			}
			s := c.spawner()
			if c.cfg.Width == 0 {
				s.Size.W = tuiCols
			}
			if c.cfg.Height == 0 {
				s.Size.H = tuiRows
			}
			return tui.Run(tui.Options{
				Spawner: s,
				Palette: c.cfg.Palette(),
				TPS:     c.cfg.TPS,
				Logger:  logger,
			})
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (the terminal is owned by the UI)")
	return cmd
}

func (c *cli) runCmd() *cobra.Command {
	var (
		generations int
		printGrid   bool
		plain       bool
		plot        bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "step the grid headlessly and report the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if generations < 0 {
				return fmt.Errorf("generations must not be negative, got %d", generations)
			}
			grid, err := c.spawner().Spawn()
			if err != nil {
				return err
			}
			peak := grid.Population()
			var rec *history.Recorder
			if plot {
				rec = history.NewRecorder(plotCapacity(generations))
				rec.Record(grid.Generation(), peak)
			}
			c.advance(cmd, grid, generations, func(g *life.Grid) {
				pop := g.Population()
				peak = max(peak, pop)
				if rec != nil {
					rec.Record(g.Generation(), pop)
				}
			})

			out := cmd.OutOrStdout()
			if printGrid {
				if plain {
					fmt.Fprint(out, grid.String())
				} else {
					fmt.Fprintln(out, render.NewTerminal(c.cfg.Palette()).Render(grid.RawCellBuffer()))
				}
			}
			fmt.Fprintf(out, "generation %d population %d peak %d\n", grid.Generation(), grid.Population(), peak)
			if rec != nil && rec.Len() > 1 {
				fmt.Fprintln(out, rec.Plot(0, 10, "population"))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&generations, "generations", "n", 100, "number of generations to run")
	cmd.Flags().BoolVar(&printGrid, "print", false, "print the final grid")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the grid as plain ◼/◻ text")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot population over time")
	return cmd
}

// advance ticks grid up to n times, stopping early when the command's
// context is cancelled. Cancellation is only observed between generations.
// observe, when set, is called after every tick.
func (c *cli) advance(cmd *cobra.Command, grid *life.Grid, n int, observe func(*life.Grid)) {
	ctx := cmd.Context()
	for i := 0; i < n; i++ {
		if ctx != nil && ctx.Err() != nil {
			c.log.Warn("interrupted", "generation", grid.Generation(), "requested", n)
			return
		}
		grid.Tick()
		if observe != nil {
			observe(grid)
		}
	}
	c.log.Debug("run finished", "generation", grid.Generation(), "population", grid.Population())
}

func (c *cli) snapshotCmd() *cobra.Command {
	var (
		generations int
		out         string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write the grid after N generations as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if generations < 0 {
				return fmt.Errorf("generations must not be negative, got %d", generations)
			}
			grid, err := c.spawner().Spawn()
			if err != nil {
				return err
			}
			c.advance(cmd, grid, generations, nil)
			snap := render.Snapshot{
				CellSize:  c.cfg.CellSize,
				GridLines: c.cfg.GridLines,
				Palette:   c.cfg.Palette(),
			}
			if err := snap.SavePNG(out, grid.RawCellBuffer()); err != nil {
				return err
			}
			c.log.Info("snapshot written", "path", out, "generation", grid.Generation())
			return nil
		},
	}
	cmd.Flags().IntVarP(&generations, "generations", "n", 0, "generations to run before the snapshot")
	cmd.Flags().StringVarP(&out, "out", "o", "grid.png", "output PNG path")
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list seeders and built-in patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.SeederNames() {
				fmt.Fprintln(out, name)
				params, _ := core.SeederParams(name)
				for _, p := range params {
					def := p.Default
					if def == "" {
						def = "-"
					}
					fmt.Fprintf(out, "  %-10s %-6s %-7s %s\n", p.Key, p.Type, def, p.Description)
				}
			}
			fmt.Fprintf(out, "patterns: %s\n", strings.Join(pattern.Names(), ", "))
			return nil
		},
	}
}

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "lifegrid.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}
			if err := config.Save(path, c.cfg); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
