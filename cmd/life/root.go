package main

import (
	"fmt"
	"io"
	"log/slog"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	_ "lifegrid/internal/seeds/noise"
	_ "lifegrid/internal/seeds/pattern"
	_ "lifegrid/internal/seeds/random"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

// cli carries state shared by every subcommand.
type cli struct {
	flags      *config.Config
	cfg        *config.Config
	configPath string
	log        *slog.Logger
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{flags: config.Default(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:               "life",
		Short:             "Conway's Game of Life on a bit-packed grid",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runGUI,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file path (yaml)")
	c.flags.Bind(root.PersistentFlags())

	root.AddCommand(
		c.guiCmd(),
		c.tuiCmd(),
		c.runCmd(),
		c.snapshotCmd(),
		c.listCmd(),
		c.configCmd(),
	)
	return root
}

// setup resolves the effective configuration: defaults, then the config
// file, then explicitly set flags.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Overlay(c.flags, cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	logger, err := newLogger(cfg.LogLevel, c.stderr)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = logger
	gg.SetLogger(logger)
	logger.Debug("configuration resolved", "config", c.configPath, "grid", cfg.GridSize(), "seeder", cfg.Seeder.Name)
	return nil
}

func (c *cli) spawner() core.Spawner {
	return core.Spawner{
		Size:    c.cfg.GridSize(),
		Seeder:  c.cfg.Seeder.Name,
		Options: c.cfg.Seeder.Options,
	}
}
