//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"voxelspace/app"
	"voxelspace/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var term hal.TerminalConfig
	var termMode bool
	var appCfg app.Config
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless and terminal mode (0 = run forever).")
	flag.BoolVar(&termMode, "term", false, "Render into the terminal.")
	flag.DurationVar(&term.HoldWindow, "hold", 150*time.Millisecond, "How long a terminal key counts as held after its last repeat.")
	flag.StringVar(&appCfg.TerrainPath, "terrain", "", "Terrain file (1024x1024 color/height pairs).")
	flag.StringVar(&appCfg.PalettePath, "palette", "", "Palette file (256 RGB triplets).")
	flag.Int64Var(&appCfg.Seed, "seed", 1, "Seed for the generated landscape.")
	flag.StringVar(&appCfg.ScriptPath, "script", "", "Lua input script defining input(frame).")
	flag.BoolVar(&appCfg.HUD, "hud", true, "Show the diagnostics overlay.")
	flag.Uint64Var(&appCfg.StatsEvery, "stats", 0, "Log frame statistics every N frames (0 = off).")
	flag.Uint64Var(&appCfg.MaxFrames, "frames", 0, "Stop after N frames (0 = run forever).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	var err error
	switch {
	case termMode || cfg.Enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if termMode {
			term.Hz, term.Ticks = cfg.Hz, cfg.Ticks
			err = hal.RunTerminal(ctx, newApp, term)
		} else {
			err = hal.RunHeadless(ctx, newApp, cfg)
		}
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		err = hal.RunWindow(newApp)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
