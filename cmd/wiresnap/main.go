// Command wiresnap renders a config and scene to a PNG without a window,
// optionally after driving the camera with an input script.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wirecam/app"
	"wirecam/core/config"
	"wirecam/core/render"
	"wirecam/hal"
	"wirecam/internal/buildinfo"
)

var CLI struct {
	Configs     []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order." type:"existingfile"`
	Out         string   `help:"Output PNG path." short:"o" default:"wirecam.png"`
	Script      string   `help:"Input script to run before the snapshot." type:"existingfile"`
	Ticks       uint64   `help:"Ticks to run before the snapshot (0 = one tick, or until the script ends)."`
	Minimap     bool     `help:"Force the minimap on."`
	HideMinimap bool     `help:"Force the minimap off."`
	Debug       bool     `help:"Whether to enable debug logging."`
	Version     bool     `help:"Print version information and exit." short:"v"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("wiresnap"),
		kong.Description("render a wireframe scene to a PNG"),
		kong.UsageOnError())

	if CLI.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}
	if CLI.Version {
		fmt.Println(buildinfo.String("wiresnap"))
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := snapshot(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func snapshot(ctx context.Context) error {
	cfg, err := config.Load(CLI.Configs...)
	if err != nil {
		return err
	}
	switch {
	case CLI.HideMinimap:
		cfg.Minimap.Enabled = false
	case CLI.Minimap:
		cfg.Minimap.Enabled = true
	}

	appCfg, err := app.FromConfig(cfg, log.Logger, log.Logger)
	if err != nil {
		return err
	}

	hc := hal.HeadlessConfig{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Ticks:   CLI.Ticks,
		Unpaced: true,
	}
	if CLI.Script != "" {
		if hc.Script, err = hal.LoadScript(CLI.Script); err != nil {
			return err
		}
	}
	if hc.Ticks == 0 && (hc.Script == nil || hc.Script.Ticks() == 0) {
		hc.Ticks = 1
	}

	var a *app.App
	ready := func(created *app.App) { a = created }
	if err := hal.RunHeadless(ctx, app.Runner(appCfg, ready), hc); err != nil {
		return err
	}

	c := render.NewCanvas(cfg.Window.Width, cfg.Window.Height)
	st := a.Render(c)
	if err := c.SavePNG(CLI.Out); err != nil {
		return err
	}
	log.Info().
		Str("out", CLI.Out).
		Uint64("ticks", a.Ticks()).
		Int("lines", st.Lines).
		Int("drawn", st.Drawn).
		Int("clipped", st.Clipped).
		Msg("snapshot written")
	return nil
}
