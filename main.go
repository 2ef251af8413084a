package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wirecam/app"
	"wirecam/core/config"
	"wirecam/core/debuglog"
	"wirecam/hal"
	"wirecam/internal/buildinfo"
)

var CLI struct {
	Version bool `help:"Print version information and exit." short:"v"`
	Debug   bool `help:"Whether to enable debug logging on the console."`

	Run struct {
		Configs    []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order." type:"existingfile"`
		Headless   bool     `help:"Run without a window."`
		Hz         int      `help:"Tick rate in headless mode." default:"60"`
		Ticks      uint64   `help:"Stop after N ticks (0 = run forever, or until the script ends)."`
		Script     string   `help:"Input script to drive a headless run." type:"existingfile"`
		FreeCursor bool     `help:"Do not capture the mouse cursor."`
	} `cmd:"" default:"withargs" help:"Start the viewer."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter).Level(zerolog.InfoLevel)

	kctx := kong.Parse(&CLI,
		kong.Name("wirecam"),
		kong.Description("a first-person wireframe viewer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Version {
		fmt.Println(buildinfo.String("wirecam"))
		os.Exit(0)
	}

	switch kctx.Command() {
	case "run", "run <configs>":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runCommand(ctx); err != nil {
			stop()
			writeError(err)
		}
	case "config":
		os.Stdout.Write(config.DEFAULT)
	}
}

func runCommand(ctx context.Context) error {
	opts := CLI.Run

	cfg, err := config.Load(opts.Configs...)
	if err != nil {
		return err
	}

	trace := zerolog.Nop()
	if cfg.Log.File != "" {
		f, err := debuglog.Open(cfg.Log.File, cfg.LogLevel())
		if err != nil {
			return err
		}
		defer f.Close()
		trace = f.Logger()
	}

	appCfg, err := app.FromConfig(cfg, log.Logger, trace)
	if err != nil {
		return err
	}
	newApp := app.Runner(appCfg, nil)

	log.Info().
		Str("version", buildinfo.Short()).
		Int("lines", len(appCfg.Scene)).
		Bool("headless", opts.Headless).
		Msg("starting")

	if opts.Headless || opts.Script != "" {
		var script *hal.Script
		if opts.Script != "" {
			if script, err = hal.LoadScript(opts.Script); err != nil {
				return err
			}
		}
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Hz:     opts.Hz,
			Ticks:  opts.Ticks,
			Script: script,
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return hal.RunWindow(newApp, hal.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Scale:      cfg.Window.Scale,
		TPS:        cfg.Window.TPS,
		Title:      cfg.Window.Title,
		FreeCursor: opts.FreeCursor,
	})
}
