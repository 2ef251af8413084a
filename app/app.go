// Package app runs one frame per tick: input, camera update, wireframe draw
// and overlays, then present.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"wirecam/core/camera"
	"wirecam/core/config"
	"wirecam/core/hud"
	"wirecam/core/minimap"
	"wirecam/core/render"
	"wirecam/core/scene"
	"wirecam/hal"
)

// ErrQuit is returned by Step when the quit key is pressed. It wraps
// hal.ErrStop so the runners end cleanly.
var ErrQuit = fmt.Errorf("app: quit: %w", hal.ErrStop)

type Config struct {
	Camera   camera.Settings
	Scene    []scene.Line
	Bindings map[string]string
	Minimap  bool

	// Log receives app and component messages.
	Log zerolog.Logger
	// Trace receives the per-tick camera line.
	Trace zerolog.Logger
}

type App struct {
	fb       hal.Framebuffer
	target   *render.RGB565Target
	raster   *render.Rasterizer
	controls *Controls

	cam  *camera.Camera
	mini *minimap.Minimap
	hud  *hud.HUD

	lines       []scene.Line
	showMinimap bool
	stats       camera.DrawStats
	ticks       uint64

	log zerolog.Logger
}

// New wires an app to the host. The camera viewport follows the framebuffer.
func New(h hal.HAL, cfg Config) (*App, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("app: no framebuffer")
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}

	controls, err := NewControls(h.Input(), cfg.Bindings)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	s := cfg.Camera
	s.Width, s.Height = fb.Width(), fb.Height()
	cam, err := camera.New(s, camera.WithLogger(cfg.Trace))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	target := &render.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
	log := cfg.Log.With().Str("component", "app").Logger()
	a := &App{
		fb:          fb,
		target:      target,
		raster:      render.NewRasterizer(target),
		controls:    controls,
		cam:         cam,
		mini:        minimap.New(cam, cfg.Log),
		hud:         hud.New(),
		lines:       cfg.Scene,
		showMinimap: cfg.Minimap,
		log:         log,
	}
	log.Info().Int("lines", len(a.lines)).Int("width", fb.Width()).Int("height", fb.Height()).Msg("ready")
	return a, nil
}

// Runner adapts New to the hal runners. ready, when set, sees the app before
// the first tick.
func Runner(cfg Config, ready func(*App)) func(hal.HAL) (func() error, error) {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		if ready != nil {
			ready(a)
		}
		return a.Step, nil
	}
}

func (a *App) Camera() *camera.Camera { return a.cam }

// Stats is the DrawStats of the last frame.
func (a *App) Stats() camera.DrawStats { return a.stats }

func (a *App) Ticks() uint64 { return a.ticks }

func (a *App) MinimapShown() bool { return a.showMinimap }

// Step runs one tick.
func (a *App) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = a.crash(r)
		}
	}()

	if a.controls.Quit() {
		a.log.Info().Uint64("ticks", a.ticks).Msg("quit")
		return ErrQuit
	}
	if a.controls.ToggleMinimap() {
		a.showMinimap = !a.showMinimap
		a.log.Debug().Bool("minimap", a.showMinimap).Msg("toggled")
	}

	a.cam.Update(a.controls)

	a.fb.ClearRGB(0, 0, 0)
	a.stats = a.drawFrame(a.raster)
	a.ticks++
	return a.fb.Present()
}

// Render draws the current frame into t without advancing the camera.
func (a *App) Render(t render.Target) camera.DrawStats {
	t.Clear(render.Black)
	return a.drawFrame(render.NewRasterizer(t))
}

func (a *App) drawFrame(r *render.Rasterizer) camera.DrawStats {
	st := a.cam.Draw(a.lines, r)
	a.hud.DrawCrosshair(r)
	a.hud.DrawMovement(r, a.cam)
	a.hud.DrawStatus(r.T, a.cam.DebugInfo())
	if a.showMinimap {
		a.mini.Draw(r, a.lines)
	}
	return st
}

// FromConfig builds an app config from a loaded file config, loading the
// scene it names.
func FromConfig(c *config.Config, log, trace zerolog.Logger) (Config, error) {
	lines, err := scene.Load(c.Scene.File)
	if err != nil {
		return Config{}, fmt.Errorf("app: %w", err)
	}
	return Config{
		Camera:   c.CameraSettings(),
		Scene:    lines,
		Bindings: c.Keys,
		Minimap:  c.Minimap.Enabled,
		Log:      log,
		Trace:    trace,
	}, nil
}
