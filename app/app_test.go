package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wirecam/core/camera"
	"wirecam/core/config"
	"wirecam/core/render"
	"wirecam/core/scene"
	"wirecam/hal"
)

type fakeInput struct {
	dx, dy int
	down   map[hal.KeyCode]bool
	just   map[hal.KeyCode]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{down: map[hal.KeyCode]bool{}, just: map[hal.KeyCode]bool{}}
}

func (f *fakeInput) PointerDelta() (int, int) {
	dx, dy := f.dx, f.dy
	f.dx, f.dy = 0, 0
	return dx, dy
}
func (f *fakeInput) Pressed(k hal.KeyCode) bool     { return f.down[k] }
func (f *fakeInput) JustPressed(k hal.KeyCode) bool { return f.just[k] }

type fakeHAL struct {
	disp hal.Display
	in   hal.Input
}

func (f fakeHAL) Display() hal.Display { return f.disp }
func (f fakeHAL) Input() hal.Input     { return f.in }

func testConfig(t *testing.T) Config {
	t.Helper()
	c, err := config.Load()
	require.NoError(t, err)
	cfg, err := FromConfig(c, zerolog.Nop(), zerolog.Nop())
	require.NoError(t, err)
	return cfg
}

func newTestApp(t *testing.T, cfg Config) (*App, *fakeInput, hal.Framebuffer) {
	t.Helper()
	in := newFakeInput()
	host := hal.NewHost(320, 240)
	a, err := New(fakeHAL{disp: host.Display(), in: in}, cfg)
	require.NoError(t, err)
	return a, in, host.Display().Framebuffer()
}

func litPixels(fb hal.Framebuffer) int {
	buf := fb.Buffer()
	n := 0
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] != 0 || buf[i+1] != 0 {
			n++
		}
	}
	return n
}

func TestFromConfig(t *testing.T) {
	cfg := testConfig(t)
	assert.Len(t, cfg.Scene, len(scene.Default()))
	assert.True(t, cfg.Minimap)
	assert.Equal(t, "W", cfg.Bindings["forward"])
}

func TestNewFollowsFramebuffer(t *testing.T) {
	a, _, _ := newTestApp(t, testConfig(t))

	w, h := a.Camera().Viewport()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestNewRejectsBadBinding(t *testing.T) {
	cfg := testConfig(t)
	cfg.Bindings = map[string]string{"forward": "Banana"}

	_, err := New(fakeHAL{disp: hal.NewHost(32, 32).Display(), in: newFakeInput()}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forward")
}

func TestStepDrawsFrame(t *testing.T) {
	a, _, fb := newTestApp(t, testConfig(t))

	require.NoError(t, a.Step())
	assert.Equal(t, uint64(1), a.Ticks())
	st := a.Stats()
	assert.Equal(t, len(scene.Default()), st.Lines)
	assert.Positive(t, st.Drawn)
	assert.Positive(t, litPixels(fb))
}

func TestStepMovesCamera(t *testing.T) {
	a, in, _ := newTestApp(t, testConfig(t))

	in.down[hal.KeyW] = true
	require.NoError(t, a.Step())
	assert.InDelta(t, -47.5, float64(a.Camera().Position().Z), 1e-4)

	in.down[hal.KeyW] = false
	require.NoError(t, a.Step())
	assert.InDelta(t, -47.5, float64(a.Camera().Position().Z), 1e-4)
}

func TestStepQuit(t *testing.T) {
	a, in, _ := newTestApp(t, testConfig(t))

	in.just[hal.KeyEscape] = true
	err := a.Step()
	require.ErrorIs(t, err, ErrQuit)
	assert.True(t, errors.Is(err, hal.ErrStop))
	assert.Zero(t, a.Ticks())
}

func TestStepTogglesMinimap(t *testing.T) {
	a, in, _ := newTestApp(t, testConfig(t))
	require.True(t, a.MinimapShown())

	in.just[hal.KeyM] = true
	require.NoError(t, a.Step())
	assert.False(t, a.MinimapShown())

	in.just[hal.KeyM] = false
	require.NoError(t, a.Step())
	assert.False(t, a.MinimapShown())

	in.just[hal.KeyM] = true
	require.NoError(t, a.Step())
	assert.True(t, a.MinimapShown())
}

func TestControlsRebind(t *testing.T) {
	in := newFakeInput()
	c, err := NewControls(in, map[string]string{"forward": "ArrowUp", "quit": "q"})
	require.NoError(t, err)

	in.down[hal.KeyW] = true
	assert.False(t, c.KeyDown(camera.KeyForward))
	in.down[hal.KeyArrowUp] = true
	assert.True(t, c.KeyDown(camera.KeyForward))

	in.down[hal.KeyS] = true
	assert.True(t, c.KeyDown(camera.KeyBack))

	in.just[hal.KeyQ] = true
	assert.True(t, c.Quit())

	in.dx, in.dy = 3, -4
	dx, dy := c.PointerDelta()
	assert.Equal(t, 3, dx)
	assert.Equal(t, -4, dy)
}

func TestControlsRejectUnknownAction(t *testing.T) {
	_, err := NewControls(newFakeInput(), map[string]string{"jump": "Space"})
	require.Error(t, err)
}

func TestRenderMatchesStep(t *testing.T) {
	a, _, _ := newTestApp(t, testConfig(t))
	require.NoError(t, a.Step())

	c := render.NewCanvas(320, 240)
	st := a.Render(c)
	assert.Equal(t, a.Stats(), st)
}

func TestRunnerHeadless(t *testing.T) {
	var a *App
	err := hal.RunHeadless(context.Background(), Runner(testConfig(t), func(created *App) { a = created }), hal.HeadlessConfig{
		Width:   64,
		Height:  48,
		Ticks:   3,
		Unpaced: true,
	})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, uint64(3), a.Ticks())
}

func TestCrashScreen(t *testing.T) {
	a, _, fb := newTestApp(t, testConfig(t))

	err := a.crash("boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	white, black := 0, 0
	buf := fb.Buffer()
	for i := 0; i+1 < len(buf); i += 2 {
		switch uint16(buf[i]) | uint16(buf[i+1])<<8 {
		case 0xffff:
			white++
		case 0:
			black++
		}
	}
	assert.Greater(t, white, black)
	assert.Positive(t, black)
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("hello", 3)
	assert.Equal(t, "hel", p)
	assert.Equal(t, "lo", r)

	p, r = takeRunes("привет", 2)
	assert.Equal(t, "пр", p)
	assert.Equal(t, "ивет", r)

	p, r = takeRunes("ab", 5)
	assert.Equal(t, "ab", p)
	assert.Empty(t, r)

	p, r = takeRunes("ab", 0)
	assert.Empty(t, p)
	assert.Equal(t, "ab", r)
}
