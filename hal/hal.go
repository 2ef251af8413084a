package hal

import "errors"

var (
	// ErrNoWindow is returned when the window backend is not compiled in.
	ErrNoWindow = errors.New("window backend unavailable")

	// ErrStop ends a run cleanly when a step returns it (or an error wrapping it).
	ErrStop = errors.New("stop requested")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// The app draws into Buffer and calls Present once the frame is complete; the
// backend only ever shows presented frames.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input is the polled keyboard and pointer state for the current tick.
type Input interface {
	// PointerDelta returns the pointer movement since it was last read.
	PointerDelta() (dx, dy int)
	Pressed(k KeyCode) bool
	// JustPressed reports a key that went down this tick.
	JustPressed(k KeyCode) bool
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Display() Display
	Input() Input
}
