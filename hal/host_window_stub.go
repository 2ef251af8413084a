//go:build !cgo

package hal

import "fmt"

// WindowConfig sizes and titles the desktop window.
type WindowConfig struct {
	Width, Height int
	Scale         int
	TPS           int
	Title         string
	FreeCursor    bool
}

func RunWindow(_ func(HAL) (func() error, error), _ WindowConfig) error {
	return fmt.Errorf("%w: build with CGO_ENABLED=1 or use --headless", ErrNoWindow)
}
