package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width, Height int
	Hz            int
	// Ticks stops the run after N ticks. With a script and no tick count the
	// run ends once the script is done.
	Ticks uint64
	// Unpaced runs ticks back to back instead of on a Hz ticker.
	Unpaced bool
	Script  *Script
}

// RunHeadless runs the app without opening a window. A step returning ErrStop
// ends the run without error.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size: %dx%d", cfg.Width, cfg.Height)
	}

	h := NewHost(cfg.Width, cfg.Height)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	limit := cfg.Ticks
	if limit == 0 && cfg.Script != nil {
		limit = cfg.Script.Ticks()
	}

	var tickC <-chan time.Time
	if !cfg.Unpaced {
		d := time.Second / time.Duration(cfg.Hz)
		if d <= 0 {
			return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
		}
		t := time.NewTicker(d)
		defer t.Stop()
		tickC = t.C
	}

	var tick uint64
	for {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if cfg.Script != nil {
			cfg.Script.apply(h.in)
		} else {
			h.in.advance()
		}
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
		tick++
		if limit > 0 && tick >= limit {
			return nil
		}
	}
}
