package app

import (
	"fmt"

	"wirecam/core/camera"
	"wirecam/core/config"
	"wirecam/hal"
)

// DefaultBindings maps every action to its stock key.
func DefaultBindings() map[string]string {
	return map[string]string{
		camera.KeyForward.String():   "W",
		camera.KeyBack.String():      "S",
		camera.KeyRight.String():     "D",
		camera.KeyLeft.String():      "A",
		camera.KeyUp.String():        "Space",
		camera.KeyDown.String():      "ControlLeft",
		camera.KeyRollRight.String(): "E",
		camera.KeyRollLeft.String():  "Q",
		config.ActionQuit:            "Escape",
		config.ActionMinimap:         "M",
	}
}

// Controls binds physical keys to camera keys and app actions. It is the
// camera's Input.
type Controls struct {
	in      hal.Input
	camera  map[camera.Key]hal.KeyCode
	quit    hal.KeyCode
	minimap hal.KeyCode
}

// NewControls resolves bindings on top of DefaultBindings.
func NewControls(in hal.Input, bindings map[string]string) (*Controls, error) {
	merged := DefaultBindings()
	for action, key := range bindings {
		merged[action] = key
	}

	c := &Controls{in: in, camera: make(map[camera.Key]hal.KeyCode)}
	for action, name := range merged {
		code, err := hal.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", action, err)
		}
		switch action {
		case config.ActionQuit:
			c.quit = code
		case config.ActionMinimap:
			c.minimap = code
		default:
			k, err := camera.ParseKey(action)
			if err != nil {
				return nil, fmt.Errorf("binding %s: %w", action, err)
			}
			c.camera[k] = code
		}
	}
	return c, nil
}

func (c *Controls) PointerDelta() (dx, dy int) { return c.in.PointerDelta() }

func (c *Controls) KeyDown(k camera.Key) bool {
	code, ok := c.camera[k]
	return ok && c.in.Pressed(code)
}

func (c *Controls) Quit() bool          { return c.in.JustPressed(c.quit) }
func (c *Controls) ToggleMinimap() bool { return c.in.JustPressed(c.minimap) }
