// Package config loads the YAML configuration: the embedded defaults, then each
// user file in order on top of them.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"wirecam/core/camera"
	"wirecam/core/linalg"
	"wirecam/core/render"
)

//go:embed default.yaml
var DEFAULT []byte

// App-level key actions, bound next to the camera keys.
const (
	ActionQuit    = "quit"
	ActionMinimap = "minimap"
)

type Config struct {
	Window  Window            `yaml:"window"`
	Camera  Camera            `yaml:"camera"`
	Scene   Scene             `yaml:"scene"`
	Minimap Minimap           `yaml:"minimap"`
	Log     Log               `yaml:"log"`
	Keys    map[string]string `yaml:"keys"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

type Camera struct {
	Position            [3]linalg.Scalar     `yaml:"position,flow"`
	FovDegrees          linalg.Scalar        `yaml:"fovDegrees"`
	Near                linalg.Scalar        `yaml:"near"`
	Far                 linalg.Scalar        `yaml:"far"`
	MoveSpeed           linalg.Scalar        `yaml:"moveSpeed"`
	MouseDegreesPerUnit linalg.Scalar        `yaml:"mouseDegreesPerUnit"`
	RollDegreesPerTick  linalg.Scalar        `yaml:"rollDegreesPerTick"`
	RotationOrder       camera.RotationOrder `yaml:"rotationOrder"`
	PitchLimitDegrees   linalg.Scalar        `yaml:"pitchLimitDegrees"`
	LineColor           render.Color         `yaml:"lineColor"`
}

type Scene struct {
	File string `yaml:"file"`
}

type Minimap struct {
	Enabled bool `yaml:"enabled"`
}

type Log struct {
	// File is the debug trace sink. Empty disables it.
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Load decodes the defaults and then every path in order onto the same value,
// so later files override earlier ones field by field. The result is validated.
func Load(paths ...string) (*Config, error) {
	var c Config
	if err := decode(bytes.NewReader(DEFAULT), &c); err != nil {
		return nil, fmt.Errorf("invalid default config file: %w", err)
	}
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not process config file %s: %w", path, err)
		}
		if err := decode(bytes.NewReader(b), &c); err != nil {
			return nil, fmt.Errorf("could not merge config file %s: %w", path, err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func decode(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("config: %s = %v: %w", field, v, linalg.ErrInvalidArgument)
}

// Validate checks the values a camera and window can be built from.
func (c *Config) Validate() error {
	w := c.Window
	switch {
	case w.Width <= 0:
		return invalid("window.width", w.Width)
	case w.Height <= 0:
		return invalid("window.height", w.Height)
	case w.Scale <= 0:
		return invalid("window.scale", w.Scale)
	case w.TPS <= 0:
		return invalid("window.tps", w.TPS)
	}

	cam := c.Camera
	switch {
	case !(cam.FovDegrees > 0 && cam.FovDegrees < 180):
		return invalid("camera.fovDegrees", cam.FovDegrees)
	case !(cam.Near > 0):
		return invalid("camera.near", cam.Near)
	case !(cam.Far > cam.Near):
		return invalid("camera.far", cam.Far)
	case cam.MoveSpeed < 0:
		return invalid("camera.moveSpeed", cam.MoveSpeed)
	case !(cam.PitchLimitDegrees >= 0 && cam.PitchLimitDegrees <= 90):
		return invalid("camera.pitchLimitDegrees", cam.PitchLimitDegrees)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	for action, key := range c.Keys {
		if action == ActionQuit || action == ActionMinimap {
			continue
		}
		if _, err := camera.ParseKey(action); err != nil {
			return fmt.Errorf("config: keys.%s: %w", action, err)
		}
		if key == "" {
			return invalid("keys."+action, `""`)
		}
	}
	return nil
}

// CameraSettings converts the camera section, taking the viewport from the window.
func (c *Config) CameraSettings() camera.Settings {
	cam := c.Camera
	s := camera.Default()
	s.Position = linalg.V3(cam.Position[0], cam.Position[1], cam.Position[2])
	s.FovY = linalg.DegToRad(cam.FovDegrees)
	s.Width, s.Height = c.Window.Width, c.Window.Height
	s.Near, s.Far = cam.Near, cam.Far
	s.MoveSpeed = cam.MoveSpeed
	s.MouseRate = linalg.DegToRad(cam.MouseDegreesPerUnit)
	s.RollSpeed = linalg.DegToRad(cam.RollDegreesPerTick)
	s.RotationOrder = cam.RotationOrder
	s.PitchLimit = linalg.DegToRad(cam.PitchLimitDegrees)
	s.LineColor = cam.LineColor
	return s
}

// LogLevel is the parsed log.level. Validate has already checked it.
func (c *Config) LogLevel() zerolog.Level {
	l, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.DebugLevel
	}
	return l
}
