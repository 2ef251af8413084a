package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"wirecam/core/linalg"
)

// File is the YAML scene description.
//
//	shapes:
//	  - type: cube
//	    center: [0, 0, 0]
//	    size: 25
//	  - type: grid
//	    extent: 100
//	    step: 5
//	  - type: sphere
//	    center: [60, 10, 0]
//	    radius: 10
//	    segments: 16
//	  - type: line
//	    from: [0, 0, 0]
//	    to: [0, 50, 0]
type File struct {
	Shapes []Shape `yaml:"shapes"`
}

// Shape is one entry of a scene file. Fields not used by Type are ignored.
type Shape struct {
	Type     string        `yaml:"type"`
	Center   Point         `yaml:"center"`
	Size     linalg.Scalar `yaml:"size"`
	Extent   linalg.Scalar `yaml:"extent"`
	Step     linalg.Scalar `yaml:"step"`
	Y        linalg.Scalar `yaml:"y"`
	Radius   linalg.Scalar `yaml:"radius"`
	Segments int           `yaml:"segments"`
	From     Point         `yaml:"from"`
	To       Point         `yaml:"to"`
}

// Point is a Vec3 written as a [x, y, z] sequence.
type Point linalg.Vec3

func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var xyz []linalg.Scalar
	if err := n.Decode(&xyz); err != nil {
		return err
	}
	if len(xyz) != 3 {
		return fmt.Errorf("line %d: point needs 3 components, got %d", n.Line, len(xyz))
	}
	*p = Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return nil
}

var ErrUnknownShape = errors.New("unknown shape")

// Lines expands the shape into its line list.
func (s Shape) Lines() ([]Line, error) {
	c := linalg.Vec3(s.Center)
	switch s.Type {
	case "cube":
		if !(s.Size > 0) {
			return nil, fmt.Errorf("cube: size must be > 0, got %v", s.Size)
		}
		return Cube(c, s.Size), nil
	case "grid":
		if !(s.Extent > 0) || !(s.Step > 0) {
			return nil, fmt.Errorf("grid: extent and step must be > 0, got %v/%v", s.Extent, s.Step)
		}
		return Grid(s.Extent, s.Step, s.Y), nil
	case "sphere":
		segs := s.Segments
		if segs == 0 {
			segs = 16
		}
		if !(s.Radius > 0) || segs < 3 {
			return nil, fmt.Errorf("sphere: need radius > 0 and segments >= 3")
		}
		return Sphere(c, s.Radius, segs), nil
	case "line":
		return []Line{Segment(linalg.Vec3(s.From), linalg.Vec3(s.To))}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownShape, s.Type)
}

// Lines expands every shape in order.
func (f *File) Lines() ([]Line, error) {
	var out []Line
	for i, s := range f.Shapes {
		ls, err := s.Lines()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		out = append(out, ls...)
	}
	return out, nil
}

// Parse decodes a YAML scene.
func Parse(r io.Reader) ([]Line, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	lines, err := f.Lines()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return lines, nil
}

// Load reads a YAML scene file. An empty path yields Default().
func Load(path string) ([]Line, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	lines, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
