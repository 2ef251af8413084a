// Package scene builds the world-space line lists the camera draws.
package scene

import (
	"github.com/chewxy/math32"

	"wirecam/core/linalg"
)

// Line is a world-space segment. Only the first two points are drawn and lines
// with fewer than two points are skipped.
type Line []linalg.Vec3

// Segment returns the line from a to b.
func Segment(a, b linalg.Vec3) Line { return Line{a, b} }

// Cube returns the 12 edges of an axis-aligned cube of half-size s centered at c.
func Cube(c linalg.Vec3, s linalg.Scalar) []Line {
	p := [8]linalg.Vec3{
		{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
	}
	for i := range p {
		p[i] = p[i].Add(c)
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]Line, 0, len(edges))
	for _, e := range edges {
		out = append(out, Segment(p[e[0]], p[e[1]]))
	}
	return out
}

// Grid returns a square ground grid on the plane y, spanning [-extent, extent] on
// x and z with lines every step units. It yields 2*(2n+1) lines with
// n = int(extent/step).
func Grid(extent, step, y linalg.Scalar) []Line {
	if !(step > 0) || !(extent > 0) {
		return nil
	}
	n := int(extent / step)
	out := make([]Line, 0, 2*(2*n+1))
	for i := -n; i <= n; i++ {
		x := linalg.Scalar(i) * step
		out = append(out, Segment(linalg.V3(x, y, -extent), linalg.V3(x, y, extent)))
	}
	for i := -n; i <= n; i++ {
		z := linalg.Scalar(i) * step
		out = append(out, Segment(linalg.V3(-extent, y, z), linalg.V3(extent, y, z)))
	}
	return out
}

// Sphere returns a latitude/longitude wireframe with the given number of
// segments around the equator. Rings run from pole to pole in segments/2 steps.
func Sphere(c linalg.Vec3, radius linalg.Scalar, segments int) []Line {
	if segments < 3 || !(radius > 0) {
		return nil
	}
	rings := segments / 2
	if rings < 2 {
		rings = 2
	}
	point := func(ring, seg int) linalg.Vec3 {
		theta := linalg.Pi * linalg.Scalar(ring) / linalg.Scalar(rings)
		phi := 2 * linalg.Pi * linalg.Scalar(seg) / linalg.Scalar(segments)
		st, ct := math32.Sincos(theta)
		sp, cp := math32.Sincos(phi)
		return c.Add(linalg.V3(radius*st*cp, radius*ct, radius*st*sp))
	}

	var out []Line
	// Latitude circles, skipping the degenerate poles.
	for r := 1; r < rings; r++ {
		for s := 0; s < segments; s++ {
			out = append(out, Segment(point(r, s), point(r, s+1)))
		}
	}
	// Meridians.
	for s := 0; s < segments; s++ {
		for r := 0; r < rings; r++ {
			out = append(out, Segment(point(r, s), point(r+1, s)))
		}
	}
	return out
}

// Default is the stock scene: a cube of half-size 25 and a ground grid.
func Default() []Line {
	lines := Cube(linalg.Vec3{}, 25)
	return append(lines, Grid(100, 5, 0)...)
}
