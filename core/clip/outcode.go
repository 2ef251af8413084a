// Package clip implements Cohen-Sutherland line clipping in homogeneous clip space.
//
// The view volume is -w <= x <= w, -w <= y <= w, 0 <= z <= w, the volume produced by
// linalg.BuildPerspective. Clipping happens before the perspective divide, so
// segments that cross behind the camera are handled without dividing by w.
package clip

import (
	"strings"

	"wirecam/core/linalg"
)

// Outcode marks the frustum half-spaces a clip-space point violates.
type Outcode uint8

const (
	Inside Outcode = 0
	Left   Outcode = 1 << (iota - 1)
	Right
	Bottom
	Top
	Near
	Far
)

// classify tests one axis. Below and above are mutually exclusive by construction.
func classify(v, lo, hi linalg.Scalar, below, above Outcode) Outcode {
	switch {
	case v < lo:
		return below
	case v > hi:
		return above
	}
	return Inside
}

// Code returns the outcode of p.
func Code(p linalg.Vec4) Outcode {
	return classify(p.X, -p.W, p.W, Left, Right) |
		classify(p.Y, -p.W, p.W, Bottom, Top) |
		classify(p.Z, 0, p.W, Near, Far)
}

var outcodeNames = []struct {
	bit  Outcode
	name string
}{
	{Left, "LEFT"},
	{Right, "RIGHT"},
	{Bottom, "BOTTOM"},
	{Top, "TOP"},
	{Near, "NEAR"},
	{Far, "FAR"},
}

func (c Outcode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var parts []string
	for _, n := range outcodeNames {
		if c&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
