package clip

import "wirecam/core/linalg"

// MaxIterations bounds the clip loop. A segment needs at most six clips.
const MaxIterations = 10

// plane describes one frustum plane: its outcode bit, how to find the
// intersection parameter along p1->p2 and how to pin a point onto it.
type plane struct {
	bit Outcode
	// param returns the numerator and denominator of t for p1 + (p2-p1)*t.
	param func(p1, d linalg.Vec4) (num, den linalg.Scalar)
	snap  func(p *linalg.Vec4)
}

// planes is ordered by clipping priority.
var planes = [...]plane{
	{
		bit:   Left,
		param: func(p1, d linalg.Vec4) (linalg.Scalar, linalg.Scalar) { return -p1.X - p1.W, d.X + d.W },
		snap:  func(p *linalg.Vec4) { p.X = -p.W },
	},
	{
		bit:   Right,
		param: func(p1, d linalg.Vec4) (linalg.Scalar, linalg.Scalar) { return p1.W - p1.X, d.X - d.W },
		snap:  func(p *linalg.Vec4) { p.X = p.W },
	},
	{
		bit:   Bottom,
		param: func(p1, d linalg.Vec4) (linalg.Scalar, linalg.Scalar) { return -p1.Y - p1.W, d.Y + d.W },
		snap:  func(p *linalg.Vec4) { p.Y = -p.W },
	},
	{
		bit:   Top,
		param: func(p1, d linalg.Vec4) (linalg.Scalar, linalg.Scalar) { return p1.W - p1.Y, d.Y - d.W },
		snap:  func(p *linalg.Vec4) { p.Y = p.W },
	},
	{
		bit:   Near,
		param: func(p1, d linalg.Vec4) (linalg.Scalar, linalg.Scalar) { return -p1.Z, d.Z },
		snap:  func(p *linalg.Vec4) { p.Z = 0 },
	},
	{
		bit:   Far,
		param: func(p1, d linalg.Vec4) (linalg.Scalar, linalg.Scalar) { return p1.W - p1.Z, d.Z - d.W },
		snap:  func(p *linalg.Vec4) { p.Z = p.W },
	},
}

// firstPlane returns the highest-priority plane flagged in c.
func firstPlane(c Outcode) (plane, bool) {
	for _, pl := range planes {
		if c&pl.bit != 0 {
			return pl, true
		}
	}
	return plane{}, false
}

// Segment clips the clip-space segment p1-p2 against the view volume and returns
// the visible portion. visible is false when no part of the segment survives, when
// the segment runs parallel to a plane it has to be clipped against, or when the
// iteration cap is reached.
func Segment(p1, p2 linalg.Vec4) (linalg.Vec4, linalg.Vec4, bool) {
	c1, c2 := Code(p1), Code(p2)

	for i := 0; i < MaxIterations; i++ {
		if c1|c2 == Inside {
			return p1, p2, true
		}
		if c1&c2 != Inside {
			return p1, p2, false
		}

		first := c1 != Inside
		out := c2
		if first {
			out = c1
		}

		pl, ok := firstPlane(out)
		if !ok {
			return p1, p2, false
		}

		d := linalg.Vec4{X: p2.X - p1.X, Y: p2.Y - p1.Y, Z: p2.Z - p1.Z, W: p2.W - p1.W}
		num, den := pl.param(p1, d)
		if linalg.Abs(den) < linalg.DivideEpsilon {
			return p1, p2, false
		}
		t := num / den
		if t < 0 || t > 1 {
			return p1, p2, false
		}

		hit := linalg.Lerp(p1, p2, t)
		pl.snap(&hit)

		if first {
			p1, c1 = hit, Code(hit)
		} else {
			p2, c2 = hit, Code(hit)
		}
	}
	return p1, p2, false
}
