package camera

import (
	"fmt"
	"strings"

	"wirecam/core/linalg"
)

// DebugInfo is the short on-screen status line.
func (c *Camera) DebugInfo() string {
	p := c.position
	l := c.last
	return fmt.Sprintf("Pos:(%.2f,%.2f,%.2f) Mouse:(%d,%d) Key: F%.2f R%.2f U%.2f Roll%.2f",
		p.X, p.Y, p.Z, l.mouseX, l.mouseY, l.moveF, l.moveR, l.moveU, l.rollIn)
}

// DetailedDebugInfo is the one-line trace written to the debug log each tick.
func (c *Camera) DetailedDebugInfo() string {
	l := c.last
	q := c.orientation
	var b strings.Builder
	fmt.Fprintf(&b, "Pos%s ", xyz(c.position))
	fmt.Fprintf(&b, "Ori(x:%.4f,y:%.4f,z:%.4f,w:%.4f) ", q.X, q.Y, q.Z, q.W)
	fmt.Fprintf(&b, "MouseIn(x:%d,y:%d) ", l.mouseX, l.mouseY)
	fmt.Fprintf(&b, "RotAngle(Yaw:%.4f,Pitch:%.4f,Roll:%.4f) ",
		linalg.RadToDeg(l.yaw), linalg.RadToDeg(l.pitch), linalg.RadToDeg(l.roll))
	fmt.Fprintf(&b, "KeyIn(F:%.4f,R:%.4f,U:%.4f,Roll:%.4f) ", l.moveF, l.moveR, l.moveU, l.rollIn)
	fmt.Fprintf(&b, "AxisF%s AxisR%s AxisU%s ", xyz(l.forward), xyz(l.right), xyz(l.up))
	fmt.Fprintf(&b, "MoveOffset%s", xyz(l.offset))
	return b.String()
}

func xyz(v linalg.Vec3) string {
	return fmt.Sprintf("(x:%.4f,y:%.4f,z:%.4f)", v.X, v.Y, v.Z)
}
