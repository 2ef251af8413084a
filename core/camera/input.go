package camera

import (
	"fmt"

	"wirecam/core/linalg"
	"wirecam/core/render"
)

// Key is a logical camera control. The host maps physical keys onto these.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyRollRight
	KeyRollLeft

	numKeys
)

var keyNames = [numKeys]string{
	KeyForward:   "forward",
	KeyBack:      "back",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRollRight: "rollRight",
	KeyRollLeft:  "rollLeft",
}

func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// Keys lists every logical key in declaration order.
func Keys() []Key {
	ks := make([]Key, numKeys)
	for i := range ks {
		ks[i] = Key(i)
	}
	return ks
}

// ParseKey maps a logical key name back to its Key.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("camera: unknown key %q", name)
}

// Input is the per-tick input source the camera reads.
type Input interface {
	// PointerDelta returns the pointer movement since the previous tick.
	PointerDelta() (dx, dy int)
	KeyDown(k Key) bool
}

// LineDrawer is the 2D line primitive Draw renders through.
type LineDrawer interface {
	DrawLine(x0, y0, x1, y1 int, c render.Color)
}

// axis turns a +/- key pair into -1, 0 or 1.
func axis(in Input, pos, neg Key) linalg.Scalar {
	var v linalg.Scalar
	if in.KeyDown(pos) {
		v++
	}
	if in.KeyDown(neg) {
		v--
	}
	return v
}
