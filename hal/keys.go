package hal

import (
	"fmt"
	"strings"
)

// KeyCode is a physical key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyControlLeft
	KeyControlRight
	KeyShiftLeft
	KeyShiftRight
	KeyAltLeft
	KeyAltRight
	KeyEscape
	KeyEnter
	KeyTab
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:      "Unknown",
	KeySpace:        "Space",
	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyArrowUp:      "ArrowUp",
	KeyArrowDown:    "ArrowDown",
	KeyArrowLeft:    "ArrowLeft",
	KeyArrowRight:   "ArrowRight",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + (k - KeyA)))
	}
}

func (k KeyCode) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", uint16(k))
}

// ParseKey looks a key up by name, ignoring case.
func ParseKey(name string) (KeyCode, error) {
	for k := KeyA; k < keyCount; k++ {
		if strings.EqualFold(keyNames[k], name) {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("hal: unknown key %q", name)
}
