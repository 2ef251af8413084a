//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[ebiten.Key]KeyCode{
	ebiten.KeyA:            KeyA,
	ebiten.KeyB:            KeyB,
	ebiten.KeyC:            KeyC,
	ebiten.KeyD:            KeyD,
	ebiten.KeyE:            KeyE,
	ebiten.KeyF:            KeyF,
	ebiten.KeyG:            KeyG,
	ebiten.KeyH:            KeyH,
	ebiten.KeyI:            KeyI,
	ebiten.KeyJ:            KeyJ,
	ebiten.KeyK:            KeyK,
	ebiten.KeyL:            KeyL,
	ebiten.KeyM:            KeyM,
	ebiten.KeyN:            KeyN,
	ebiten.KeyO:            KeyO,
	ebiten.KeyP:            KeyP,
	ebiten.KeyQ:            KeyQ,
	ebiten.KeyR:            KeyR,
	ebiten.KeyS:            KeyS,
	ebiten.KeyT:            KeyT,
	ebiten.KeyU:            KeyU,
	ebiten.KeyV:            KeyV,
	ebiten.KeyW:            KeyW,
	ebiten.KeyX:            KeyX,
	ebiten.KeyY:            KeyY,
	ebiten.KeyZ:            KeyZ,
	ebiten.KeySpace:        KeySpace,
	ebiten.KeyControlLeft:  KeyControlLeft,
	ebiten.KeyControlRight: KeyControlRight,
	ebiten.KeyShiftLeft:    KeyShiftLeft,
	ebiten.KeyShiftRight:   KeyShiftRight,
	ebiten.KeyAltLeft:      KeyAltLeft,
	ebiten.KeyAltRight:     KeyAltRight,
	ebiten.KeyEscape:       KeyEscape,
	ebiten.KeyEnter:        KeyEnter,
	ebiten.KeyTab:          KeyTab,
	ebiten.KeyArrowUp:      KeyArrowUp,
	ebiten.KeyArrowDown:    KeyArrowDown,
	ebiten.KeyArrowLeft:    KeyArrowLeft,
	ebiten.KeyArrowRight:   KeyArrowRight,
}

var pressed []ebiten.Key

// pollKeys replaces the key state with what ebiten reports as held.
func pollKeys(st *keyState) {
	st.down = [keyCount]bool{}
	pressed = inpututil.AppendPressedKeys(pressed[:0])
	for _, ek := range pressed {
		if k, ok := ebitenKeys[ek]; ok {
			st.set(k, true)
		}
	}
}

// pointer turns absolute cursor positions into per-tick deltas. In captured
// mode ebiten keeps reporting an unbounded virtual position.
type pointer struct {
	x, y   int
	primed bool
}

func (p *pointer) poll(st *keyState) {
	x, y := ebiten.CursorPosition()
	if p.primed {
		st.move(x-p.x, y-p.y)
	}
	p.x, p.y, p.primed = x, y, true
}
