package hal

// keyState is the input snapshot the app polls once per tick. The window
// backend or a Script writes it between ticks.
type keyState struct {
	down [keyCount]bool
	prev [keyCount]bool

	dx, dy int
}

func (s *keyState) PointerDelta() (dx, dy int) {
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}

func (s *keyState) Pressed(k KeyCode) bool {
	return k < keyCount && s.down[k]
}

func (s *keyState) JustPressed(k KeyCode) bool {
	return k < keyCount && s.down[k] && !s.prev[k]
}

// advance starts a new tick: the current keys become the previous ones.
func (s *keyState) advance() { s.prev = s.down }

func (s *keyState) set(k KeyCode, down bool) {
	if k < keyCount {
		s.down[k] = down
	}
}

func (s *keyState) move(dx, dy int) {
	s.dx += dx
	s.dy += dy
}
