package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"wirecam/core/render"
)

// crash logs a recovered panic, paints it onto the framebuffer and turns it
// into the error that ends the run.
func (a *App) crash(v any) error {
	stack := debug.Stack()
	a.log.Error().Interface("panic", v).Str("stack", string(stack)).Msg("step panicked")

	lines := []string{
		"wirecam panic:",
		fmt.Sprintf("tick: %d", a.ticks),
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}

	t := a.target
	t.Clear(render.White)
	lh := a.hud.LineHeight()
	cw := a.hud.TextWidth("0")
	cols := 1
	if cw > 0 && t.W/cw > 0 {
		cols = t.W / cw
	}

	y := 0
draw:
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > t.H {
				break draw
			}
			chunk, rest := takeRunes(line, cols)
			a.hud.DrawText(t, 0, y, chunk, render.Black)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.fb.Present()
	return fmt.Errorf("app: panic: %v", v)
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
