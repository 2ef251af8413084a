package hal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/shlex"
)

// Script drives the host input from a text file, one command per line:
//
//	hold W            # key goes down and stays down
//	release W
//	tap M             # down for a single tick
//	mouse 10 -4       # pointer delta delivered on the current tick
//	wait 30           # end this tick and keep the state for 30 ticks total
//
// Blank lines and # comments are ignored. Commands up to the next wait all
// apply to the same tick.
type Script struct {
	cmds []scriptCmd
	pc   int

	waiting int
	tapped  []KeyCode
}

type scriptOp uint8

const (
	opHold scriptOp = iota
	opRelease
	opTap
	opMouse
	opWait
)

type scriptCmd struct {
	op     scriptOp
	key    KeyCode
	dx, dy int
	n      int
}

// ParseScript reads a whole script.
func ParseScript(r io.Reader) (*Script, error) {
	s := &Script{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		words, err := shlex.Split(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", line, err)
		}
		if len(words) == 0 {
			continue
		}
		cmd, err := parseCmd(words)
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", line, err)
		}
		s.cmds = append(s.cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return s, nil
}

// LoadScript parses the script at path.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()
	s, err := ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseCmd(words []string) (scriptCmd, error) {
	argc := func(n int) error {
		if len(words) != n+1 {
			return fmt.Errorf("%s takes %d argument(s), got %d", words[0], n, len(words)-1)
		}
		return nil
	}
	atoi := func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", words[0], s)
		}
		return v, nil
	}

	switch words[0] {
	case "hold", "release", "tap":
		if err := argc(1); err != nil {
			return scriptCmd{}, err
		}
		k, err := ParseKey(words[1])
		if err != nil {
			return scriptCmd{}, err
		}
		op := map[string]scriptOp{"hold": opHold, "release": opRelease, "tap": opTap}[words[0]]
		return scriptCmd{op: op, key: k}, nil
	case "mouse":
		if err := argc(2); err != nil {
			return scriptCmd{}, err
		}
		dx, err := atoi(words[1])
		if err != nil {
			return scriptCmd{}, err
		}
		dy, err := atoi(words[2])
		if err != nil {
			return scriptCmd{}, err
		}
		return scriptCmd{op: opMouse, dx: dx, dy: dy}, nil
	case "wait":
		n := 1
		if len(words) > 1 {
			if err := argc(1); err != nil {
				return scriptCmd{}, err
			}
			v, err := atoi(words[1])
			if err != nil {
				return scriptCmd{}, err
			}
			if v < 1 {
				return scriptCmd{}, fmt.Errorf("wait: count must be >= 1, got %d", v)
			}
			n = v
		}
		return scriptCmd{op: opWait, n: n}, nil
	}
	return scriptCmd{}, fmt.Errorf("unknown command %q", words[0])
}

// Done reports whether every command has run and no wait is pending.
func (s *Script) Done() bool { return s.pc >= len(s.cmds) && s.waiting == 0 }

// Ticks is the number of ticks the script spans, counting each wait.
func (s *Script) Ticks() uint64 {
	var n uint64
	pending := false
	for _, c := range s.cmds {
		if c.op == opWait {
			n += uint64(c.n)
			pending = false
			continue
		}
		pending = true
	}
	if pending {
		n++
	}
	return n
}

// apply moves st to the next tick and runs commands up to the next wait.
func (s *Script) apply(st *keyState) {
	st.advance()
	for _, k := range s.tapped {
		st.set(k, false)
	}
	s.tapped = s.tapped[:0]

	if s.waiting > 0 {
		s.waiting--
		return
	}
	for s.pc < len(s.cmds) {
		c := s.cmds[s.pc]
		s.pc++
		switch c.op {
		case opHold:
			st.set(c.key, true)
		case opRelease:
			st.set(c.key, false)
		case opTap:
			st.set(c.key, true)
			s.tapped = append(s.tapped, c.key)
		case opMouse:
			st.move(c.dx, c.dy)
		case opWait:
			s.waiting = c.n - 1
			return
		}
	}
}
