package render

// RGB565Target renders into an RGB565 framebuffer buffer.
//
// Callers provide the backing buffer and layout (stride). Translucent colors
// are blended with the pixel already in the buffer.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGB565Target allocates a tightly packed w x h buffer.
func NewRGB565Target(w, h int) *RGB565Target {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c Color) {
	if !t.valid() {
		return
	}
	p := RGB565(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) offset(x, y int) (int, bool) {
	if !t.valid() {
		return 0, false
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, false
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return 0, false
	}
	return off, true
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	off, ok := t.offset(x, y)
	if !ok || c.A == 0 {
		return
	}
	if !c.Opaque() {
		c = c.Over(t.at(off))
	}
	p := RGB565(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// At returns the color stored at x, y. Out of range reads return transparent black.
func (t *RGB565Target) At(x, y int) Color {
	off, ok := t.offset(x, y)
	if !ok {
		return Color{}
	}
	return t.at(off)
}

func (t *RGB565Target) at(off int) Color {
	r, g, b := RGB888(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
	return RGB(r, g, b)
}

// RGB565 packs an 8-bit color into 5:6:5.
func RGB565(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// RGB888 expands a 5:6:5 pixel, replicating the high bits into the low ones.
func RGB888(p uint16) (r, g, b uint8) {
	r5 := uint8(p>>11) & 0x1F
	g6 := uint8(p>>5) & 0x3F
	b5 := uint8(p) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}
