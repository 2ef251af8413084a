package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
)

// Canvas is a Target backed by a gg context, used for PNG snapshots.
type Canvas struct {
	dc   *gg.Context
	w, h int
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h), w: w, h: h}
}

func (c *Canvas) Size() (w, h int) { return c.w, c.h }

func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || col.A == 0 {
		return
	}
	if !col.Opaque() {
		r, g, b, _ := c.dc.Image().At(x, y).RGBA()
		col = col.Over(RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
	}
	c.dc.SetColor(col.NRGBA())
	c.dc.SetPixel(x, y)
}

func (c *Canvas) Clear(col Color) {
	c.dc.SetColor(col.NRGBA())
	c.dc.Clear()
}

// Image returns the backing image. It aliases the canvas memory.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
