//go:build cgo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig sizes and titles the desktop window.
type WindowConfig struct {
	Width, Height int
	Scale         int
	TPS           int
	Title         string
	// FreeCursor leaves the pointer visible instead of capturing it.
	FreeCursor bool
}

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard and pointer input. It blocks until the window closes or a step
// returns ErrStop.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("invalid window size")
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	h := NewHost(cfg.Width, cfg.Height)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	if !cfg.FreeCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *Host
	img   *image.RGBA
	fbImg *ebiten.Image
	shown uint64
	step  func() error

	ptr pointer
}

func (g *hostGame) Update() error {
	g.h.in.advance()
	pollKeys(g.h.in)
	g.ptr.poll(g.h.in)
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrStop) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.shown = 0
	}

	if n := fb.snapshotRGBA(g.img.Pix); n != g.shown {
		g.fbImg.WritePixels(g.img.Pix)
		g.shown = n
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
