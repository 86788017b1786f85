package renderer

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/bin2hdr/internal/engine/window"
)

// rgbaFormat is the SDL packed format whose memory layout is R, G, B, A,
// matching image.RGBA.Pix.
func rgbaFormat() uint32 {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return uint32(sdl.PIXELFORMAT_ABGR8888)
	}
	return uint32(sdl.PIXELFORMAT_RGBA8888)
}

type surfacePainter struct {
	win    *window.Window
	bitmap *sdl.Surface
}

func newSurfacePainter(win *window.Window) (*surfacePainter, error) {
	return &surfacePainter{win: win}, nil
}

func (p *surfacePainter) upload(img *image.RGBA) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	s, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, rgbaFormat())
	if err != nil {
		return fmt.Errorf("SDL_CreateRGBSurfaceWithFormat failed: %w", err)
	}

	if err := s.Lock(); err != nil {
		s.Free()
		return fmt.Errorf("SDL_LockSurface failed: %w", err)
	}
	copyRows(s.Pixels(), int(s.Pitch), img)
	s.Unlock()

	if p.bitmap != nil {
		p.bitmap.Free()
	}
	p.bitmap = s
	return nil
}

// copyRows copies img into a destination buffer whose rows are pitch bytes apart.
func copyRows(dst []byte, pitch int, img *image.RGBA) {
	rowBytes := img.Rect.Dx() * 4
	for y := 0; y < img.Rect.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		copy(dst[y*pitch:y*pitch+rowBytes], src)
	}
}

func (p *surfacePainter) paint(dst image.Rectangle, _, _ int, bg color.RGBA) error {
	screen, err := p.win.Surface()
	if err != nil {
		return fmt.Errorf("SDL_GetWindowSurface failed: %w", err)
	}

	if err := screen.FillRect(nil, sdl.MapRGB(screen.Format, bg.R, bg.G, bg.B)); err != nil {
		return fmt.Errorf("SDL_FillRect failed: %w", err)
	}

	rect := sdl.Rect{
		X: int32(dst.Min.X),
		Y: int32(dst.Min.Y),
		W: int32(dst.Dx()),
		H: int32(dst.Dy()),
	}
	if err := p.bitmap.BlitScaled(nil, screen, &rect); err != nil {
		return fmt.Errorf("SDL_BlitScaled failed: %w", err)
	}

	return p.win.UpdateSurface()
}

func (p *surfacePainter) close() {
	if p.bitmap != nil {
		p.bitmap.Free()
		p.bitmap = nil
	}
}
