// Package renderer paints a window's bitmap section every frame.
package renderer

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/bin2hdr/internal/dib"
	"github.com/Faultbox/bin2hdr/internal/engine/window"
	"github.com/Faultbox/bin2hdr/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Scale      int // integer zoom; <= 0 fits the window
	Background color.RGBA
}

// DefaultBackground is the window color behind the bitmap.
var DefaultBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// painter is implemented once per window backend.
type painter interface {
	upload(img *image.RGBA) error
	paint(dst image.Rectangle, winW, winH int, bg color.RGBA) error
	close()
}

// Renderer draws the section owned by a window.
type Renderer struct {
	config  Config
	win     *window.Window
	width   int
	height  int
	painter painter
}

// New creates a renderer for win and uploads its bitmap section.
// Must be called after the window (and its GL context) exists.
func New(win *window.Window, cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		win:    win,
	}
	r.width, r.height = win.GetSize()

	var err error
	switch win.Backend() {
	case window.BackendOpenGL:
		r.painter, err = newGLPainter(win)
	case window.BackendSurface:
		r.painter, err = newSurfacePainter(win)
	default:
		err = fmt.Errorf("%w: %q", window.ErrUnknownBackend, win.Backend())
	}
	if err != nil {
		return nil, err
	}

	if err := r.Upload(win.Section()); err != nil {
		r.painter.close()
		return nil, err
	}
	return r, nil
}

// Upload converts section to RGBA and hands it to the backend.
func (r *Renderer) Upload(section *dib.Section) error {
	img, err := section.RGBA()
	if err != nil {
		return fmt.Errorf("converting bitmap: %w", err)
	}
	if err := r.painter.upload(img); err != nil {
		return fmt.Errorf("uploading bitmap: %w", err)
	}
	logger.Debug("bitmap uploaded",
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()),
	)
	return nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Paint draws one frame and presents it.
func (r *Renderer) Paint() error {
	s := r.win.Section()
	dst := dib.Placement(s.Width(), s.Height(), r.config.Scale, r.width, r.height)
	return r.painter.paint(dst, r.width, r.height, r.config.Background)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.painter != nil {
		r.painter.close()
		r.painter = nil
	}
}

// ndcRect converts a window-pixel rectangle to (left, top, right, bottom) in
// normalized device coordinates.
func ndcRect(r image.Rectangle, winW, winH int) [4]float32 {
	if winW <= 0 || winH <= 0 {
		return [4]float32{}
	}
	x := func(px int) float32 { return float32(px)/float32(winW)*2 - 1 }
	y := func(py int) float32 { return 1 - float32(py)/float32(winH)*2 }
	return [4]float32{x(r.Min.X), y(r.Min.Y), x(r.Max.X), y(r.Max.Y)}
}
