// Package window handles the SDL2 window that displays a bitmap section.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/bin2hdr/internal/dib"
	"github.com/Faultbox/bin2hdr/internal/logger"
)

func init() {
	// SDL and OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend selects how the bitmap reaches the screen.
type Backend string

const (
	// BackendOpenGL draws the bitmap as a textured quad in a GL 4.1 core context.
	BackendOpenGL Backend = "opengl"
	// BackendSurface blits the bitmap onto the window's software surface.
	BackendSurface Backend = "surface"
)

// ErrUnknownBackend is returned for a backend name other than opengl or surface.
var ErrUnknownBackend = errors.New("unknown display backend")

// ParseBackend maps a config value to a Backend. Empty selects OpenGL.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case "", BackendOpenGL:
		return BackendOpenGL, nil
	case BackendSurface:
		return BackendSurface, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	Backend Backend
	VSync   bool
}

// Window wraps the SDL2 window, its GL context when the backend needs one,
// and the bitmap section painted into it.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	section   *dib.Section
}

// New creates the window and takes ownership of section, which is released
// by Close.
func New(cfg Config, section *dib.Section) (*Window, error) {
	if section == nil {
		return nil, errors.New("window: nil bitmap section")
	}
	w := &Window{
		config:  cfg,
		section: section,
	}

	logger.Info("initializing SDL2", zap.String("backend", string(cfg.Backend)))
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Backend == BackendOpenGL {
		// OpenGL 4.1 Core Profile (max supported on macOS)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
		flags |= sdl.WINDOW_OPENGL
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	if cfg.Backend == BackendOpenGL {
		w.glContext, err = w.sdlWindow.GLCreateContext()
		if err != nil {
			w.sdlWindow.Destroy()
			sdl.Quit()
			return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
		}

		interval := 0
		if cfg.VSync {
			interval = 1
		}
		if err := sdl.GLSetSwapInterval(interval); err != nil {
			logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
		}
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("bitmap_width", section.Width()),
		zap.Int("bitmap_height", section.Height()),
	)

	return w, nil
}

// Close releases the bitmap section, destroys the window and shuts SDL down.
func (w *Window) Close() error {
	logger.Info("closing window")

	var err error
	if w.section != nil && !w.section.Released() {
		err = multierr.Append(err, w.section.Release())
	}
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.sdlWindow != nil {
		err = multierr.Append(err, w.sdlWindow.Destroy())
		w.sdlWindow = nil
	}

	sdl.Quit()
	return err
}

// Section returns the bitmap owned by the window.
func (w *Window) Section() *dib.Section {
	return w.section
}

// Backend returns the backend the window was created for.
func (w *Window) Backend() Backend {
	return w.config.Backend
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Surface returns the window's software surface. It is invalidated by a
// resize and must be fetched again each frame.
func (w *Window) Surface() (*sdl.Surface, error) {
	return w.sdlWindow.GetSurface()
}

// UpdateSurface copies the window surface to the screen.
func (w *Window) UpdateSurface() error {
	return w.sdlWindow.UpdateSurface()
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
