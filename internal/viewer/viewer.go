// Package viewer runs the window loop that displays a bitmap section.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/bin2hdr/internal/config"
	"github.com/Faultbox/bin2hdr/internal/dib"
	"github.com/Faultbox/bin2hdr/internal/engine/debug"
	"github.com/Faultbox/bin2hdr/internal/engine/input"
	"github.com/Faultbox/bin2hdr/internal/engine/renderer"
	"github.com/Faultbox/bin2hdr/internal/engine/window"
	"github.com/Faultbox/bin2hdr/internal/logger"
)

// idleFrame throttles the loop when the swap interval does not.
const idleFrame = 16 * time.Millisecond

// Viewer is the demo application instance.
type Viewer struct {
	config    config.DisplayConfig
	running   bool
	window    *window.Window
	renderer  *renderer.Renderer
	input     *input.Input
	snapshots *debug.ScreenshotCapture
}

// New opens a window showing section. The viewer owns section from here on:
// it is released by Close, or before New returns an error.
func New(cfg config.DisplayConfig, section *dib.Section) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("backend", cfg.Backend),
	)

	backend, err := window.ParseBackend(cfg.Backend)
	if err != nil {
		section.Release()
		return nil, err
	}

	v := &Viewer{
		config:    cfg,
		input:     input.New(),
		snapshots: debug.NewScreenshotCapture(cfg.SnapshotDir, "bitmap"),
	}

	v.window, err = window.New(window.Config{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Backend: backend,
		VSync:   cfg.VSync,
	}, section)
	if err != nil {
		section.Release()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the window (and GL context) to exist
	v.renderer, err = renderer.New(v.window, renderer.Config{
		Scale:      cfg.Scale,
		Background: renderer.DefaultBackground,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run paints the bitmap until the window is closed or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()
	throttle := v.window.Backend() != window.BackendOpenGL || !v.config.VSync

	logger.Info("starting viewer loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				v.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_F12 {
					v.snapshot()
				}
			}
		}

		if err := v.renderer.Paint(); err != nil {
			return fmt.Errorf("paint error: %w", err)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if throttle {
			sdl.Delay(uint32(idleFrame.Milliseconds()))
		}
	}

	return nil
}

func (v *Viewer) snapshot() {
	img, err := v.window.Section().RGBA()
	if err != nil {
		logger.Warn("snapshot failed", zap.Error(err))
		return
	}
	path, err := v.snapshots.CaptureFromImage(img)
	if err != nil {
		logger.Warn("snapshot failed", zap.Error(err))
		return
	}
	logger.Info("snapshot written", zap.String("path", path))
}

// Close tears down the renderer and the window, releasing the bitmap.
func (v *Viewer) Close() error {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
		v.renderer = nil
	}
	if v.window != nil {
		err := v.window.Close()
		v.window = nil
		return err
	}
	return nil
}
