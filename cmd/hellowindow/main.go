// hellowindow shows a bitmap that was compiled into the program as a byte
// array by bin2hdr.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/bin2hdr/internal/assets"
	"github.com/Faultbox/bin2hdr/internal/config"
	"github.com/Faultbox/bin2hdr/internal/dib"
	"github.com/Faultbox/bin2hdr/internal/logger"
	"github.com/Faultbox/bin2hdr/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== hellowindow ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	section, err := loadSection(assets.NewManager(), assets.SampleName)
	if err != nil {
		logger.Error("failed to load bitmap", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	v, err := viewer.New(cfg.Display, section)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	runErr := v.Run()
	if err := v.Close(); err != nil {
		logger.Warn("close failed", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("viewer error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// loadSection decodes an embedded BMP and builds the bitmap section from it.
func loadSection(m *assets.Manager, name string) (*dib.Section, error) {
	bmp, err := m.Bitmap(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("bitmap decoded",
		zap.String("name", name),
		zap.Int32("width", bmp.InfoHeader.Width),
		zap.Int32("height", bmp.InfoHeader.Height),
		zap.Uint16("bpp", bmp.InfoHeader.BitCount),
		logger.Size("pixels", int64(len(bmp.PixelData))),
	)

	section, err := dib.Build(bmp)
	if err != nil {
		return nil, fmt.Errorf("building bitmap %s: %w", name, err)
	}
	return section, nil
}
