package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/bin2hdr/pkg/arraylit"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Encoder.Format != "c" {
		t.Errorf("expected format c, got %s", cfg.Encoder.Format)
	}
	if cfg.Encoder.ArrayName != "BIN_DATA" {
		t.Errorf("expected array name BIN_DATA, got %s", cfg.Encoder.ArrayName)
	}
	if cfg.Encoder.GuardName != "BIN2HDR_INCL_H" {
		t.Errorf("expected guard BIN2HDR_INCL_H, got %s", cfg.Encoder.GuardName)
	}
	if cfg.Encoder.MaxInputBytes != 256<<20 {
		t.Errorf("expected 256MiB limit, got %d", cfg.Encoder.MaxInputBytes)
	}

	if cfg.Display.Width != 500 || cfg.Display.Height != 100 {
		t.Errorf("expected 500x100 window, got %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.Backend != "opengl" {
		t.Errorf("expected opengl backend, got %s", cfg.Display.Backend)
	}
	if cfg.Display.Scale != 1 {
		t.Errorf("expected scale 1, got %d", cfg.Display.Scale)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bin2hdr.yaml")

	yamlContent := `
encoder:
  format: go
  array_name: auto
  package: assets
  max_input_bytes: 1024

display:
  backend: surface
  width: 640
  scale: 4

logging:
  level: "debug"
  log_file: "bin2hdr.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := Default()
	want.Encoder.Format = "go"
	want.Encoder.ArrayName = "auto"
	want.Encoder.Package = "assets"
	want.Encoder.MaxInputBytes = 1024
	want.Display.Backend = "surface"
	want.Display.Width = 640
	want.Display.Scale = 4
	want.Logging.Level = "debug"
	want.Logging.LogFile = "bin2hdr.log"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
display:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("display:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "encoder flags",
			setup: func() {
				*flagFormat = "go"
				*flagName = "SampleBMP"
				*flagPackage = "assets"
			},
			verify: func(cfg *Config) {
				if cfg.Encoder.Format != "go" || cfg.Encoder.ArrayName != "SampleBMP" || cfg.Encoder.Package != "assets" {
					t.Errorf("encoder flags not applied: %+v", cfg.Encoder)
				}
				if cfg.Encoder.GuardName != "BIN2HDR_INCL_H" {
					t.Errorf("guard should keep its default, got %s", cfg.Encoder.GuardName)
				}
			},
			teardown: func() {
				*flagFormat = ""
				*flagName = ""
				*flagPackage = ""
			},
		},
		{
			name:  "guard flag",
			setup: func() { *flagGuard = "MY_GUARD" },
			verify: func(cfg *Config) {
				if cfg.Encoder.GuardName != "MY_GUARD" {
					t.Errorf("expected guard MY_GUARD, got %s", cfg.Encoder.GuardName)
				}
			},
			teardown: func() { *flagGuard = "" },
		},
		{
			name: "display flags",
			setup: func() {
				*flagBackend = "surface"
				*flagWidth = 800
				*flagHeight = 600
				*flagScale = 8
			},
			verify: func(cfg *Config) {
				if cfg.Display.Backend != "surface" {
					t.Errorf("expected surface backend, got %s", cfg.Display.Backend)
				}
				if cfg.Display.Width != 800 || cfg.Display.Height != 600 {
					t.Errorf("expected 800x600, got %dx%d", cfg.Display.Width, cfg.Display.Height)
				}
				if cfg.Display.Scale != 8 {
					t.Errorf("expected scale 8, got %d", cfg.Display.Scale)
				}
			},
			teardown: func() {
				*flagBackend = ""
				*flagWidth = 0
				*flagHeight = 0
				*flagScale = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
display:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Display.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Display.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Encoder.Format = "go"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("saved config differs (-want +got):\n%s", diff)
	}
}

func TestEncoderDocument(t *testing.T) {
	tests := []struct {
		name    string
		enc     EncoderConfig
		want    arraylit.Document
		wantErr error
	}{
		{
			name: "defaults",
			enc:  Default().Encoder,
			want: arraylit.Document{Format: arraylit.FormatC, Name: "BIN_DATA", Guard: "BIN2HDR_INCL_H", Package: "data"},
		},
		{
			name: "auto names",
			enc:  EncoderConfig{Format: "c", ArrayName: Auto, GuardName: Auto},
			want: arraylit.Document{Format: arraylit.FormatC, Name: "SAMPLE_BMP", Guard: "SAMPLE_BMP_H"},
		},
		{
			name: "go output",
			enc:  EncoderConfig{Format: "go", ArrayName: "SampleBMP", Package: "assets"},
			want: arraylit.Document{Format: arraylit.FormatGo, Name: "SampleBMP", Package: "assets"},
		},
		{
			name:    "bad format",
			enc:     EncoderConfig{Format: "pascal", ArrayName: "X", GuardName: "Y"},
			wantErr: arraylit.ErrUnknownFormat,
		},
		{
			name:    "bad name",
			enc:     EncoderConfig{Format: "c", ArrayName: "not valid", GuardName: "Y"},
			wantErr: arraylit.ErrInvalidName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.enc.Document("images/sample.bmp")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
