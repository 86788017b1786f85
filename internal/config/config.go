// Package config handles bin2hdr and viewer configuration loading.
package config

// Config holds all settings.
type Config struct {
	Encoder EncoderConfig `yaml:"encoder"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// EncoderConfig holds array document settings.
type EncoderConfig struct {
	Format        string `yaml:"format"`     // "c" or "go"
	ArrayName     string `yaml:"array_name"` // "auto" derives it from the input name
	GuardName     string `yaml:"guard_name"` // "auto" derives it from the input name
	Package       string `yaml:"package"`
	MaxInputBytes int64  `yaml:"max_input_bytes"`
}

// DisplayConfig holds demo window settings.
type DisplayConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Backend string `yaml:"backend"` // "opengl" or "surface"
	VSync   bool   `yaml:"vsync"`
	Scale   int    `yaml:"scale"` // integer zoom applied when painting

	SnapshotDir string `yaml:"snapshot_dir"` // F12 writes PNG snapshots here
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Encoder: EncoderConfig{
			Format:        "c",
			ArrayName:     "BIN_DATA",
			GuardName:     "BIN2HDR_INCL_H",
			Package:       "data",
			MaxInputBytes: 256 << 20,
		},
		Display: DisplayConfig{
			Title:   "Windows Desktop Guided Tour Application",
			Width:   500,
			Height:  100,
			Backend: "opengl",
			VSync:   true,
			Scale:   1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
