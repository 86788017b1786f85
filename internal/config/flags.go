package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagFormat  = flag.String("format", "", "Output format: c or go")
	flagName    = flag.String("name", "", "Array identifier (auto = derive from input name)")
	flagGuard   = flag.String("guard", "", "Include guard macro (auto = derive from input name)")
	flagPackage = flag.String("pkg", "", "Package name for Go output")
	flagBackend = flag.String("backend", "", "Display backend: opengl or surface")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagScale   = flag.Int("scale", 0, "Integer zoom when painting the bitmap")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFormat != "" {
		cfg.Encoder.Format = *flagFormat
	}
	if *flagName != "" {
		cfg.Encoder.ArrayName = *flagName
	}
	if *flagGuard != "" {
		cfg.Encoder.GuardName = *flagGuard
	}
	if *flagPackage != "" {
		cfg.Encoder.Package = *flagPackage
	}
	if *flagBackend != "" {
		cfg.Display.Backend = *flagBackend
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
	if *flagScale > 0 {
		cfg.Display.Scale = *flagScale
	}
}
