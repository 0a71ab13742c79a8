package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagShape      = flag.String("shape", "", "Shape to render (sphere, cone)")
	flagSlices     = flag.Int("slices", 0, "Angular subdivisions")
	flagStacks     = flag.Int("stacks", 0, "Latitude/height subdivisions")
	flagWireframe  = flag.Bool("wireframe", false, "Draw triangle edges only")
	flagShading    = flag.String("shading", "", "Shading mode (normals, texcoords)")
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
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagWireframe {
		cfg.Graphics.Wireframe = true
	}
	if *flagShading != "" {
		cfg.Graphics.Shading = *flagShading
	}
	if *flagShape != "" {
		cfg.Shape.Kind = *flagShape
	}
	if *flagSlices > 0 {
		cfg.Shape.Slices = *flagSlices
	}
	if *flagStacks > 0 {
		cfg.Shape.Stacks = *flagStacks
	}
}
